package portfolio

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/fieldkit/pkg/reader"
	"github.com/dmitrymomot/fieldkit/pkg/structure"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Field names shared by every stock type.
const (
	FieldName   = "name"
	FieldShares = "shares"
	FieldPrice  = "price"
)

var (
	StockType = structure.Define("Stock").
			Field(FieldName, validator.NonEmptyString()).
			Field(FieldShares, validator.PositiveInteger()).
			Field(FieldPrice, validator.PositiveFloat()).
			MustBuild()

	// DStockType stores prices as decimals.
	DStockType = structure.Define("DStock", structure.Extends(StockType)).
			Field(FieldPrice, validator.PositiveDecimal()).
			MustBuild()
)

// Stock is a holding backed by an instance of StockType or one of its subtypes.
type Stock struct {
	inst *structure.Instance
}

func NewStock(name string, shares int, price float64) (*Stock, error) {
	inst, err := StockType.New(name, shares, price)
	if err != nil {
		return nil, err
	}
	return &Stock{inst: inst}, nil
}

func NewDStock(name string, shares int, price decimal.Decimal) (*Stock, error) {
	inst, err := DStockType.New(name, shares, price)
	if err != nil {
		return nil, err
	}
	return &Stock{inst: inst}, nil
}

// StockFromRow parses a "name, shares, price" row with the column kinds of typ.
func StockFromRow(typ *structure.Type, row []string) (*Stock, error) {
	inst, err := typ.FromRow(row)
	if err != nil {
		return nil, err
	}
	return Wrap(inst)
}

// Wrap adopts an existing instance. Its type must be StockType or extend it.
func Wrap(inst *structure.Instance) (*Stock, error) {
	if inst == nil || !inst.Type().IsA(StockType) {
		return nil, ErrNotStock
	}
	return &Stock{inst: inst}, nil
}

// ReadStocks reads a header-having CSV file of stocks of type typ.
func ReadStocks(r io.Reader, typ *structure.Type) ([]*Stock, error) {
	if !typ.IsA(StockType) {
		return nil, fmt.Errorf("%w: %s", ErrNotStock, typ.Name())
	}
	insts, err := reader.ReadInstances(r, typ)
	if err != nil {
		return nil, err
	}
	stocks := make([]*Stock, len(insts))
	for i, inst := range insts {
		stocks[i] = &Stock{inst: inst}
	}
	return stocks, nil
}

func (s *Stock) Instance() *structure.Instance { return s.inst }

func (s *Stock) Name() string {
	return s.inst.MustGet(FieldName).(string)
}

func (s *Stock) Shares() int {
	return s.inst.MustGet(FieldShares).(int)
}

// Price returns the price as a decimal whatever the underlying kind is.
func (s *Stock) Price() decimal.Decimal {
	switch p := s.inst.MustGet(FieldPrice).(type) {
	case decimal.Decimal:
		return p
	case float64:
		return decimal.NewFromFloat(p)
	default:
		panic(fmt.Sprintf("portfolio: unexpected price type %T", p))
	}
}

func (s *Stock) SetShares(n int) error {
	return s.inst.Set(FieldShares, n)
}

// SetPrice must be given a value of the price kind: float64 for Stock,
// decimal.Decimal for DStock.
func (s *Stock) SetPrice(price any) error {
	return s.inst.Set(FieldPrice, price)
}

// Cost is shares times price.
func (s *Stock) Cost() decimal.Decimal {
	return s.Price().Mul(decimal.NewFromInt(int64(s.Shares())))
}

// Sell removes n shares. Selling more than held fails and leaves shares unchanged.
func (s *Stock) Sell(n int) error {
	return s.SetShares(s.Shares() - n)
}

// Get makes Stock usable as a table record.
func (s *Stock) Get(name string) (any, error) {
	return s.inst.Get(name)
}

func (s *Stock) String() string { return s.inst.String() }

func (s *Stock) Equal(other *Stock) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.inst.Equal(other.inst)
}

// TotalCost sums Cost over stocks.
func TotalCost(stocks []*Stock) decimal.Decimal {
	total := decimal.Zero
	for _, s := range stocks {
		total = total.Add(s.Cost())
	}
	return total
}
