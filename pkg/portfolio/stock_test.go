package portfolio_test

import (
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/portfolio"
	"github.com/dmitrymomot/fieldkit/pkg/structure"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func goog(t *testing.T) *portfolio.Stock {
	t.Helper()
	s, err := portfolio.NewStock("GOOG", 100, 490.1)
	require.NoError(t, err)
	return s
}

func TestStock_Create(t *testing.T) {
	t.Parallel()
	s := goog(t)
	assert.Equal(t, "GOOG", s.Name())
	assert.Equal(t, 100, s.Shares())
	assert.True(t, decimal.RequireFromString("490.1").Equal(s.Price()))
	assert.Equal(t, "Stock('GOOG', 100, 490.1)", s.String())
}

func TestStock_Cost(t *testing.T) {
	t.Parallel()
	assert.True(t, decimal.NewFromInt(49010).Equal(goog(t).Cost()))
}

func TestStock_Sell(t *testing.T) {
	t.Parallel()
	s := goog(t)

	require.NoError(t, s.Sell(1))
	assert.Equal(t, 99, s.Shares())

	err := s.Sell(100)
	assert.ErrorIs(t, err, validator.ErrValue)
	assert.Equal(t, 99, s.Shares())
}

func TestStock_FromRow(t *testing.T) {
	t.Parallel()

	s, err := portfolio.StockFromRow(portfolio.StockType, []string{"GOOG", "100", "490.1"})
	require.NoError(t, err)
	assert.True(t, s.Equal(goog(t)))

	d, err := portfolio.StockFromRow(portfolio.DStockType, []string{"GOOG", "100", "490.10"})
	require.NoError(t, err)
	assert.Equal(t, "DStock('GOOG', 100, Decimal('490.1'))", d.String())
	assert.True(t, decimal.NewFromInt(49010).Equal(d.Cost()))

	_, err = portfolio.StockFromRow(portfolio.StockType, []string{"GOOG", "lots", "490.1"})
	assert.ErrorIs(t, err, validator.ErrValue)
}

func TestStock_Setters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		set     func(*portfolio.Stock) error
		wantErr error
	}{
		{"shares bad type", func(s *portfolio.Stock) error { return s.Instance().Set("shares", "50") }, validator.ErrType},
		{"shares bad value", func(s *portfolio.Stock) error { return s.SetShares(-50) }, validator.ErrValue},
		{"price bad type", func(s *portfolio.Stock) error { return s.SetPrice("45.23") }, validator.ErrType},
		{"price bad value", func(s *portfolio.Stock) error { return s.SetPrice(-45.23) }, validator.ErrValue},
		{"bad attribute", func(s *portfolio.Stock) error { return s.Instance().Set("share", 100) }, structure.ErrNoAttribute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := goog(t)
			assert.ErrorIs(t, tt.set(s), tt.wantErr)
			assert.True(t, s.Equal(goog(t)))
		})
	}

	t.Run("dstock price needs a decimal", func(t *testing.T) {
		d, err := portfolio.NewDStock("GOOG", 100, decimal.RequireFromString("490.1"))
		require.NoError(t, err)
		assert.ErrorIs(t, d.SetPrice(1.5), validator.ErrType)
		require.NoError(t, d.SetPrice(decimal.RequireFromString("1.5")))
		assert.Equal(t, "1.50", d.Price().StringFixed(2))
	})
}

func TestWrap(t *testing.T) {
	t.Parallel()

	other := structure.Define("Bond").Field("name", validator.String()).MustBuild()
	b, err := other.New("T-Bill")
	require.NoError(t, err)

	_, err = portfolio.Wrap(b)
	assert.ErrorIs(t, err, portfolio.ErrNotStock)

	_, err = portfolio.ReadStocks(strings.NewReader("name\nT-Bill\n"), other)
	assert.ErrorIs(t, err, portfolio.ErrNotStock)
}

func TestReadStocks(t *testing.T) {
	t.Parallel()

	for _, typ := range []*structure.Type{portfolio.StockType, portfolio.DStockType} {
		t.Run(typ.Name(), func(t *testing.T) {
			f, err := os.Open("testdata/portfolio.csv")
			require.NoError(t, err)
			defer f.Close()

			stocks, err := portfolio.ReadStocks(f, typ)
			require.NoError(t, err)
			require.Len(t, stocks, 7)
			assert.Equal(t, "AA", stocks[0].Name())
			assert.Equal(t, "44671.15", portfolio.TotalCost(stocks).StringFixed(2))
		})
	}
}
