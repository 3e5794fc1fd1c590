package validator

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Kind is a named, reusable field declaration: the validator applied on every
// assignment and the parser used when the value arrives as raw text.
type Kind struct {
	Name      string
	Validator Validator
	Parse     func(raw string) (any, error)
}

// Check runs the kind's validator. A kind without a validator accepts anything.
func (k Kind) Check(field string, value any) (any, error) {
	if k.Validator == nil {
		return value, nil
	}
	return k.Validator.Check(field, value)
}

// ParseValue converts raw text into the kind's Go type.
// Kinds without a parser keep the text as is.
func (k Kind) ParseValue(raw string) (any, error) {
	if k.Parse == nil {
		return raw, nil
	}
	return k.Parse(raw)
}

// Any accepts every value.
func Any() Kind {
	return Kind{Name: "Any", Parse: parseString}
}

func String() Kind {
	return Kind{Name: "String", Validator: Type[string](), Parse: parseString}
}

func Integer() Kind {
	return Kind{Name: "Integer", Validator: Type[int](), Parse: parseInt}
}

func Float() Kind {
	return Kind{Name: "Float", Validator: Type[float64](), Parse: parseFloat}
}

func Decimal() Kind {
	return Kind{Name: "Decimal", Validator: Type[decimal.Decimal](), Parse: parseDecimal}
}

func PositiveInteger() Kind {
	return Kind{Name: "PositiveInteger", Validator: Chain(Type[int](), Positive()), Parse: parseInt}
}

func PositiveFloat() Kind {
	return Kind{Name: "PositiveFloat", Validator: Chain(Type[float64](), Positive()), Parse: parseFloat}
}

func PositiveDecimal() Kind {
	return Kind{Name: "PositiveDecimal", Validator: Chain(Type[decimal.Decimal](), Positive()), Parse: parseDecimal}
}

func NonEmptyString() Kind {
	return Kind{Name: "NonEmptyString", Validator: Chain(Type[string](), NonEmpty()), Parse: parseString}
}

func parseString(raw string) (any, error) {
	return raw, nil
}

func parseInt(raw string) (any, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValue, err)
	}
	return n, nil
}

func parseFloat(raw string) (any, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValue, err)
	}
	return f, nil
}

func parseDecimal(raw string) (any, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValue, err)
	}
	return d, nil
}
