package validator

import (
	"math"
	"reflect"

	"github.com/shopspring/decimal"
)

// Validator checks a single value bound to a field and returns the value to
// store. A non-nil error means nothing must be stored.
type Validator interface {
	Check(field string, value any) (any, error)
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(field string, value any) (any, error)

func (f ValidatorFunc) Check(field string, value any) (any, error) {
	return f(field, value)
}

// Type accepts only values whose dynamic type is exactly T.
func Type[T any]() Validator {
	expected := reflect.TypeFor[T]().String()
	return ValidatorFunc(func(field string, value any) (any, error) {
		if _, ok := value.(T); !ok {
			return nil, typeError(field, expected, value)
		}
		return value, nil
	})
}

// Positive rejects negative numbers. Zero is accepted.
// Non-numeric values fail with ErrType since they cannot be compared.
func Positive() Validator {
	return ValidatorFunc(func(field string, value any) (any, error) {
		sign, ok := signOf(value)
		if !ok {
			return nil, typeError(field, "number", value)
		}
		if sign < 0 {
			return nil, valueError(field, "must be >= 0", "validation.positive")
		}
		return value, nil
	})
}

// NonEmpty rejects zero-length strings, slices, arrays and maps.
func NonEmpty() Validator {
	return ValidatorFunc(func(field string, value any) (any, error) {
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
			if rv.Len() == 0 {
				return nil, valueError(field, "must be non-empty", "validation.non_empty")
			}
			return value, nil
		default:
			return nil, typeError(field, "sized value", value)
		}
	})
}

// Chain runs validators in order; the first failure stops the chain.
// Each validator receives the value returned by the previous one.
func Chain(validators ...Validator) Validator {
	return ValidatorFunc(func(field string, value any) (any, error) {
		for _, v := range validators {
			if v == nil {
				continue
			}
			checked, err := v.Check(field, value)
			if err != nil {
				return nil, err
			}
			value = checked
		}
		return value, nil
	})
}

func signOf(value any) (int, bool) {
	switch n := value.(type) {
	case decimal.Decimal:
		return n.Sign(), true
	case *decimal.Decimal:
		if n == nil {
			return 0, false
		}
		return n.Sign(), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return compareZero(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() == 0 {
			return 0, true
		}
		return 1, true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return 0, true
		}
		return compareZero(f), true
	default:
		return 0, false
	}
}

func compareZero[T int64 | float64](v T) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
