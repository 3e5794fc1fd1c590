package structure_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldkit/pkg/structure"
)

func TestRepr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "None"},
		{"string", "GOOG", "'GOOG'"},
		{"string with quote", "it's", `'it\'s'`},
		{"bool", true, "True"},
		{"int", 100, "100"},
		{"float", 490.1, "490.1"},
		{"whole float", 100.0, "100.0"},
		{"large float", 1e16, "1e+16"},
		{"small float", 0.00001, "1e-05"},
		{"zero float", 0.0, "0.0"},
		{"float32", float32(2.5), "2.5"},
		{"nan", math.NaN(), "nan"},
		{"inf", math.Inf(-1), "-inf"},
		{"decimal", decimal.RequireFromString("32.20"), "Decimal('32.2')"},
		{"slice", []int{1, 2}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, structure.Repr(tt.value))
		})
	}
}
