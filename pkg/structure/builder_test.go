package structure_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/structure"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		builder *structure.Builder
		wantErr error
	}{
		{
			name:    "empty type name",
			builder: structure.Define("").Field("a", validator.String()),
			wantErr: structure.ErrInvalidDeclaration,
		},
		{
			name:    "field with reserved prefix",
			builder: structure.Define("T").Field("_a", validator.String()),
			wantErr: structure.ErrInvalidDeclaration,
		},
		{
			name:    "field that is not an identifier",
			builder: structure.Define("T").Field("a b", validator.String()),
			wantErr: structure.ErrInvalidDeclaration,
		},
		{
			name: "duplicate field",
			builder: structure.Define("T").
				Field("a", validator.String()).
				Field("a", validator.Integer()),
			wantErr: structure.ErrInvalidDeclaration,
		},
		{
			name:    "unknown kind",
			builder: structure.Define("T").FieldOf("a", "Money"),
			wantErr: validator.ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := tt.builder.Build()
			assert.Nil(t, typ)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Panics(t, func() { structure.Define("").MustBuild() })
}

func TestBuild_FieldOf(t *testing.T) {
	t.Parallel()

	reg := validator.DefaultRegistry()
	require.NoError(t, reg.Register(validator.Kind{
		Name:      "Ticker",
		Validator: validator.Chain(validator.Type[string](), validator.NonEmpty()),
	}))

	typ, err := structure.Define("Quote", structure.WithRegistry(reg)).
		FieldOf("symbol", "Ticker").
		FieldOf("price", "PositiveFloat").
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"symbol", "price"}, typ.Fields())

	_, err = typ.New("", 1.0)
	assert.ErrorIs(t, err, validator.ErrValue)

	f, ok := typ.Field("price")
	require.True(t, ok)
	assert.Equal(t, "PositiveFloat", f.Kind.Name)
	_, ok = typ.Field("nope")
	assert.False(t, ok)
}

func TestBuild_Extends(t *testing.T) {
	t.Parallel()
	stock := stockType(t)

	dstock, err := structure.Define("DStock", structure.Extends(stock)).
		Field("price", validator.PositiveDecimal()).
		Field("exchange", validator.String()).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "shares", "price", "exchange"}, dstock.Fields())
	assert.Same(t, stock, dstock.Parent())
	assert.True(t, dstock.IsA(stock))
	assert.False(t, stock.IsA(dstock))
	assert.Equal(t, 3, stock.NumField(), "parent is not modified")

	t.Run("inherited validators still apply", func(t *testing.T) {
		_, err := dstock.New("GOOG", -1, decimal.NewFromFloat(1.5), "NASDAQ")
		assert.ErrorIs(t, err, validator.ErrValue)
	})

	t.Run("redeclared field uses the new kind", func(t *testing.T) {
		_, err := dstock.New("GOOG", 1, 490.1, "NASDAQ")
		assert.ErrorIs(t, err, validator.ErrType)

		s, err := dstock.New("GOOG", 1, decimal.RequireFromString("490.10"), "NASDAQ")
		require.NoError(t, err)
		assert.Equal(t, "DStock('GOOG', 1, Decimal('490.1'), 'NASDAQ')", s.String())
	})
}

func TestBuild_OnDefine(t *testing.T) {
	t.Parallel()

	var got []structure.Definition
	hook := func(d structure.Definition) { got = append(got, d) }

	base := structure.Define("Stock", structure.OnDefine(hook)).
		Field("name", validator.String()).
		Field("shares", validator.Integer()).
		MustBuild()
	structure.Define("MyStock", structure.Extends(base), structure.OnDefine(hook, nil)).MustBuild()

	require.Len(t, got, 2)
	assert.Equal(t, structure.Definition{Name: "Stock", Fields: []string{"name", "shares"}}, got[0])
	assert.Equal(t, structure.Definition{Name: "MyStock", Bases: []string{"Stock"}, Fields: []string{}}, got[1])
}

func TestLogDefinitions(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))

	structure.Define("Stock", structure.OnDefine(structure.LogDefinitions(log))).
		Field("name", validator.String()).
		MustBuild()

	out := buf.String()
	assert.Contains(t, out, "creating type")
	assert.Contains(t, out, "type=Stock")
	assert.Contains(t, out, "attributes=[name]")
}

func TestWithTracer(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))

	foo := structure.Define("Foo", structure.WithTracer(log)).
		Field("a", validator.Any()).
		Field("b", validator.Any()).
		MustBuild()
	f, err := foo.New(1, 2)
	require.NoError(t, err)

	_, _ = f.Get("a")
	require.NoError(t, f.Set("a", 23))
	require.NoError(t, f.Delete("a"))

	out := buf.String()
	assert.Contains(t, out, "msg=get type=Foo field=a")
	assert.Contains(t, out, "msg=set type=Foo field=a value=23")
	assert.Contains(t, out, "msg=delete type=Foo field=a")

	t.Run("subtypes inherit the tracer", func(t *testing.T) {
		buf.Reset()
		bar := structure.Define("Bar", structure.Extends(foo)).MustBuild()
		b, err := bar.New(1, 2)
		require.NoError(t, err)
		_, _ = b.Get("b")
		assert.Contains(t, buf.String(), "msg=get type=Bar field=b")
	})
}
