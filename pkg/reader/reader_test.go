package reader_test

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/reader"
	"github.com/dmitrymomot/fieldkit/pkg/structure"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

var stockType = structure.Define("Stock").
	Field("name", validator.NonEmptyString()).
	Field("shares", validator.PositiveInteger()).
	Field("price", validator.PositiveFloat()).
	MustBuild()

func TestReadCSV(t *testing.T) {
	t.Parallel()

	atoi := func(_, row []string) (int, error) { return strconv.Atoi(row[1]) }

	t.Run("skips header", func(t *testing.T) {
		got, err := reader.ReadCSV(strings.NewReader("a,b\nx,1\ny,2\n"), atoi)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, got)
	})

	t.Run("header only", func(t *testing.T) {
		got, err := reader.ReadCSV(strings.NewReader("a,b\n"), atoi)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := reader.ReadCSV(strings.NewReader(""), atoi)
		assert.ErrorIs(t, err, reader.ErrEmptyInput)
	})

	t.Run("conversion error carries line number", func(t *testing.T) {
		_, err := reader.ReadCSV(strings.NewReader("a,b\nx,1\ny,two\n"), atoi)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")

		var numErr *strconv.NumError
		assert.True(t, errors.As(err, &numErr))
	})

	t.Run("malformed csv", func(t *testing.T) {
		_, err := reader.ReadCSV(strings.NewReader("a,b\n\"x,1\n"), atoi)
		assert.ErrorIs(t, err, reader.ErrMalformed)
	})

	t.Run("custom delimiter", func(t *testing.T) {
		got, err := reader.ReadCSV(strings.NewReader("a;b\nx; 7\n"), atoi,
			reader.WithComma(';'), reader.WithTrimLeadingSpace())
		require.NoError(t, err)
		assert.Equal(t, []int{7}, got)
	})
}

func TestReadInstances(t *testing.T) {
	t.Parallel()

	f, err := os.Open("testdata/portfolio.csv")
	require.NoError(t, err)
	defer f.Close()

	stocks, err := reader.ReadInstances(f, stockType)
	require.NoError(t, err)
	require.Len(t, stocks, 3)
	assert.Equal(t, "Stock('AA', 100, 32.2)", stocks[0].String())
	assert.Equal(t, 150, stocks[2].MustGet("shares"))

	_, err = reader.ReadInstances(strings.NewReader("name,shares,price\nAA,-1,2.0\n"), stockType)
	assert.ErrorIs(t, err, validator.ErrValue)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadMaps(t *testing.T) {
	t.Parallel()
	kinds := []validator.Kind{validator.String(), validator.Integer(), validator.Float()}

	got, err := reader.ReadMaps(strings.NewReader("name,shares,price\nAA,100,32.20\n"), kinds)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"name": "AA", "shares": 100, "price": 32.2}}, got)

	_, err = reader.ReadMaps(strings.NewReader("name,shares,price\nAA,x,32.20\n"), kinds)
	assert.ErrorIs(t, err, validator.ErrValue)
	assert.Contains(t, err.Error(), "shares")

	_, err = reader.ReadMaps(strings.NewReader("name,shares,price\nAA,1\n"), kinds)
	assert.ErrorIs(t, err, reader.ErrColumnCount)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	names, err := reader.ReadFile("testdata/portfolio.csv", func(_, row []string) (string, error) {
		return row[0], nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "IBM", "CAT"}, names)

	_, err = reader.ReadFile("testdata/missing.csv", func(_, row []string) (string, error) {
		return row[0], nil
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
