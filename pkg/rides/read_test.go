package rides_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/reader"
	"github.com/dmitrymomot/fieldkit/pkg/rides"
	"github.com/dmitrymomot/fieldkit/pkg/structure"
)

const sample = "testdata/ctabus.csv"

func loadRows(t *testing.T) []rides.Row {
	t.Helper()
	rows, err := rides.Load(sample, rides.ReadAsRows)
	require.NoError(t, err)
	return rows
}

func TestReaders_AgreeOnContent(t *testing.T) {
	t.Parallel()
	rows := loadRows(t)
	require.Len(t, rows, 10)
	assert.Equal(t, rides.Row{Route: "22", Date: "02/02/2011", DayType: "U", Rides: 5167}, rows[8])

	tuples, err := rides.Load(sample, rides.ReadAsTuples)
	require.NoError(t, err)
	maps, err := rides.Load(sample, rides.ReadAsMaps)
	require.NoError(t, err)
	ptrs, err := rides.Load(sample, rides.ReadAsInstances)
	require.NoError(t, err)
	cols, err := rides.Load(sample, rides.ReadAsColumns)
	require.NoError(t, err)

	require.Len(t, tuples, len(rows))
	require.Len(t, maps, len(rows))
	require.Len(t, ptrs, len(rows))
	require.Equal(t, len(rows), cols.Len())

	for i, row := range rows {
		assert.Equal(t, row.Tuple(), tuples[i])
		fromMap, err := rides.RowFromMap(maps[i])
		require.NoError(t, err)
		assert.Equal(t, row, fromMap)
		assert.Equal(t, row, *ptrs[i])
	}
	assert.Equal(t, rows, cols.Rows())
}

func TestReaders_MalformedRides(t *testing.T) {
	t.Parallel()
	input := "route,date,daytype,rides\n22,02/02/2011,U,5167\n22,02/03/2011,W,lots\n"

	_, err := rides.ReadAsRows(strings.NewReader(input))
	require.Error(t, err)

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr), "conversion failure must propagate")
	assert.Contains(t, err.Error(), "line 3")

	_, err = rides.ReadAsColumns(strings.NewReader(input))
	assert.True(t, errors.As(err, &numErr))
}

func TestReaders_ShortRow(t *testing.T) {
	t.Parallel()
	_, err := rides.ReadAsMaps(strings.NewReader("route,date,daytype,rides\n22,02/02/2011\n"))
	assert.ErrorIs(t, err, rides.ErrColumnCount)
}

func TestReaders_EmptyInput(t *testing.T) {
	t.Parallel()
	_, err := rides.ReadAsTuples(strings.NewReader(""))
	assert.ErrorIs(t, err, reader.ErrEmptyInput)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := rides.Load("testdata/nope.csv", rides.ReadAsRows)
	assert.Error(t, err)
}

func TestRow_Get(t *testing.T) {
	t.Parallel()
	row := rides.Row{Route: "22", Date: "02/02/2011", DayType: "U", Rides: 5167}

	for _, name := range rides.Fields {
		v, err := row.Get(name)
		require.NoError(t, err)
		assert.Equal(t, row.Map()[name], v)
	}

	_, err := row.Get("ride")
	assert.ErrorIs(t, err, structure.ErrNoAttribute)

	year, err := row.Year()
	require.NoError(t, err)
	assert.Equal(t, "2011", year)

	_, err = rides.Row{Date: "2011-02-02"}.Year()
	assert.ErrorIs(t, err, rides.ErrBadDate)
}
