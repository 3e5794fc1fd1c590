package rides_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/rides"
)

func TestColumns(t *testing.T) {
	t.Parallel()

	c := rides.NewColumns(0)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Rows())

	for i, route := range []string{"3", "4", "6", "22"} {
		c.Append(rides.Row{Route: route, Date: "01/01/2001", DayType: "U", Rides: i})
	}
	require.Equal(t, 4, c.Len())

	t.Run("At", func(t *testing.T) {
		r, err := c.At(0)
		require.NoError(t, err)
		assert.Equal(t, "3", r.Route)

		r, err = c.At(-1)
		require.NoError(t, err)
		assert.Equal(t, "22", r.Route)

		_, err = c.At(4)
		assert.ErrorIs(t, err, rides.ErrIndex)
		_, err = c.At(-5)
		assert.ErrorIs(t, err, rides.ErrIndex)
	})

	t.Run("Slice", func(t *testing.T) {
		routes := func(rows []rides.Row) []string {
			out := make([]string, len(rows))
			for i, r := range rows {
				out[i] = r.Route
			}
			return out
		}

		assert.Equal(t, []string{"4", "6"}, routes(c.Slice(1, 3)))
		assert.Equal(t, []string{"6", "22"}, routes(c.Slice(-2, 4)))
		assert.Equal(t, []string{"3", "4", "6"}, routes(c.Slice(0, -1)))
		assert.Equal(t, []string{"3", "4", "6", "22"}, routes(c.Slice(-10, 10)))
		assert.Empty(t, c.Slice(-1, -1))
		assert.Empty(t, c.Slice(3, 1))
	})
}
