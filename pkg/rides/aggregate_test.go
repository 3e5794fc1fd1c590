package rides_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/rides"
)

func TestCountRoutes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5, rides.CountRoutes(loadRows(t)))
	assert.Equal(t, 0, rides.CountRoutes(nil))
}

func TestRidesOn(t *testing.T) {
	t.Parallel()
	rows := loadRows(t)

	n, err := rides.RidesOn(rows, "22", "02/02/2011")
	require.NoError(t, err)
	assert.Equal(t, 5167, n)

	_, err = rides.RidesOn(rows, "22", "02/02/1999")
	assert.ErrorIs(t, err, rides.ErrNoMatch)
}

func TestTotalsByRoute(t *testing.T) {
	t.Parallel()

	t.Run("two rows on one route", func(t *testing.T) {
		rows := []rides.Row{
			{Route: "22", Date: "02/02/2011", DayType: "U", Rides: 5167},
			{Route: "22", Date: "02/03/2011", DayType: "W", Rides: 8000},
		}
		assert.Equal(t, map[string]int{"22": 13167}, rides.TotalsByRoute(rows))
	})

	t.Run("sample file", func(t *testing.T) {
		want := map[string]int{"3": 15354, "4": 18288, "6": 10646, "9": 100, "22": 19167}
		if diff := cmp.Diff(want, rides.TotalsByRoute(loadRows(t))); diff != "" {
			t.Errorf("TotalsByRoute mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRidesByYear(t *testing.T) {
	t.Parallel()

	got, err := rides.RidesByYear(loadRows(t))
	require.NoError(t, err)
	want := map[string]map[string]int{
		"2001": {"3": 7354, "4": 9288, "6": 5000, "22": 6000},
		"2011": {"3": 8000, "4": 9000, "6": 5646, "9": 100, "22": 13167},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RidesByYear mismatch (-want +got):\n%s", diff)
	}

	_, err = rides.RidesByYear([]rides.Row{{Route: "1", Date: "yesterday"}})
	assert.ErrorIs(t, err, rides.ErrBadDate)
}

func TestGreatestIncrease(t *testing.T) {
	t.Parallel()
	rows := loadRows(t)

	tests := []struct {
		name string
		n    int
		want []rides.RouteDelta
	}{
		{
			name: "all increases, ties by route",
			n:    5,
			want: []rides.RouteDelta{
				{Route: "22", Delta: 7167},
				{Route: "3", Delta: 646},
				{Route: "6", Delta: 646},
				{Route: "9", Delta: 100},
			},
		},
		{
			name: "top two",
			n:    2,
			want: []rides.RouteDelta{{Route: "22", Delta: 7167}, {Route: "3", Delta: 646}},
		},
		{
			name: "none",
			n:    0,
			want: []rides.RouteDelta{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rides.GreatestIncrease(rows, "2001", "2011", tt.n)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GreatestIncrease mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("decline only", func(t *testing.T) {
		got, err := rides.GreatestIncrease(rows, "2011", "2001", 5)
		require.NoError(t, err)
		assert.Equal(t, []rides.RouteDelta{{Route: "4", Delta: 288}}, got)
	})
}
