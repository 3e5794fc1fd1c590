package rides

import (
	"cmp"
	"fmt"
	"slices"
)

// RouteDelta is the change in total rides on a route between two years.
type RouteDelta struct {
	Route string
	Delta int
}

// CountRoutes returns the number of distinct routes.
func CountRoutes(rows []Row) int {
	seen := make(map[string]struct{})
	for _, r := range rows {
		seen[r.Route] = struct{}{}
	}
	return len(seen)
}

// RidesOn returns the rides recorded for route on date (MM/DD/YYYY).
// If several rows match, the first one wins.
func RidesOn(rows []Row, route, date string) (int, error) {
	for _, r := range rows {
		if r.Route == route && r.Date == date {
			return r.Rides, nil
		}
	}
	return 0, fmt.Errorf("%w: route %s on %s", ErrNoMatch, route, date)
}

// TotalsByRoute sums rides per route.
func TotalsByRoute(rows []Row) map[string]int {
	totals := make(map[string]int)
	for _, r := range rows {
		totals[r.Route] += r.Rides
	}
	return totals
}

// RidesByYear sums rides per year, then per route.
func RidesByYear(rows []Row) (map[string]map[string]int, error) {
	byYear := make(map[string]map[string]int)
	for _, r := range rows {
		year, err := r.Year()
		if err != nil {
			return nil, err
		}
		if byYear[year] == nil {
			byYear[year] = make(map[string]int)
		}
		byYear[year][r.Route] += r.Rides
	}
	return byYear, nil
}

// GreatestIncrease returns up to n routes whose yearly total grew the most
// from year1 to year2. Routes that did not grow are left out. Results are
// ordered by delta, largest first, then by route name.
func GreatestIncrease(rows []Row, year1, year2 string, n int) ([]RouteDelta, error) {
	byYear, err := RidesByYear(rows)
	if err != nil {
		return nil, err
	}

	before, after := byYear[year1], byYear[year2]
	deltas := make([]RouteDelta, 0, len(after))
	for route, total := range after {
		if d := total - before[route]; d > 0 {
			deltas = append(deltas, RouteDelta{Route: route, Delta: d})
		}
	}

	slices.SortFunc(deltas, func(a, b RouteDelta) int {
		if c := cmp.Compare(b.Delta, a.Delta); c != 0 {
			return c
		}
		return cmp.Compare(a.Route, b.Route)
	})

	if n >= 0 && len(deltas) > n {
		deltas = deltas[:n]
	}
	return deltas, nil
}
