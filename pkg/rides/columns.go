package rides

import "fmt"

// Columns keeps ride data as four parallel slices instead of a slice of rows.
// All slices always have the same length.
type Columns struct {
	routes   []string
	dates    []string
	dayTypes []string
	rides    []int
}

// NewColumns returns an empty store with room for capacity rows.
func NewColumns(capacity int) *Columns {
	return &Columns{
		routes:   make([]string, 0, capacity),
		dates:    make([]string, 0, capacity),
		dayTypes: make([]string, 0, capacity),
		rides:    make([]int, 0, capacity),
	}
}

func (c *Columns) Len() int { return len(c.routes) }

func (c *Columns) Append(r Row) {
	c.routes = append(c.routes, r.Route)
	c.dates = append(c.dates, r.Date)
	c.dayTypes = append(c.dayTypes, r.DayType)
	c.rides = append(c.rides, r.Rides)
}

// At returns row i. Negative indices count from the end.
func (c *Columns) At(i int) (Row, error) {
	n := c.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return Row{}, fmt.Errorf("%w: %d of %d", ErrIndex, i, n)
	}
	return c.row(i), nil
}

// Slice returns rows in [start, stop). Negative bounds count from the end and
// out-of-range bounds are clamped, so Slice(-1, -1) is empty.
func (c *Columns) Slice(start, stop int) []Row {
	start, stop = c.clamp(start), c.clamp(stop)
	if start >= stop {
		return []Row{}
	}
	out := make([]Row, 0, stop-start)
	for i := start; i < stop; i++ {
		out = append(out, c.row(i))
	}
	return out
}

// Rows materializes every row.
func (c *Columns) Rows() []Row {
	return c.Slice(0, c.Len())
}

func (c *Columns) row(i int) Row {
	return Row{Route: c.routes[i], Date: c.dates[i], DayType: c.dayTypes[i], Rides: c.rides[i]}
}

func (c *Columns) clamp(i int) int {
	n := c.Len()
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}
