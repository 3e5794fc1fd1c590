package rides

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/structure"
)

// Column names as they appear in maps and table output.
const (
	FieldRoute   = "route"
	FieldDate    = "date"
	FieldDayType = "daytype"
	FieldRides   = "rides"
)

// Fields lists the column names in file order.
var Fields = []string{FieldRoute, FieldDate, FieldDayType, FieldRides}

// Row is one day of ridership on one route.
type Row struct {
	Route   string
	Date    string
	DayType string
	Rides   int
}

// Tuple is the positional form of a Row: route, date, day type, rides.
type Tuple [4]any

// ParseRow converts the four text columns of a data line.
func ParseRow(cols []string) (Row, error) {
	if len(cols) != len(Fields) {
		return Row{}, fmt.Errorf("%w, got %d", ErrColumnCount, len(cols))
	}
	n, err := strconv.Atoi(cols[3])
	if err != nil {
		return Row{}, fmt.Errorf("%s: %w", FieldRides, err)
	}
	return Row{Route: cols[0], Date: cols[1], DayType: cols[2], Rides: n}, nil
}

// Get returns a column by name.
func (r Row) Get(name string) (any, error) {
	switch name {
	case FieldRoute:
		return r.Route, nil
	case FieldDate:
		return r.Date, nil
	case FieldDayType:
		return r.DayType, nil
	case FieldRides:
		return r.Rides, nil
	}
	return nil, fmt.Errorf("%w: Row has no attribute %q", structure.ErrNoAttribute, name)
}

// Year extracts the YYYY part of the date.
func (r Row) Year() (string, error) {
	parts := strings.Split(r.Date, "/")
	if len(parts) != 3 || len(parts[2]) != 4 {
		return "", fmt.Errorf("%w: %q", ErrBadDate, r.Date)
	}
	return parts[2], nil
}

func (r Row) Tuple() Tuple {
	return Tuple{r.Route, r.Date, r.DayType, r.Rides}
}

func (r Row) Map() map[string]any {
	return map[string]any{
		FieldRoute:   r.Route,
		FieldDate:    r.Date,
		FieldDayType: r.DayType,
		FieldRides:   r.Rides,
	}
}

// RowFromMap is the inverse of Row.Map.
func RowFromMap(m map[string]any) (Row, error) {
	var r Row
	var ok bool
	if r.Route, ok = m[FieldRoute].(string); !ok {
		return Row{}, fmt.Errorf("%w: %s", structure.ErrNoAttribute, FieldRoute)
	}
	if r.Date, ok = m[FieldDate].(string); !ok {
		return Row{}, fmt.Errorf("%w: %s", structure.ErrNoAttribute, FieldDate)
	}
	if r.DayType, ok = m[FieldDayType].(string); !ok {
		return Row{}, fmt.Errorf("%w: %s", structure.ErrNoAttribute, FieldDayType)
	}
	if r.Rides, ok = m[FieldRides].(int); !ok {
		return Row{}, fmt.Errorf("%w: %s", structure.ErrNoAttribute, FieldRides)
	}
	return r, nil
}
