package rides

import "errors"

var (
	ErrColumnCount = errors.New("rides: row must have 4 columns")
	ErrNoMatch     = errors.New("rides: no record for route and date")
	ErrBadDate     = errors.New("rides: date is not MM/DD/YYYY")
	ErrIndex       = errors.New("rides: index out of range")
)
