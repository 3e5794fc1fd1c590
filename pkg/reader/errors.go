package reader

import "errors"

var (
	// ErrEmptyInput is returned when the input has no header row.
	ErrEmptyInput = errors.New("reader: input has no header row")
	// ErrMalformed wraps CSV syntax errors such as unbalanced quotes.
	ErrMalformed = errors.New("reader: malformed csv")
	// ErrColumnCount is returned when a row does not have the expected number of columns.
	ErrColumnCount = errors.New("reader: unexpected column count")
)
