// Package reader turns header-having CSV input into typed records.
//
// Every reader skips the first row, converts each following row and stops
// at the first failure. A conversion error is reported with the 1-based
// line number of the row and still unwraps to the original cause, so callers
// can match it with errors.Is:
//
//	stocks, err := reader.ReadInstances(f, portfolio.StockType)
//	if errors.Is(err, validator.ErrValue) {
//		// a column did not parse or failed its constraint
//	}
//
// There is no partial-row recovery: a single bad row fails the whole read.
package reader
