// Package fieldkit is a toolkit for validated records and the tabular data
// files they come from.
//
// The work happens in the packages under pkg:
//
//   - validator: value kinds (positive integer, non-empty string, decimal...) and a registry of them
//   - structure: record types built from ordered, validated field declarations
//   - reader: CSV readers producing tuples, maps, structs or typed instances
//   - rides: bus ridership records and their aggregations
//   - portfolio: stock holdings, reports and cost totals
//   - tableformat: text, CSV and HTML table output
//   - logcall: call logging decorators for plain functions
//   - async: futures resolved by worker goroutines
//
// The fieldkit command in cmd/fieldkit drives all of them against the files
// of a data directory.
//
// Basic usage:
//
//	stock := structure.Define("Stock").
//		Field("name", validator.NonEmptyString()).
//		Field("shares", validator.PositiveInteger()).
//		Field("price", validator.PositiveFloat()).
//		MustBuild()
//
//	s, err := stock.New("GOOG", 100, 490.1)
//	if err != nil {
//		return err
//	}
//	err = s.Set("shares", -50) // validator.ErrValue
package fieldkit
