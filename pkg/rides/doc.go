// Package rides loads CTA bus ridership data and answers questions about it.
//
// The input is a CSV file with a header row and four columns: route, date
// (MM/DD/YYYY), day type and number of rides. The same data can be read into
// several representations that differ only in memory layout:
//
//	tuples, _ := rides.ReadAsTuples(f)   // []rides.Tuple
//	maps, _ := rides.ReadAsMaps(f)       // []map[string]any
//	rows, _ := rides.ReadAsRows(f)       // []rides.Row
//	ptrs, _ := rides.ReadAsInstances(f)  // []*rides.Row
//	cols, _ := rides.ReadAsColumns(f)    // *rides.Columns, one slice per column
//
// Aggregations operate on []Row:
//
//	rides.CountRoutes(rows)
//	rides.RidesOn(rows, "22", "02/02/2011")
//	rides.TotalsByRoute(rows)
//	rides.GreatestIncrease(rows, "2001", "2011", 5)
//
// A rides column that is not an integer fails the whole read with the
// underlying *strconv.NumError.
package rides
