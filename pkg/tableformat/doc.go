// Package tableformat prints records as text, CSV or HTML tables.
//
// A Formatter receives the headings once and then one call per row. New
// picks an implementation by name and applies options that decorate it:
//
//	f, err := tableformat.New("text", os.Stdout,
//		tableformat.WithColumnFormats("%s", "%d", "%0.2f"),
//		tableformat.WithUpperHeaders(),
//	)
//	if err != nil {
//		return err
//	}
//	err = tableformat.PrintTable(stocks, []string{"name", "shares", "price"}, f)
//
// Any value with a Get(name) (any, error) method is a Record: structure
// instances, portfolio stocks and ride rows all qualify.
//
// HTML cells are sanitized with a strict bluemonday policy, so markup in the
// data is stripped and special characters are escaped.
package tableformat
