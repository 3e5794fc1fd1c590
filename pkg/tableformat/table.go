package tableformat

import "fmt"

// Record exposes named values.
type Record interface {
	Get(name string) (any, error)
}

// PrintTable writes fields as headings, then one row per record.
func PrintTable[R Record](records []R, fields []string, f Formatter) error {
	if err := f.Headings(fields); err != nil {
		return err
	}
	for i, r := range records {
		row := make([]any, len(fields))
		for j, name := range fields {
			v, err := r.Get(name)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			row[j] = v
		}
		if err := f.Row(row); err != nil {
			return err
		}
	}
	return nil
}
