package rides

import (
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/fieldkit/pkg/reader"
)

func ReadAsTuples(r io.Reader) ([]Tuple, error) {
	return reader.ReadCSV(r, func(_, cols []string) (Tuple, error) {
		row, err := ParseRow(cols)
		return row.Tuple(), err
	})
}

func ReadAsMaps(r io.Reader) ([]map[string]any, error) {
	return reader.ReadCSV(r, func(_, cols []string) (map[string]any, error) {
		row, err := ParseRow(cols)
		if err != nil {
			return nil, err
		}
		return row.Map(), nil
	})
}

func ReadAsRows(r io.Reader) ([]Row, error) {
	return reader.ReadCSV(r, func(_, cols []string) (Row, error) {
		return ParseRow(cols)
	})
}

// ReadAsInstances allocates every record separately on the heap.
func ReadAsInstances(r io.Reader) ([]*Row, error) {
	return reader.ReadCSV(r, func(_, cols []string) (*Row, error) {
		row, err := ParseRow(cols)
		if err != nil {
			return nil, err
		}
		return &row, nil
	})
}

// ReadAsColumns stores the data column by column.
func ReadAsColumns(r io.Reader) (*Columns, error) {
	rows, err := ReadAsRows(r)
	if err != nil {
		return nil, err
	}
	c := NewColumns(len(rows))
	for _, row := range rows {
		c.Append(row)
	}
	return c, nil
}

// Load opens path and decodes it with read.
func Load[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	v, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
