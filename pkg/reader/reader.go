package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/fieldkit/pkg/structure"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Converter turns one data row into a record. header is the first row of the input.
type Converter[T any] func(header, row []string) (T, error)

// Option configures the underlying csv.Reader.
type Option func(*csv.Reader)

// WithComma sets the field delimiter.
func WithComma(r rune) Option {
	return func(cr *csv.Reader) { cr.Comma = r }
}

// WithTrimLeadingSpace ignores leading white space in every field.
func WithTrimLeadingSpace() Option {
	return func(cr *csv.Reader) { cr.TrimLeadingSpace = true }
}

// ReadCSV reads the header row, then converts each remaining row with convert.
func ReadCSV[T any](r io.Reader, convert Converter[T], opts ...Option) ([]T, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	for _, opt := range opts {
		opt(cr)
	}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, errors.Join(ErrMalformed, err)
	}

	var records []T
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrMalformed, err)
		}

		rec, err := convert(header, row)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadFile opens path and reads it with ReadCSV.
func ReadFile[T any](path string, convert Converter[T], opts ...Option) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ReadCSV(f, convert, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// ReadInstances builds one instance of typ per row using typ.FromRow.
func ReadInstances(r io.Reader, typ *structure.Type, opts ...Option) ([]*structure.Instance, error) {
	return ReadCSV(r, func(_, row []string) (*structure.Instance, error) {
		return typ.FromRow(row)
	}, opts...)
}

// ReadMaps converts each row into a map keyed by the header names.
// kinds supplies one parser and validator per column.
func ReadMaps(r io.Reader, kinds []validator.Kind, opts ...Option) ([]map[string]any, error) {
	return ReadCSV(r, func(header, row []string) (map[string]any, error) {
		if len(row) != len(kinds) || len(header) != len(kinds) {
			return nil, fmt.Errorf("%w: want %d, got %d", ErrColumnCount, len(kinds), len(row))
		}

		rec := make(map[string]any, len(kinds))
		for i, kind := range kinds {
			v, err := kind.ParseValue(row[i])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", header[i], err)
			}
			if v, err = kind.Check(header[i], v); err != nil {
				return nil, err
			}
			rec[header[i]] = v
		}
		return rec, nil
	}, opts...)
}
