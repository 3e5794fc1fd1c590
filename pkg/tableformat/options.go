package tableformat

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Option wraps a Formatter with extra behavior.
type Option func(Formatter) Formatter

// WithColumnFormats applies one fmt verb per column before the row reaches
// the formatter. Extra cells beyond the formats are dropped.
func WithColumnFormats(formats ...string) Option {
	return func(next Formatter) Formatter {
		return &columnFormatter{Formatter: next, formats: formats}
	}
}

// WithUpperHeaders upper-cases the headings.
func WithUpperHeaders() Option {
	return func(next Formatter) Formatter {
		return &upperHeaders{Formatter: next, caser: cases.Upper(language.Und)}
	}
}

type columnFormatter struct {
	Formatter
	formats []string
}

func (c *columnFormatter) Row(row []any) error {
	n := min(len(row), len(c.formats))
	cells := make([]any, n)
	for i := range n {
		cells[i] = formatCell(c.formats[i], row[i])
	}
	return c.Formatter.Row(cells)
}

type upperHeaders struct {
	Formatter
	caser cases.Caser
}

func (u *upperHeaders) Headings(headers []string) error {
	upper := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = u.caser.String(h)
	}
	return u.Formatter.Headings(upper)
}

// formatCell lets float verbs format decimals.
func formatCell(format string, v any) string {
	if d, ok := v.(decimal.Decimal); ok && format != "" && strings.ContainsAny(format[len(format)-1:], "eEfFgG") {
		return fmt.Sprintf(format, d.InexactFloat64())
	}
	return fmt.Sprintf(format, v)
}
