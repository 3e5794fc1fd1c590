package tableformat

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Supported format names.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatHTML = "html"
)

// Formatter emits a table one line at a time.
type Formatter interface {
	Headings(headers []string) error
	Row(cells []any) error
}

// Formats lists the names accepted by New.
func Formats() []string {
	return []string{FormatText, FormatCSV, FormatHTML}
}

// New returns the formatter named kind writing to w, decorated by opts in order.
func New(kind string, w io.Writer, opts ...Option) (Formatter, error) {
	var f Formatter
	switch kind {
	case FormatText:
		f = NewText(w)
	case FormatCSV:
		f = NewCSV(w)
	case FormatHTML:
		f = NewHTML(w)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, kind)
	}
	for _, opt := range opts {
		f = opt(f)
	}
	return f, nil
}

// NewPortfolio is the preset used for stock listings: a text table with
// upper-case headings and name, shares, price column formats.
func NewPortfolio(w io.Writer) Formatter {
	f, _ := New(FormatText, w,
		WithColumnFormats("%s", "%d", "%0.2f"),
		WithUpperHeaders(),
	)
	return f
}

type textFormatter struct {
	w io.Writer
}

// NewText right-aligns every cell in a 10 character column.
func NewText(w io.Writer) Formatter {
	return &textFormatter{w: w}
}

func (t *textFormatter) Headings(headers []string) error {
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = fmt.Sprintf("%10s", h)
	}
	_, err := fmt.Fprintf(t.w, "%s\n%s\n",
		strings.Join(cells, " "),
		strings.Repeat(strings.Repeat("-", 10)+" ", len(headers)))
	return err
}

func (t *textFormatter) Row(row []any) error {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = fmt.Sprintf("%10v", c)
	}
	_, err := fmt.Fprintln(t.w, strings.Join(cells, " "))
	return err
}

type csvFormatter struct {
	w *csv.Writer
}

func NewCSV(w io.Writer) Formatter {
	return &csvFormatter{w: csv.NewWriter(w)}
}

func (c *csvFormatter) Headings(headers []string) error {
	return c.write(headers)
}

func (c *csvFormatter) Row(row []any) error {
	cells := make([]string, len(row))
	for i, v := range row {
		cells[i] = fmt.Sprint(v)
	}
	return c.write(cells)
}

func (c *csvFormatter) write(record []string) error {
	if err := c.w.Write(record); err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}

var (
	cellPolicyOnce sync.Once
	cellPolicy     *bluemonday.Policy
)

func cellSanitizer() *bluemonday.Policy {
	cellPolicyOnce.Do(func() {
		cellPolicy = bluemonday.StrictPolicy()
	})
	return cellPolicy
}

type htmlFormatter struct {
	w io.Writer
}

// NewHTML writes one <tr> element per line. Cell text is sanitized.
func NewHTML(w io.Writer) Formatter {
	return &htmlFormatter{w: w}
}

func (h *htmlFormatter) Headings(headers []string) error {
	cells := make([]any, len(headers))
	for i, v := range headers {
		cells[i] = v
	}
	return h.line("th", cells)
}

func (h *htmlFormatter) Row(row []any) error {
	return h.line("td", row)
}

func (h *htmlFormatter) line(tag string, cells []any) error {
	policy := cellSanitizer()
	var b strings.Builder
	b.WriteString("<tr>")
	for _, c := range cells {
		fmt.Fprintf(&b, " <%s>%s</%s>", tag, policy.Sanitize(fmt.Sprint(c)), tag)
	}
	b.WriteString(" </tr>\n")
	_, err := io.WriteString(h.w, b.String())
	return err
}
