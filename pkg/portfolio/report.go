package portfolio

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

// PrintPortfolio writes a fixed-width table of name, shares and price.
func PrintPortfolio(w io.Writer, stocks []*Stock) error {
	if _, err := fmt.Fprintf(w, "%10s %10s %10s\n", FieldName, FieldShares, FieldPrice); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 33)); err != nil {
		return err
	}
	for _, s := range stocks {
		if _, err := fmt.Fprintf(w, "%10s %10d %10s\n", s.Name(), s.Shares(), s.Price().StringFixed(2)); err != nil {
			return err
		}
	}
	return nil
}

// PortfolioCost sums shares*price over "name shares price" lines.
// Blank lines are ignored. Lines that cannot be parsed are logged with the
// reason and skipped. Only read errors are returned.
func PortfolioCost(r io.Reader, log *slog.Logger) (decimal.Decimal, error) {
	if log == nil {
		log = logger.Discard()
	}

	total := decimal.Zero
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		cols := strings.Fields(line)
		if len(cols) == 0 {
			continue
		}

		cost, err := lineCost(cols)
		if err != nil {
			log.Warn("couldn't parse", logger.Line(n), slog.String("text", line), logger.Error(err))
			continue
		}
		total = total.Add(cost)
	}
	if err := sc.Err(); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func lineCost(cols []string) (decimal.Decimal, error) {
	if len(cols) < 3 {
		return decimal.Zero, fmt.Errorf("want 3 columns, got %d", len(cols))
	}
	shares, err := strconv.Atoi(cols[1])
	if err != nil {
		return decimal.Zero, err
	}
	price, err := decimal.NewFromString(cols[2])
	if err != nil {
		return decimal.Zero, err
	}
	return price.Mul(decimal.NewFromInt(int64(shares))), nil
}
