package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/portfolio"
	"github.com/dmitrymomot/fieldkit/pkg/tableformat"
)

var tableOpts struct {
	format  string
	upper   bool
	columns []string
	fields  []string
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print selected portfolio fields as a text, CSV or HTML table",
	Example: `  fieldkit table --format csv --fields name,shares
  fieldkit table --upper --columns %s,%d,%0.2f`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var opts []tableformat.Option
		if len(tableOpts.columns) > 0 {
			opts = append(opts, tableformat.WithColumnFormats(tableOpts.columns...))
		}
		if tableOpts.upper {
			opts = append(opts, tableformat.WithUpperHeaders())
		}

		f, err := tableformat.New(tableOpts.format, cmd.OutOrStdout(), opts...)
		if err != nil {
			return err
		}

		stocks, err := loadStocks(portfolio.DStockType)
		if err != nil {
			return err
		}
		return tableformat.PrintTable(stocks, tableOpts.fields, f)
	},
}

func init() {
	f := tableCmd.Flags()
	f.StringVar(&tableOpts.format, "format", tableformat.FormatText, "output format: text, csv or html")
	f.BoolVar(&tableOpts.upper, "upper", false, "upper-case the headings")
	f.StringSliceVar(&tableOpts.columns, "columns", nil, "printf verbs applied to the cells, in column order")
	f.StringSliceVar(&tableOpts.fields, "fields",
		[]string{portfolio.FieldName, portfolio.FieldShares, portfolio.FieldPrice}, "fields to print")
	rootCmd.AddCommand(tableCmd)
}
