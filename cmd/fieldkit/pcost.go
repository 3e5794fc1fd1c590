package main

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/portfolio"
)

var pcostCmd = &cobra.Command{
	Use:   "pcost [file]",
	Short: "Sum shares*price over a whitespace-separated portfolio file",
	Long: `Reads "name shares price" lines from the file (portfolio.dat in the data
directory by default). Lines that cannot be parsed are logged and skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := state.cfg.PortfolioDat
		if len(args) == 1 {
			name = args[0]
		}

		total, err := readData(name, func(r io.Reader) (decimal.Decimal, error) {
			return portfolio.PortfolioCost(r, state.log)
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Total cost: %s\n", total.StringFixed(2))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pcostCmd)
}
