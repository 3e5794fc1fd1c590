package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/portfolio"
	"github.com/dmitrymomot/fieldkit/pkg/structure"
)

var portfolioPlain bool

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Print the portfolio report, its records and the total cost",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		typ := portfolio.DStockType
		if portfolioPlain {
			typ = portfolio.StockType
		}

		stocks, err := loadStocks(typ)
		if err != nil {
			return err
		}
		state.log.DebugContext(cmd.Context(), "portfolio loaded", logger.Type(typ.Name()), logger.Count(len(stocks)))

		out := cmd.OutOrStdout()
		if err := portfolio.PrintPortfolio(out, stocks); err != nil {
			return err
		}
		fmt.Fprintln(out)
		for _, s := range stocks {
			fmt.Fprintln(out, structure.Repr(s.Instance()))
		}
		fmt.Fprintf(out, "Total cost: %s\n", portfolio.TotalCost(stocks).StringFixed(2))
		return nil
	},
}

func init() {
	portfolioCmd.Flags().BoolVar(&portfolioPlain, "plain", false, "use float prices instead of decimals")
	rootCmd.AddCommand(portfolioCmd)
}
