package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/portfolio"
	"github.com/dmitrymomot/fieldkit/pkg/structure"
)

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Show field validation on a single stock",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		s, err := portfolio.NewStock("GOOG", 100, 490.1)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, structure.Repr(s.Instance()))
		fmt.Fprintf(out, "shares = %d\n", s.Shares())
		fmt.Fprintf(out, "cost = %s\n", s.Cost().StringFixed(2))

		if err := s.SetShares(-50); err != nil {
			fmt.Fprintf(out, "set shares = -50: %v\n", err)
		}
		if err := s.Instance().Set("share", 100); err != nil {
			fmt.Fprintf(out, "set share = 100: %v\n", err)
		}
		if err := s.Sell(25); err != nil {
			return err
		}
		fmt.Fprintf(out, "after selling 25: %s\n", s)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stockCmd)
}
