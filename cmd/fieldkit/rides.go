package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/rides"
	"github.com/dmitrymomot/fieldkit/pkg/tableformat"
)

var ridesOpts struct {
	route  string
	date   string
	from   string
	to     string
	top    int
	format string
}

var ridesCmd = &cobra.Command{
	Use:   "rides",
	Short: "Answer questions about the bus ridership file",
	Long: `Reads the ridership CSV and prints the number of routes, the rides on one
route and date, the total rides per route and the routes with the greatest
increase between two years.`,
	Args: cobra.NoArgs,
	RunE: runRides,
}

func init() {
	f := ridesCmd.Flags()
	f.StringVar(&ridesOpts.route, "route", "22", "route for the single-day lookup")
	f.StringVar(&ridesOpts.date, "date", "02/02/2011", "date for the single-day lookup (MM/DD/YYYY)")
	f.StringVar(&ridesOpts.from, "from", "2001", "first year of the comparison")
	f.StringVar(&ridesOpts.to, "to", "2011", "second year of the comparison")
	f.IntVar(&ridesOpts.top, "top", 5, "number of routes in the comparison")
	f.StringVar(&ridesOpts.format, "format", tableformat.FormatText, "table format for totals: text, csv or html")
	rootCmd.AddCommand(ridesCmd)
}

func runRides(cmd *cobra.Command, _ []string) error {
	table, err := tableformat.New(ridesOpts.format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	rows, err := loadRides()
	if err != nil {
		return err
	}
	state.log.InfoContext(cmd.Context(), "rides loaded", logger.Count(len(rows)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total number of routes: %d\n", rides.CountRoutes(rows))

	n, err := rides.RidesOn(rows, ridesOpts.route, ridesOpts.date)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Total number of riders for %s on %s: %d\n", ridesOpts.route, ridesOpts.date, n)

	fmt.Fprintln(out, "Total number of rides by route:")
	totals := rides.TotalsByRoute(rows)
	routes := make([]string, 0, len(totals))
	for r := range totals {
		routes = append(routes, r)
	}
	slices.Sort(routes)
	records := make([]rides.Row, len(routes))
	for i, r := range routes {
		records[i] = rides.Row{Route: r, Rides: totals[r]}
	}
	if err := tableformat.PrintTable(records, []string{rides.FieldRoute, rides.FieldRides}, table); err != nil {
		return err
	}

	deltas, err := rides.GreatestIncrease(rows, ridesOpts.from, ridesOpts.to, ridesOpts.top)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Top %d greatest increases in riders from %s to %s:\n", ridesOpts.top, ridesOpts.from, ridesOpts.to)
	for _, d := range deltas {
		fmt.Fprintf(out, "%10s %10d\n", d.Route, d.Delta)
	}
	return nil
}
