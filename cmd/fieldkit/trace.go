package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/structure"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Log attribute access on a traced type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		foo, err := structure.Define("Foo", structure.WithTracer(state.log)).
			Field("a", validator.Integer()).
			Field("b", validator.Integer()).
			Build()
		if err != nil {
			return err
		}

		f, err := foo.New(1, 2)
		if err != nil {
			return err
		}
		a, err := f.Get("a")
		if err != nil {
			return err
		}
		if err := f.Set("b", 3); err != nil {
			return err
		}
		if err := f.Delete("a"); err != nil {
			return err
		}
		_, missing := f.Get("a")

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "a = %v\n", a)
		fmt.Fprintf(out, "after delete: %v\n", missing)
		fmt.Fprintln(out, f)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
