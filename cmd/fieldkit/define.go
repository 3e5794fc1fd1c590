package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/structure"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

var defineCmd = &cobra.Command{
	Use:   "define",
	Short: "Log type definitions as they are built",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		hook := structure.OnDefine(structure.LogDefinitions(state.log))

		stock, err := structure.Define("Stock", hook).
			Field("name", validator.NonEmptyString()).
			Field("shares", validator.PositiveInteger()).
			Field("price", validator.PositiveFloat()).
			Build()
		if err != nil {
			return err
		}
		mine, err := structure.Define("MyStock", hook, structure.Extends(stock)).
			Field("price", validator.PositiveDecimal()).
			Build()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, t := range []*structure.Type{stock, mine} {
			fmt.Fprintf(out, "%s %v\n", t.Name(), t.Fields())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(defineCmd)
}
