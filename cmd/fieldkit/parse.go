package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/kv"
)

var parseCmd = &cobra.Command{
	Use:   "parse [key=value...]",
	Short: "Split key=value arguments",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"todd=cool"}
		}

		pairs, invalid := kv.ParseAll(args)
		out := cmd.OutOrStdout()
		for _, p := range pairs {
			fmt.Fprintf(out, "%s: %s\n", p[0], p[1])
		}
		if len(invalid) > 0 {
			return fmt.Errorf("invalid key=value: %s", strings.Join(invalid, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
