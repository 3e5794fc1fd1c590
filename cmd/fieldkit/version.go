package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	// Skip setup: printing the version needs neither config nor data.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fieldkit version %s\n", fieldkit.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
