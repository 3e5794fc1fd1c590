package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files [dir]",
	Short: "List data files",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		entries, err := state.data.List(cmd.Context(), dir, ".csv", ".dat", ".yaml")
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range entries {
			if e.IsDir {
				fmt.Fprintf(out, "%-24s %10s\n", e.Path+"/", "-")
				continue
			}
			fmt.Fprintf(out, "%-24s %10d\n", e.Path, e.Size)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filesCmd)
}
