package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/logcall"
)

type operands struct{ X, Y int }

func add(_ context.Context, in operands) (int, error) { return in.X + in.Y, nil }

func sub(_ context.Context, in operands) (int, error) { return in.X - in.Y, nil }

var logcallOpts struct {
	format string
	plain  bool
	x, y   int
}

var logcallCmd = &cobra.Command{
	Use:   "logcall",
	Short: "Wrap functions with call logging",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var wrap logcall.Decorator[operands, int]
		if logcallOpts.plain {
			wrap = func(fn logcall.Func[operands, int]) logcall.Func[operands, int] {
				return logcall.Logged(state.log, fn)
			}
		} else {
			d, err := logcall.LogFormat[operands, int](state.log, logcallOpts.format)
			if err != nil {
				return err
			}
			wrap = d
		}

		in := operands{logcallOpts.x, logcallOpts.y}
		out := cmd.OutOrStdout()
		for _, fn := range []logcall.Func[operands, int]{add, sub} {
			got, err := wrap(fn)(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s(%d, %d) = %d\n", logcall.Describe(fn).Name, in.X, in.Y, got)
		}
		return nil
	},
}

func init() {
	f := logcallCmd.Flags()
	f.StringVar(&logcallOpts.format, "format", "{{.File}}:{{.Name}}", "message template over Name, Package, File and Line")
	f.BoolVar(&logcallOpts.plain, "plain", false, `log a fixed "calling" message instead of the template`)
	f.IntVar(&logcallOpts.x, "x", 2, "first operand")
	f.IntVar(&logcallOpts.y, "y", 43, "second operand")
	rootCmd.AddCommand(logcallCmd)
}
