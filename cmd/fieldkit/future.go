package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/async"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

var futureOpts struct {
	x, y    int
	jobs    int
	timeout time.Duration
}

var futureCmd = &cobra.Command{
	Use:   "future",
	Short: "Run a slow worker and wait for its result",
	Args:  cobra.NoArgs,
	RunE:  runFuture,
}

func init() {
	f := futureCmd.Flags()
	f.IntVar(&futureOpts.x, "x", 2, "first operand")
	f.IntVar(&futureOpts.y, "y", 3, "second operand")
	f.IntVar(&futureOpts.jobs, "jobs", 1, "number of concurrent workers")
	f.DurationVar(&futureOpts.timeout, "timeout", 0, "give up waiting after this long (0 waits forever)")
	rootCmd.AddCommand(futureCmd)
}

// worker adds x and y after the configured delay.
func worker(ctx context.Context, in operands) (int, error) {
	state.log.InfoContext(ctx, "About to work")
	select {
	case <-time.After(state.cfg.WorkerDelay):
	case <-ctx.Done():
		return 0, ctx.Err()
	}
	state.log.InfoContext(ctx, "Done")
	return in.X + in.Y, nil
}

func runFuture(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if futureOpts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, futureOpts.timeout)
		defer cancel()
	}

	in := operands{futureOpts.x, futureOpts.y}
	out := cmd.OutOrStdout()

	if futureOpts.jobs <= 1 {
		fut := async.NewFuture[int]()
		go func() {
			_ = fut.Resolve(worker(ctx, in))
		}()

		got, err := fut.AwaitContext(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Got: %d\n", got)
		return nil
	}

	futures := make([]*async.Future[int], futureOpts.jobs)
	for i := range futures {
		jobCtx := logger.WithContext(ctx, slog.Int("job", i))
		futures[i] = async.Async(jobCtx, operands{in.X + i, in.Y}, worker)
	}
	results, err := async.WaitAll(futures...)
	if err != nil {
		return err
	}
	for i, r := range results {
		fmt.Fprintf(out, "Job %d got: %d\n", i, r)
	}
	return nil
}
