package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/rides"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

var memoryAs string

var representations = []string{"tuples", "maps", "rows", "instances", "columns"}

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Compare the memory cost of ride record representations",
	Args:  cobra.NoArgs,
	RunE:  runMemory,
}

func init() {
	memoryCmd.Flags().StringVar(&memoryAs, "as", "rows", "representation: tuples, maps, rows, instances or columns")
	rootCmd.AddCommand(memoryCmd)
}

func runMemory(cmd *cobra.Command, _ []string) error {
	if err := validator.Apply(validator.InList("as", memoryAs, representations)); err != nil {
		return err
	}

	runtime.GC()
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	data, count, err := readRepresentation(memoryAs)
	if err != nil {
		return err
	}

	runtime.ReadMemStats(&after)
	current := int64(after.HeapAlloc) - int64(before.HeapAlloc)
	peak := after.TotalAlloc - before.TotalAlloc

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Representation: %s\n", memoryAs)
	fmt.Fprintf(out, "Records: %d\n", count)
	fmt.Fprintf(out, "Memory Use: Current %d, Peak %d\n", max(current, 0), peak)

	if cols, ok := data.(*rides.Columns); ok && cols.Len() > 0 {
		last, _ := cols.At(-1)
		fmt.Fprintf(out, "Last record: %+v\n", last)
	}
	runtime.KeepAlive(data)
	return nil
}

func readRepresentation(kind string) (any, int, error) {
	switch kind {
	case "tuples":
		v, err := readData(state.cfg.RidesFile, rides.ReadAsTuples)
		return v, len(v), err
	case "maps":
		v, err := readData(state.cfg.RidesFile, rides.ReadAsMaps)
		return v, len(v), err
	case "instances":
		v, err := readData(state.cfg.RidesFile, rides.ReadAsInstances)
		return v, len(v), err
	case "columns":
		v, err := readData(state.cfg.RidesFile, rides.ReadAsColumns)
		if err != nil {
			return nil, 0, err
		}
		return v, v.Len(), nil
	default:
		v, err := readData(state.cfg.RidesFile, rides.ReadAsRows)
		return v, len(v), err
	}
}
