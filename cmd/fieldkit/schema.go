package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/reader"
	"github.com/dmitrymomot/fieldkit/pkg/structure"
	"github.com/dmitrymomot/fieldkit/pkg/tableformat"
)

var schemaOpts struct {
	typeName string
	file     string
	format   string
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Load types from a YAML schema and read a CSV file with one of them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		f, err := tableformat.New(schemaOpts.format, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		types, err := readData(state.cfg.SchemaFile, func(r io.Reader) ([]*structure.Type, error) {
			return structure.LoadSchema(r, nil, structure.OnDefine(structure.LogDefinitions(state.log)))
		})
		if err != nil {
			return err
		}

		var typ *structure.Type
		for _, t := range types {
			if schemaOpts.typeName == "" || t.Name() == schemaOpts.typeName {
				typ = t
			}
		}
		if typ == nil {
			return fmt.Errorf("%s: no type named %q", state.cfg.SchemaFile, schemaOpts.typeName)
		}

		file := schemaOpts.file
		if file == "" {
			file = state.cfg.PortfolioCSV
		}
		records, err := readData(file, func(r io.Reader) ([]*structure.Instance, error) {
			return reader.ReadInstances(r, typ)
		})
		if err != nil {
			return err
		}
		state.log.DebugContext(cmd.Context(), "records read", logger.Type(typ.Name()), logger.Count(len(records)))

		return tableformat.PrintTable(records, typ.Fields(), f)
	},
}

func init() {
	f := schemaCmd.Flags()
	f.StringVar(&schemaOpts.typeName, "type", "", "type to read with (default: the last one declared)")
	f.StringVar(&schemaOpts.file, "file", "", "CSV file in the data directory (default: the portfolio CSV)")
	f.StringVar(&schemaOpts.format, "format", tableformat.FormatText, "output format: text, csv or html")
	rootCmd.AddCommand(schemaCmd)
}
