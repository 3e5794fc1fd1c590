package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/datadir"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// app holds what every subcommand needs once setup has run.
type app struct {
	cfg   Config
	log   *slog.Logger
	data  *datadir.Dir
	runID string
}

var (
	state app

	configFile  string
	dataDirFlag string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "fieldkit",
	Short: "Validated records, CSV readers and ride statistics",
	Long: `fieldkit loads CTA bus ridership and stock portfolio files from a data
directory and demonstrates declarative field validation on top of them.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "directory containing the data files (default \"Data\")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
}

func setup(cmd *cobra.Command, _ []string) error {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(envPrefix), config.WithFile(configFile)); err != nil {
		return err
	}
	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	data, err := datadir.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("data directory: %w", err)
	}

	state = app{cfg: cfg, log: log, data: data, runID: uuid.NewString()}

	ctx := logger.WithContext(cmd.Context(), logger.RunID(state.runID))
	cmd.SetContext(ctx)
	log.DebugContext(ctx, "starting", logger.Component(cmd.Name()), logger.File(data.Base()))
	return nil
}

func newLogger(cfg Config) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "fieldkit"),
		logger.WithOutput(os.Stderr),
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}

	if cfg.LogFormat != "" {
		if err := validator.Apply(
			validator.InList("log_format", cfg.LogFormat, []string{string(logger.FormatJSON), string(logger.FormatText)}),
		); err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}

	return logger.New(opts...), nil
}
