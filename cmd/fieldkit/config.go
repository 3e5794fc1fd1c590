package main

import "time"

// envPrefix namespaces every environment variable read by the command.
const envPrefix = "FIELDKIT_"

// Config is loaded from FIELDKIT_* variables, an optional YAML file given
// with --config, and the defaults below.
type Config struct {
	DataDir      string        `env:"DATA_DIR" envDefault:"Data"`
	RidesFile    string        `env:"RIDES_FILE" envDefault:"ctabus.csv"`
	PortfolioCSV string        `env:"PORTFOLIO_CSV" envDefault:"portfolio.csv"`
	PortfolioDat string        `env:"PORTFOLIO_DAT" envDefault:"portfolio.dat"`
	SchemaFile   string        `env:"SCHEMA_FILE" envDefault:"stock.yaml"`
	Env          string        `env:"ENV" envDefault:"development"`
	LogLevel     string        `env:"LOG_LEVEL"`
	LogFormat    string        `env:"LOG_FORMAT"`
	WorkerDelay  time.Duration `env:"WORKER_DELAY" envDefault:"2s"`
}
