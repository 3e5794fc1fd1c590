// Package config loads application configuration into tagged structs.
//
// Values come from three layers, highest precedence first:
//
//  1. process environment variables (including those set from .env files
//     through github.com/joho/godotenv)
//  2. an optional YAML file given with WithFile
//  3. envDefault tags
//
// Parsing is done by github.com/caarlos0/env/v11. The YAML file is a flat
// mapping whose keys are environment variable names without the prefix,
// case-insensitive:
//
//	data_dir: Data
//	log_level: debug
//
// With WithPrefix("FIELDKIT_") the key data_dir feeds the field tagged
// env:"DATA_DIR", and so does the variable FIELDKIT_DATA_DIR.
//
// Each distinct combination of struct type, file and prefix is parsed once
// per process and cached. Reset clears the cache, which is mostly useful in
// tests.
//
//	type Config struct {
//		DataDir  string `env:"DATA_DIR" envDefault:"Data"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FIELDKIT_"), config.WithFile("fieldkit.yaml")); err != nil {
//		return err
//	}
package config
