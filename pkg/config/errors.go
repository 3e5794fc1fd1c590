package config

import "errors"

var (
	// ErrParsingConfig wraps caarlos0/env failures: bad values, missing required variables.
	ErrParsingConfig = errors.New("failed to parse config")

	// ErrReadingFile means a YAML or .env file could not be opened or decoded.
	ErrReadingFile = errors.New("failed to read config file")

	// ErrUnsupportedValue is returned for YAML keys holding a nested mapping.
	// The file layer only maps scalars and lists onto variables.
	ErrUnsupportedValue = errors.New("unsupported config file value")

	ErrConfigNotLoaded = errors.New("config not loaded")
	ErrNilPointer      = errors.New("nil config pointer")
)
