package main

import (
	"fmt"
	"io"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/portfolio"
	"github.com/dmitrymomot/fieldkit/pkg/rides"
	"github.com/dmitrymomot/fieldkit/pkg/structure"
)

// readData opens name in the data directory and hands it to read.
func readData[T any](name string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := state.data.Open(name)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	v, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", name, err)
	}
	state.log.Debug("loaded data file", logger.File(name))
	return v, nil
}

func loadRides() ([]rides.Row, error) {
	return readData(state.cfg.RidesFile, rides.ReadAsRows)
}

func loadStocks(typ *structure.Type) ([]*portfolio.Stock, error) {
	return readData(state.cfg.PortfolioCSV, func(r io.Reader) ([]*portfolio.Stock, error) {
		return portfolio.ReadStocks(r, typ)
	})
}
