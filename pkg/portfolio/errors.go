package portfolio

import "errors"

// ErrNotStock is returned when an instance's type does not extend StockType.
var ErrNotStock = errors.New("portfolio: instance is not a Stock")
