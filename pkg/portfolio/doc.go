// Package portfolio models stock holdings on top of package structure.
//
// StockType declares name (non-empty string), shares (non-negative int) and
// price (non-negative float64). DStockType extends it and redeclares price as
// a decimal.Decimal. Both are wrapped by Stock, which exposes typed
// accessors and keeps every assignment validated:
//
//	s, _ := portfolio.NewStock("GOOG", 100, 490.1)
//	s.Cost()           // 49010
//	err := s.Sell(500) // validator.ErrValue, shares stay at 100
//
// PortfolioCost sums a whitespace separated "name shares price" file,
// logging and skipping lines it cannot parse.
package portfolio
