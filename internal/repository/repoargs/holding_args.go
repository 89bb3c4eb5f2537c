package repoargs

import "github.com/shopspring/decimal"

// PortfolioRow позиция портфеля: остаток на руках плюс текущая стоимость по последней цене.
type PortfolioRow struct {
	StockID      int64
	Name         string
	Symbol       string
	Price        decimal.Decimal
	Quantity     int64
	CurrentValue decimal.Decimal
}
