package repoargs

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/tradesphere/internal/domain"
)

type CreateTransaction struct {
	UserID   int64
	StockID  int64
	Side     domain.TransactionSide
	Quantity int64
	Price    decimal.Decimal
}

// TransactionRow строка истории сделок вместе с данными бумаги (join на stocks).
type TransactionRow struct {
	ID        int64
	CreatedAt time.Time
	StockID   int64
	Name      string
	Symbol    string
	Side      domain.TransactionSide
	Quantity  int64
	Price     decimal.Decimal
}
