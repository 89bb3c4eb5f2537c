package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Username          string
	EncryptedPassword string
	Balance           decimal.Decimal
	// LastRecoveryAt время последнего восстановления баланса. nil - юзер еще ни разу не восстанавливался.
	LastRecoveryAt *time.Time
}

type Stock struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Symbol    string
	Price     decimal.Decimal
}

// Holding количество акций одной бумаги на руках у юзера. Запись с нулевым количеством
// не хранится - отсутствие записи означает ноль акций.
type Holding struct {
	UserID   int64
	StockID  int64
	Quantity int64
}

type Transaction struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	StockID   int64
	Side      TransactionSide
	Quantity  int64
	// Price снимок цены акции на момент исполнения сделки. После создания не меняется.
	Price decimal.Decimal
}
