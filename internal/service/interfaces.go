package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/tradesphere/internal/domain"
	"github.com/fsdevblog/tradesphere/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	// FindUserByIDForUpdate блокирует строку юзера до конца текущей транзакции (SELECT ... FOR UPDATE).
	FindUserByIDForUpdate(ctx context.Context, id int64) (*domain.User, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (*domain.User, error)
	UpdateBalanceAndRecoveryAt(
		ctx context.Context,
		id int64,
		balance decimal.Decimal,
		recoveredAt time.Time,
	) (*domain.User, error)
}

type StockRepository interface {
	GetAllStocks(ctx context.Context) ([]domain.Stock, error)
	FindStockByID(ctx context.Context, id int64) (*domain.Stock, error)
	UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error
	GetPriceRefreshedAt(ctx context.Context) (time.Time, error)
	LockPriceRefresh(ctx context.Context) (time.Time, error)
	SetPriceRefreshedAt(ctx context.Context, refreshedAt time.Time) error
}

type HoldingRepository interface {
	FindHolding(ctx context.Context, userID, stockID int64) (*domain.Holding, error)
	IncrementHolding(ctx context.Context, userID, stockID, delta int64) (*domain.Holding, error)
	UpdateQuantity(ctx context.Context, userID, stockID, quantity int64) (*domain.Holding, error)
	DeleteHolding(ctx context.Context, userID, stockID int64) error
	GetPortfolio(ctx context.Context, userID int64) ([]repoargs.PortfolioRow, error)
}

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, transaction repoargs.CreateTransaction) (*domain.Transaction, error)
	GetRecentByUserID(ctx context.Context, userID int64, limit uint) ([]repoargs.TransactionRow, error)
}
