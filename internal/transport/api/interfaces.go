package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/tradesphere/internal/domain"
	"github.com/fsdevblog/tradesphere/internal/repository/repoargs"
	"github.com/fsdevblog/tradesphere/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type MarketServicer interface {
	GetStocks(ctx context.Context) ([]domain.Stock, error)
}

type TradeServicer interface {
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	GetPortfolio(ctx context.Context, userID int64) ([]repoargs.PortfolioRow, error)
	Transactions(ctx context.Context, userID int64) ([]repoargs.TransactionRow, error)
	Buy(ctx context.Context, userID, stockID, quantity int64) (*service.TradeResult, error)
	Sell(ctx context.Context, userID, stockID, quantity int64) (*service.TradeResult, error)
}

type RecoveryServicer interface {
	Status(ctx context.Context, userID int64) (*service.RecoveryStatus, error)
	Recover(ctx context.Context, userID int64) (*service.RecoveryResult, error)
}
