package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/tradesphere/internal/domain"
	"github.com/fsdevblog/tradesphere/internal/repository/repoargs"
	"github.com/fsdevblog/tradesphere/pkg/uow"
)

// DefaultTransactionsLimit сколько последних сделок отдает история по умолчанию.
const DefaultTransactionsLimit uint = 50

type TradeService struct {
	uow             uow.UOW
	userRepo        UserRepository
	holdingRepo     HoldingRepository
	transactionRepo TransactionRepository
}

func NewTradeService(u uow.UOW) (*TradeService, error) {
	userRepo, userErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userErr != nil {
		return nil, userErr
	}
	holdingRepo, holdingErr := uow.GetRepositoryAs[HoldingRepository](u, uow.RepositoryName(repoargs.HoldingRepoName))
	if holdingErr != nil {
		return nil, holdingErr
	}
	rName := uow.RepositoryName(repoargs.TransactionRepoName)
	transactionRepo, transErr := uow.GetRepositoryAs[TransactionRepository](u, rName)
	if transErr != nil {
		return nil, transErr
	}
	return &TradeService{
		uow:             u,
		userRepo:        userRepo,
		holdingRepo:     holdingRepo,
		transactionRepo: transactionRepo,
	}, nil
}

// TradeResult итог исполненной сделки.
type TradeResult struct {
	NewBalance  decimal.Decimal
	Transaction domain.Transaction
}

func (t *TradeService) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	user, err := t.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return decimal.Decimal{}, err //nolint:wrapcheck
	}
	return user.Balance, nil
}

func (t *TradeService) GetPortfolio(ctx context.Context, userID int64) ([]repoargs.PortfolioRow, error) {
	portfolio, err := t.holdingRepo.GetPortfolio(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return portfolio, nil
}

func (t *TradeService) Transactions(ctx context.Context, userID int64) ([]repoargs.TransactionRow, error) {
	transactions, err := t.transactionRepo.GetRecentByUserID(ctx, userID, DefaultTransactionsLimit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

// Buy покупает quantity акций бумаги stockID по текущей цене. Списание баланса, инкремент
// позиции и запись в журнал сделок выполняются одной транзакцией: частично примененную
// покупку снаружи не увидеть. Строка юзера блокируется FOR UPDATE - проверка баланса и
// списание не могут разъехаться с конкурентной сделкой того же юзера.
//
// Цена берется из базы на момент исполнения, клиентской цене мы не доверяем.
func (t *TradeService) Buy(ctx context.Context, userID, stockID, quantity int64) (*TradeResult, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var result *TradeResult
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := tradeRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		user, userErr := repos.users.FindUserByIDForUpdate(c, userID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		stock, stockErr := repos.stocks.FindStockByID(c, stockID)
		if stockErr != nil {
			return stockErr //nolint:wrapcheck
		}

		cost := stock.Price.Mul(decimal.NewFromInt(quantity)).Round(moneyScale)
		if user.Balance.LessThan(cost) {
			return domain.ErrNotEnoughBalance
		}

		updated, updErr := repos.users.UpdateBalance(c, userID, user.Balance.Sub(cost))
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}
		if _, holdErr := repos.holdings.IncrementHolding(c, userID, stockID, quantity); holdErr != nil {
			return holdErr //nolint:wrapcheck
		}
		transaction, transErr := repos.transactions.CreateTransaction(c, repoargs.CreateTransaction{
			UserID:   userID,
			StockID:  stockID,
			Side:     domain.SideBuy,
			Quantity: quantity,
			Price:    stock.Price,
		})
		if transErr != nil {
			return transErr //nolint:wrapcheck
		}

		result = &TradeResult{NewBalance: updated.Balance, Transaction: *transaction}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("buying stock %d for user %d: %w", stockID, userID, txErr)
	}
	return result, nil
}

// Sell продает quantity акций бумаги stockID по текущей цене. Атомарность та же, что и у Buy.
// Позиция, дошедшая ровно до нуля, удаляется - нулевые записи в holdings не живут.
func (t *TradeService) Sell(ctx context.Context, userID, stockID, quantity int64) (*TradeResult, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var result *TradeResult
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := tradeRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		user, userErr := repos.users.FindUserByIDForUpdate(c, userID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		stock, stockErr := repos.stocks.FindStockByID(c, stockID)
		if stockErr != nil {
			return stockErr //nolint:wrapcheck
		}

		holding, holdErr := repos.holdings.FindHolding(c, userID, stockID)
		if holdErr != nil {
			if errors.Is(holdErr, domain.ErrRecordNotFound) {
				return domain.ErrNotEnoughShares
			}
			return holdErr //nolint:wrapcheck
		}
		if holding.Quantity < quantity {
			return domain.ErrNotEnoughShares
		}

		proceeds := stock.Price.Mul(decimal.NewFromInt(quantity)).Round(moneyScale)
		updated, updErr := repos.users.UpdateBalance(c, userID, user.Balance.Add(proceeds))
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		newQuantity := holding.Quantity - quantity
		if newQuantity == 0 {
			if delErr := repos.holdings.DeleteHolding(c, userID, stockID); delErr != nil {
				return delErr //nolint:wrapcheck
			}
		} else {
			if _, qtyErr := repos.holdings.UpdateQuantity(c, userID, stockID, newQuantity); qtyErr != nil {
				return qtyErr //nolint:wrapcheck
			}
		}

		transaction, transErr := repos.transactions.CreateTransaction(c, repoargs.CreateTransaction{
			UserID:   userID,
			StockID:  stockID,
			Side:     domain.SideSell,
			Quantity: quantity,
			Price:    stock.Price,
		})
		if transErr != nil {
			return transErr //nolint:wrapcheck
		}

		result = &TradeResult{NewBalance: updated.Balance, Transaction: *transaction}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("selling stock %d for user %d: %w", stockID, userID, txErr)
	}
	return result, nil
}

type tradeRepoSet struct {
	users        UserRepository
	stocks       StockRepository
	holdings     HoldingRepository
	transactions TransactionRepository
}

// tradeRepos достает из транзакции все репозитории, нужные для исполнения сделки.
func tradeRepos(tx uow.TX) (*tradeRepoSet, error) {
	users, usersErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if usersErr != nil {
		return nil, usersErr //nolint:wrapcheck
	}
	stocks, stocksErr := uow.GetAs[StockRepository](tx, uow.RepositoryName(repoargs.StockRepoName))
	if stocksErr != nil {
		return nil, stocksErr //nolint:wrapcheck
	}
	holdings, holdingsErr := uow.GetAs[HoldingRepository](tx, uow.RepositoryName(repoargs.HoldingRepoName))
	if holdingsErr != nil {
		return nil, holdingsErr //nolint:wrapcheck
	}
	transactions, transErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if transErr != nil {
		return nil, transErr //nolint:wrapcheck
	}
	return &tradeRepoSet{
		users:        users,
		stocks:       stocks,
		holdings:     holdings,
		transactions: transactions,
	}, nil
}
