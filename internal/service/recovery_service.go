package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/tradesphere/internal/domain"
	"github.com/fsdevblog/tradesphere/internal/repository/repoargs"
	"github.com/fsdevblog/tradesphere/pkg/uow"
)

// RecoveryWindow минимальный интервал между восстановлениями баланса одного юзера.
const RecoveryWindow = 24 * time.Hour

// RecoveryAmount фиксированная сумма восстановления.
var RecoveryAmount = decimal.NewFromInt(5000)

type RecoveryService struct {
	uow      uow.UOW
	userRepo UserRepository
	timeNow  func() time.Time
}

func NewRecoveryService(u uow.UOW) (*RecoveryService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err
	}
	return &RecoveryService{
		uow:      u,
		userRepo: userRepo,
		timeNow:  time.Now,
	}, nil
}

type RecoveryStatus struct {
	CanRecover bool
	// TimeLeft сколько осталось ждать до следующего восстановления. Заполнено только
	// когда CanRecover == false.
	TimeLeft time.Duration
}

type RecoveryResult struct {
	Amount     decimal.Decimal
	NewBalance decimal.Decimal
}

// Status сообщает, доступно ли юзеру восстановление баланса. Юзер, который еще ни разу
// не восстанавливался, может восстановиться сразу.
func (r *RecoveryService) Status(ctx context.Context, userID int64) (*RecoveryStatus, error) {
	user, err := r.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return recoveryStatusFor(user, r.timeNow()), nil
}

// Recover начисляет юзеру RecoveryAmount, если с прошлого восстановления прошло не меньше
// RecoveryWindow. Проверка окна и начисление выполняются одной транзакцией под блокировкой
// строки юзера: два конкурентных запроса не выбьют два бонуса в одном окне.
func (r *RecoveryService) Recover(ctx context.Context, userID int64) (*RecoveryResult, error) {
	now := r.timeNow()

	var result *RecoveryResult
	txErr := r.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, repoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		user, userErr := userRepo.FindUserByIDForUpdate(c, userID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		status := recoveryStatusFor(user, now)
		if !status.CanRecover {
			return domain.NewRecoveryNotAvailableError(status.TimeLeft)
		}

		updated, updErr := userRepo.UpdateBalanceAndRecoveryAt(c, userID, user.Balance.Add(RecoveryAmount), now)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		result = &RecoveryResult{Amount: RecoveryAmount, NewBalance: updated.Balance}
		return nil
	})
	if txErr != nil {
		var notAvailable *domain.RecoveryNotAvailableError
		if errors.As(txErr, &notAvailable) {
			return nil, txErr
		}
		return nil, fmt.Errorf("recovering balance for user %d: %w", userID, txErr)
	}
	return result, nil
}

func recoveryStatusFor(user *domain.User, now time.Time) *RecoveryStatus {
	if user.LastRecoveryAt == nil {
		return &RecoveryStatus{CanRecover: true}
	}
	elapsed := now.Sub(*user.LastRecoveryAt)
	if elapsed >= RecoveryWindow {
		return &RecoveryStatus{CanRecover: true}
	}
	return &RecoveryStatus{CanRecover: false, TimeLeft: RecoveryWindow - elapsed}
}
