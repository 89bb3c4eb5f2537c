package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrNotEnoughBalance = errors.New("not enough balance")
	ErrNotEnoughShares  = errors.New("not enough shares")
)

// RecoveryNotAvailableError возвращается при попытке восстановить баланс раньше, чем истекло
// 24-часовое окно. TimeLeft - сколько осталось ждать.
type RecoveryNotAvailableError struct {
	TimeLeft time.Duration
}

func NewRecoveryNotAvailableError(timeLeft time.Duration) error {
	return &RecoveryNotAvailableError{TimeLeft: timeLeft}
}

func (e *RecoveryNotAvailableError) Error() string {
	hours := int(e.TimeLeft.Hours())
	minutes := int(e.TimeLeft.Minutes()) % 60 //nolint:mnd
	return fmt.Sprintf("recovery available in %dh %dm", hours, minutes)
}
