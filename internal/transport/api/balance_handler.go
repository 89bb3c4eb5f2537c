package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/tradesphere/internal/domain"
)

type BalanceHandler struct {
	tradeSvs    TradeServicer
	recoverySvs RecoveryServicer
}

func NewBalanceHandler(tradeSvs TradeServicer, recoverySvs RecoveryServicer) *BalanceHandler {
	return &BalanceHandler{
		tradeSvs:    tradeSvs,
		recoverySvs: recoverySvs,
	}
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// Index GET RouteGroup + BalanceRoute.
func (b *BalanceHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := b.tradeSvs.GetBalance(reqCtx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{Balance: balance.InexactFloat64()})
}

type RecoveryStatusResponse struct {
	CanRecover  bool `json:"can_recover"`
	HoursLeft   *int `json:"hours_left,omitempty"`
	MinutesLeft *int `json:"minutes_left,omitempty"`
}

// RecoveryStatus GET RouteGroup + RecoveryStatusRoute. Остаток времени отдается целыми часами
// и минутами (округление вниз).
func (b *BalanceHandler) RecoveryStatus(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	status, err := b.recoverySvs.Status(reqCtx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := RecoveryStatusResponse{CanRecover: status.CanRecover}
	if !status.CanRecover {
		hours := int(status.TimeLeft.Hours())
		minutes := int(status.TimeLeft.Minutes()) % 60 //nolint:mnd
		response.HoursLeft = &hours
		response.MinutesLeft = &minutes
	}

	c.JSON(http.StatusOK, response)
}

type RecoveryResponse struct {
	Success        bool    `json:"success"`
	RecoveryAmount float64 `json:"recovery_amount"`
	NewBalance     float64 `json:"new_balance"`
}

// Recover POST RouteGroup + RecoverRoute.
func (b *BalanceHandler) Recover(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := b.recoverySvs.Recover(reqCtx, currentUserID)
	if err != nil {
		var notAvailable *domain.RecoveryNotAvailableError
		switch {
		case errors.As(err, &notAvailable):
			_ = c.AbortWithError(http.StatusConflict, notAvailable).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, &RecoveryResponse{
		Success:        true,
		RecoveryAmount: result.Amount.InexactFloat64(),
		NewBalance:     result.NewBalance.InexactFloat64(),
	})
}
