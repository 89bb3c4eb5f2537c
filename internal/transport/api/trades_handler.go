package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/tradesphere/internal/domain"
	"github.com/fsdevblog/tradesphere/internal/service"
)

type TradesHandler struct {
	tradeSvs TradeServicer
}

func NewTradesHandler(tradeSvs TradeServicer) *TradesHandler {
	return &TradesHandler{
		tradeSvs: tradeSvs,
	}
}

type TradeParams struct {
	StockID  int64 `binding:"required" json:"stock_id"`
	Quantity int64 `binding:"required" json:"quantity"`
}

type TradeResponse struct {
	Success    bool    `json:"success"`
	NewBalance float64 `json:"new_balance"`
}

// Buy POST RouteGroup + BuyRoute.
func (h *TradesHandler) Buy(c *gin.Context) {
	h.trade(c, h.tradeSvs.Buy)
}

// Sell POST RouteGroup + SellRoute.
func (h *TradesHandler) Sell(c *gin.Context) {
	h.trade(c, h.tradeSvs.Sell)
}

// trade общий код Buy и Sell: парсинг, вызов сервиса и маппинг доменных ошибок в статусы.
func (h *TradesHandler) trade(
	c *gin.Context,
	execute func(ctx context.Context, userID, stockID, quantity int64) (*service.TradeResult, error),
) {
	currentUserID := getUserIDFromContext(c)

	var params TradeParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := execute(reqCtx, currentUserID, params.StockID, params.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrNotEnoughBalance):
			c.AbortWithStatus(http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrNotEnoughShares):
			c.AbortWithStatus(http.StatusConflict)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, &TradeResponse{
		Success:    true,
		NewBalance: result.NewBalance.InexactFloat64(),
	})
}
