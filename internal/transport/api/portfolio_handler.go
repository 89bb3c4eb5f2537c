package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/tradesphere/internal/domain"
)

type PortfolioHandler struct {
	tradeSvs TradeServicer
}

func NewPortfolioHandler(tradeSvs TradeServicer) *PortfolioHandler {
	return &PortfolioHandler{
		tradeSvs: tradeSvs,
	}
}

type PortfolioResponseItem struct {
	StockID      int64   `json:"stock_id"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	Price        float64 `json:"price"`
	Quantity     int64   `json:"quantity"`
	CurrentValue float64 `json:"current_value"`
}

// Index GET RouteGroup + PortfolioRoute. Портфель - снимок текущих позиций, пустой портфель
// это валидный ответ, поэтому всегда 200 с массивом.
func (h *PortfolioHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	portfolio, err := h.tradeSvs.GetPortfolio(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]PortfolioResponseItem, len(portfolio))
	for i, item := range portfolio {
		response[i] = PortfolioResponseItem{
			StockID:      item.StockID,
			Name:         item.Name,
			Symbol:       item.Symbol,
			Price:        item.Price.InexactFloat64(),
			Quantity:     item.Quantity,
			CurrentValue: item.CurrentValue.InexactFloat64(),
		}
	}

	c.JSON(http.StatusOK, response)
}

type TransactionResponseItem struct {
	ID        int64                  `json:"transaction_id"`
	StockID   int64                  `json:"stock_id"`
	Name      string                 `json:"name"`
	Symbol    string                 `json:"symbol"`
	Side      domain.TransactionSide `json:"type"`
	Quantity  int64                  `json:"quantity"`
	Price     float64                `json:"price_at_transaction"`
	Timestamp string                 `json:"timestamp"`
}

// Transactions GET RouteGroup + TransactionsRoute. Последние 50 сделок юзера от новых к старым.
func (h *PortfolioHandler) Transactions(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.tradeSvs.Transactions(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]TransactionResponseItem, len(transactions))
	for i, transaction := range transactions {
		response[i] = TransactionResponseItem{
			ID:        transaction.ID,
			StockID:   transaction.StockID,
			Name:      transaction.Name,
			Symbol:    transaction.Symbol,
			Side:      transaction.Side,
			Quantity:  transaction.Quantity,
			Price:     transaction.Price.InexactFloat64(),
			Timestamp: transaction.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, response)
}
