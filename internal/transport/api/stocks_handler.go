package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StocksHandler struct {
	marketSvs MarketServicer
}

func NewStocksHandler(marketSvs MarketServicer) *StocksHandler {
	return &StocksHandler{
		marketSvs: marketSvs,
	}
}

type StockResponse struct {
	ID     int64   `json:"stock_id"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// Index GET RouteGroup + StocksRoute. Список бумаг с актуальными ценами; сам запрос и двигает
// цены, если кулдаун истек.
func (h *StocksHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stocks, err := h.marketSvs.GetStocks(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]StockResponse, len(stocks))
	for i, stock := range stocks {
		response[i] = StockResponse{
			ID:     stock.ID,
			Name:   stock.Name,
			Symbol: stock.Symbol,
			Price:  stock.Price.InexactFloat64(),
		}
	}

	c.JSON(http.StatusOK, response)
}
