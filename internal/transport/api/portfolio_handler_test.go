package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/tradesphere/internal/domain"
	"github.com/fsdevblog/tradesphere/internal/logger"
	"github.com/fsdevblog/tradesphere/internal/repository/repoargs"
	"github.com/fsdevblog/tradesphere/internal/transport/api/mocks"
	"github.com/fsdevblog/tradesphere/internal/transport/api/testutils"
	"github.com/fsdevblog/tradesphere/internal/transport/api/tokens"
)

type PortfolioHandlerTestSuite struct {
	suite.Suite
	mockTradeService *mocks.MockTradeServicer
	router           *gin.Engine
	jwtSecret        []byte
	userID           int64
	jwtTokenStr      string
}

func (s *PortfolioHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockTradeService = mocks.NewMockTradeServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.userID = 42

	jwtTokenStr, jwtErr := tokens.GenerateUserJWT(s.userID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)
	s.jwtTokenStr = jwtTokenStr

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		TradeService: s.mockTradeService,
		JWTSecretKey: s.jwtSecret,
	})
}

func TestPortfolioHandlerSuite(t *testing.T) {
	suite.Run(t, new(PortfolioHandlerTestSuite))
}

func (s *PortfolioHandlerTestSuite) get(route string) *http.Response {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + route,
	}

	v := fmt.Sprintf("Bearer %s", s.jwtTokenStr)
	res, err := testutils.MakeRequest(args, testutils.WithHeader("Authorization", v))
	s.Require().NoError(err)
	return res
}

func (s *PortfolioHandlerTestSuite) TestIndex() {
	portfolio := []repoargs.PortfolioRow{
		{
			StockID:      1,
			Name:         "Apple Inc.",
			Symbol:       "AAPL",
			Price:        decimal.RequireFromString("150.00"),
			Quantity:     10,
			CurrentValue: decimal.RequireFromString("1500.00"),
		},
	}

	s.mockTradeService.EXPECT().GetPortfolio(gomock.Any(), s.userID).Return(portfolio, nil)

	res := s.get(PortfolioRoute)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body []PortfolioResponseItem
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body, 1)

	s.Equal(int64(1), body[0].StockID)
	s.Equal("AAPL", body[0].Symbol)
	s.Equal(int64(10), body[0].Quantity)
	s.InDelta(1500.00, body[0].CurrentValue, 0.001)
}

func (s *PortfolioHandlerTestSuite) TestIndex_Empty() {
	s.mockTradeService.EXPECT().GetPortfolio(gomock.Any(), s.userID).
		Return([]repoargs.PortfolioRow{}, nil)

	res := s.get(PortfolioRoute)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	// пустой портфель это все равно 200 с массивом.
	var body []PortfolioResponseItem
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Empty(body)
}

func (s *PortfolioHandlerTestSuite) TestTransactions() {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	transactions := []repoargs.TransactionRow{
		{
			ID:        2,
			CreatedAt: createdAt,
			StockID:   1,
			Name:      "Apple Inc.",
			Symbol:    "AAPL",
			Side:      domain.SideSell,
			Quantity:  5,
			Price:     decimal.RequireFromString("151.20"),
		},
		{
			ID:        1,
			CreatedAt: createdAt.Add(-time.Hour),
			StockID:   1,
			Name:      "Apple Inc.",
			Symbol:    "AAPL",
			Side:      domain.SideBuy,
			Quantity:  10,
			Price:     decimal.RequireFromString("150.00"),
		},
	}

	s.mockTradeService.EXPECT().Transactions(gomock.Any(), s.userID).Return(transactions, nil)

	res := s.get(TransactionsRoute)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body []TransactionResponseItem
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body, 2)

	s.Equal(int64(2), body[0].ID)
	s.Equal(domain.SideSell, body[0].Side)
	s.Equal("2025-06-01T12:00:00Z", body[0].Timestamp)
	s.InDelta(151.20, body[0].Price, 0.001)

	s.Equal(int64(1), body[1].ID)
	s.Equal(domain.SideBuy, body[1].Side)
}
