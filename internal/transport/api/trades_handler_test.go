package api

import (
	"bytes"
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
	"github.com/fsdevblog/tradesphere/internal/service"
	"github.com/fsdevblog/tradesphere/internal/transport/api/mocks"
	"github.com/fsdevblog/tradesphere/internal/transport/api/testutils"
	"github.com/fsdevblog/tradesphere/internal/transport/api/tokens"
)

type TradesHandlerTestSuite struct {
	suite.Suite
	mockTradeService *mocks.MockTradeServicer
	router           *gin.Engine
	jwtSecret        []byte
	userID           int64
	jwtTokenStr      string
}

func (s *TradesHandlerTestSuite) SetupTest() {
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

func TestTradesHandlerSuite(t *testing.T) {
	suite.Run(t, new(TradesHandlerTestSuite))
}

func (s *TradesHandlerTestSuite) postTrade(route string, params *TradeParams, authorized bool) *http.Response {
	var payload []byte
	if params != nil {
		payload, _ = json.Marshal(params)
	}

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + route,
		Body:   bytes.NewReader(payload),
	}

	var reqOpts []func(*testutils.RequestOptions)
	if authorized {
		v := fmt.Sprintf("Bearer %s", s.jwtTokenStr)
		reqOpts = append(reqOpts, testutils.WithHeader("Authorization", v))
	}

	res, err := testutils.MakeRequest(args, reqOpts...)
	s.Require().NoError(err)
	return res
}

func (s *TradesHandlerTestSuite) TestBuy() {
	okResult := service.TradeResult{
		NewBalance: decimal.RequireFromString("48500.00"),
		Transaction: domain.Transaction{
			ID:       1,
			UserID:   s.userID,
			StockID:  1,
			Side:     domain.SideBuy,
			Quantity: 10,
			Price:    decimal.RequireFromString("150.00"),
		},
	}

	s.mockTradeService.EXPECT().Buy(gomock.Any(), s.userID, int64(1), int64(10)).
		Return(&okResult, nil)
	s.mockTradeService.EXPECT().Buy(gomock.Any(), s.userID, int64(999), int64(1)).
		Return(nil, domain.ErrRecordNotFound)
	s.mockTradeService.EXPECT().Buy(gomock.Any(), s.userID, int64(1), int64(1000000)).
		Return(nil, domain.ErrNotEnoughBalance)
	s.mockTradeService.EXPECT().Buy(gomock.Any(), s.userID, int64(1), int64(-5)).
		Return(nil, domain.ErrInvalidQuantity)

	cases := []struct {
		name       string
		params     *TradeParams
		authorized bool
		wantStatus int
	}{
		{
			name:       "ok",
			params:     &TradeParams{StockID: 1, Quantity: 10},
			authorized: true,
			wantStatus: http.StatusOK,
		}, {
			name:       "unknown stock",
			params:     &TradeParams{StockID: 999, Quantity: 1},
			authorized: true,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "not enough balance",
			params:     &TradeParams{StockID: 1, Quantity: 1000000},
			authorized: true,
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "negative quantity",
			params:     &TradeParams{StockID: 1, Quantity: -5},
			authorized: true,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "bad request",
			params:     nil,
			authorized: true,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "unauthorized",
			params:     &TradeParams{StockID: 1, Quantity: 1},
			authorized: false,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.postTrade(BuyRoute, t.params, t.authorized)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body TradeResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.True(body.Success)
				s.InDelta(48500.00, body.NewBalance, 0.001)
			}
		})
	}
}

func (s *TradesHandlerTestSuite) TestSell() {
	okResult := service.TradeResult{
		NewBalance: decimal.RequireFromString("1802.00"),
		Transaction: domain.Transaction{
			ID:       2,
			UserID:   s.userID,
			StockID:  2,
			Side:     domain.SideSell,
			Quantity: 4,
			Price:    decimal.RequireFromString("200.50"),
		},
	}

	s.mockTradeService.EXPECT().Sell(gomock.Any(), s.userID, int64(2), int64(4)).
		Return(&okResult, nil)
	s.mockTradeService.EXPECT().Sell(gomock.Any(), s.userID, int64(2), int64(100)).
		Return(nil, domain.ErrNotEnoughShares)

	cases := []struct {
		name       string
		params     *TradeParams
		wantStatus int
	}{
		{
			name:       "ok",
			params:     &TradeParams{StockID: 2, Quantity: 4},
			wantStatus: http.StatusOK,
		}, {
			name:       "not enough shares",
			params:     &TradeParams{StockID: 2, Quantity: 100},
			wantStatus: http.StatusConflict,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.postTrade(SellRoute, t.params, true)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body TradeResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.True(body.Success)
				s.InDelta(1802.00, body.NewBalance, 0.001)
			}
		})
	}
}
