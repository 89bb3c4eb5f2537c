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
	"github.com/fsdevblog/tradesphere/internal/service"
	"github.com/fsdevblog/tradesphere/internal/transport/api/mocks"
	"github.com/fsdevblog/tradesphere/internal/transport/api/testutils"
	"github.com/fsdevblog/tradesphere/internal/transport/api/tokens"
)

type BalanceHandlerTestSuite struct {
	suite.Suite
	mockTradeService    *mocks.MockTradeServicer
	mockRecoveryService *mocks.MockRecoveryServicer
	router              *gin.Engine
	jwtSecret           []byte
	userID              int64
	jwtTokenStr         string
}

func (s *BalanceHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockTradeService = mocks.NewMockTradeServicer(mockCtrl)
	s.mockRecoveryService = mocks.NewMockRecoveryServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.userID = 42

	jwtTokenStr, jwtErr := tokens.GenerateUserJWT(s.userID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)
	s.jwtTokenStr = jwtTokenStr

	s.router = New(RouterArgs{
		Logger:          logger.New(os.Stdout),
		TradeService:    s.mockTradeService,
		RecoveryService: s.mockRecoveryService,
		JWTSecretKey:    s.jwtSecret,
	})
}

func TestBalanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(BalanceHandlerTestSuite))
}

func (s *BalanceHandlerTestSuite) makeRequest(method, route string, authorized bool) *http.Response {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    RouteGroup + route,
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

func (s *BalanceHandlerTestSuite) TestIndex() {
	s.mockTradeService.EXPECT().GetBalance(gomock.Any(), s.userID).
		Return(decimal.RequireFromString("48500.50"), nil)

	res := s.makeRequest(http.MethodGet, BalanceRoute, true)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body BalanceResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.InDelta(48500.50, body.Balance, 0.001)
}

func (s *BalanceHandlerTestSuite) TestIndex_Unauthorized() {
	s.mockTradeService.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Times(0)

	res := s.makeRequest(http.MethodGet, BalanceRoute, false)
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *BalanceHandlerTestSuite) TestRecoveryStatus() {
	available := service.RecoveryStatus{CanRecover: true}
	waiting := service.RecoveryStatus{
		CanRecover: false,
		TimeLeft:   22*time.Hour + 15*time.Minute,
	}

	s.mockRecoveryService.EXPECT().Status(gomock.Any(), s.userID).Return(&available, nil)
	s.mockRecoveryService.EXPECT().Status(gomock.Any(), s.userID).Return(&waiting, nil)

	cases := []struct {
		name            string
		wantCanRecover  bool
		wantHoursLeft   *int
		wantMinutesLeft *int
	}{
		{name: "available", wantCanRecover: true},
		{
			name:            "within window",
			wantCanRecover:  false,
			wantHoursLeft:   intPtr(22),
			wantMinutesLeft: intPtr(15),
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeRequest(http.MethodGet, RecoveryStatusRoute, true)
			s.Require().Equal(http.StatusOK, res.StatusCode)

			var body RecoveryStatusResponse
			s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
			s.Equal(t.wantCanRecover, body.CanRecover)
			s.Equal(t.wantHoursLeft, body.HoursLeft)
			s.Equal(t.wantMinutesLeft, body.MinutesLeft)
		})
	}
}

func (s *BalanceHandlerTestSuite) TestRecover() {
	okResult := service.RecoveryResult{
		Amount:     decimal.NewFromInt(5000),
		NewBalance: decimal.RequireFromString("5123.45"),
	}

	s.mockRecoveryService.EXPECT().Recover(gomock.Any(), s.userID).Return(&okResult, nil)

	res := s.makeRequest(http.MethodPost, RecoverRoute, true)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body RecoveryResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.True(body.Success)
	s.InDelta(5000, body.RecoveryAmount, 0.001)
	s.InDelta(5123.45, body.NewBalance, 0.001)
}

func (s *BalanceHandlerTestSuite) TestRecover_TooEarly() {
	s.mockRecoveryService.EXPECT().Recover(gomock.Any(), s.userID).
		Return(nil, domain.NewRecoveryNotAvailableError(time.Hour+30*time.Minute))

	res := s.makeRequest(http.MethodPost, RecoverRoute, true)
	s.Equal(http.StatusConflict, res.StatusCode)
}

func intPtr(v int) *int {
	return &v
}
