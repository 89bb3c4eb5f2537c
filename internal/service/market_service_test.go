package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/tradesphere/internal/domain"
	"github.com/fsdevblog/tradesphere/internal/repository/repoargs"
	"github.com/fsdevblog/tradesphere/internal/service/mocks"
	"github.com/fsdevblog/tradesphere/pkg/uow"
	uowmocks "github.com/fsdevblog/tradesphere/pkg/uow/mocks"
)

type MarketServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockStock     *mocks.MockStockRepository
	marketService *MarketService
	now           time.Time
}

func TestMarketServiceSuite(t *testing.T) {
	suite.Run(t, new(MarketServiceTestSuite))
}

func (s *MarketServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockStock = mocks.NewMockStockRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.StockRepoName)).
		Return(s.mockStock, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.StockRepoName)).
		Return(s.mockStock, nil).AnyTimes()

	marketService, servErr := NewMarketService(s.mockUOW)
	s.Require().NoError(servErr)

	// фиксируем часы, чтобы управлять кулдауном из тестов.
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	marketService.timeNow = func() time.Time { return s.now }

	s.marketService = marketService
}

func (s *MarketServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *MarketServiceTestSuite) stocks() []domain.Stock {
	return []domain.Stock{
		{ID: 1, Name: "Apple Inc.", Symbol: "AAPL", Price: decimal.RequireFromString("150.00")},
		{ID: 2, Name: "Tesla Inc.", Symbol: "TSLA", Price: decimal.RequireFromString("200.50")},
	}
}

func (s *MarketServiceTestSuite) TestGetStocks_WithinCooldown() {
	stocks := s.stocks()

	// обновление было 10 секунд назад - кулдаун не истек, транзакция не открывается.
	s.mockStock.EXPECT().GetPriceRefreshedAt(gomock.Any()).
		Return(s.now.Add(-10*time.Second), nil)
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)
	s.mockStock.EXPECT().UpdatePrice(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.mockStock.EXPECT().GetAllStocks(gomock.Any()).Return(stocks, nil)

	got, err := s.marketService.GetStocks(s.T().Context())
	s.Require().NoError(err)
	s.Equal(stocks, got)
}

func (s *MarketServiceTestSuite) TestGetStocks_RefreshDue() {
	stocks := s.stocks()
	staleAt := s.now.Add(-PriceRefreshCooldown - time.Second)

	s.mockStock.EXPECT().GetPriceRefreshedAt(gomock.Any()).Return(staleAt, nil)

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	)

	s.mockStock.EXPECT().LockPriceRefresh(gomock.Any()).Return(staleAt, nil)
	// первый вызов внутри транзакции, второй - финальное чтение.
	s.mockStock.EXPECT().GetAllStocks(gomock.Any()).Return(stocks, nil).Times(2)

	for _, stock := range stocks {
		price := stock.Price
		s.mockStock.EXPECT().UpdatePrice(gomock.Any(), stock.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, id int64, newPrice decimal.Decimal) error {
				// новая цена в пределах +-35% от старой, но не ниже 1.00.
				low := price.Mul(decimal.RequireFromString("0.65"))
				if low.LessThan(minStockPrice) {
					low = minStockPrice
				}
				high := price.Mul(decimal.RequireFromString("1.35"))
				s.True(newPrice.GreaterThanOrEqual(low), "price %s below %s", newPrice, low)
				s.True(newPrice.LessThanOrEqual(high), "price %s above %s", newPrice, high)
				// округление до 2 знаков.
				s.GreaterOrEqual(newPrice.Exponent(), int32(-2))
				return nil
			})
	}

	s.mockStock.EXPECT().SetPriceRefreshedAt(gomock.Any(), s.now).Return(nil)

	got, err := s.marketService.GetStocks(s.T().Context())
	s.Require().NoError(err)
	s.Equal(stocks, got)
}

func (s *MarketServiceTestSuite) TestGetStocks_LostRefreshRace() {
	stocks := s.stocks()

	// дешевая проверка видит истекший кулдаун...
	s.mockStock.EXPECT().GetPriceRefreshedAt(gomock.Any()).
		Return(s.now.Add(-PriceRefreshCooldown-time.Second), nil)

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	)

	// ...но под блокировкой выясняется, что конкурент уже обновил цены.
	s.mockStock.EXPECT().LockPriceRefresh(gomock.Any()).
		Return(s.now.Add(-time.Second), nil)

	s.mockStock.EXPECT().UpdatePrice(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockStock.EXPECT().SetPriceRefreshedAt(gomock.Any(), gomock.Any()).Times(0)

	s.mockStock.EXPECT().GetAllStocks(gomock.Any()).Return(stocks, nil)

	got, err := s.marketService.GetStocks(s.T().Context())
	s.Require().NoError(err)
	s.Equal(stocks, got)
}

func (s *MarketServiceTestSuite) TestDriftPrice() {
	price := decimal.RequireFromString("150.00")
	low := decimal.RequireFromString("97.50")   // 150 * 0.65
	high := decimal.RequireFromString("202.50") // 150 * 1.35

	for range 200 {
		got := driftPrice(price)
		s.True(got.GreaterThanOrEqual(low), "price %s below %s", got, low)
		s.True(got.LessThanOrEqual(high), "price %s above %s", got, high)
		s.GreaterOrEqual(got.Exponent(), int32(-2))
	}
}

func (s *MarketServiceTestSuite) TestDriftPrice_Floor() {
	// цена у пола не может уйти ниже 1.00.
	price := decimal.RequireFromString("1.00")
	for range 200 {
		got := driftPrice(price)
		s.True(got.GreaterThanOrEqual(minStockPrice), "price %s below floor", got)
	}
}
