package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/tradesphere/internal/domain"
	"github.com/fsdevblog/tradesphere/internal/repository/repoargs"
	"github.com/fsdevblog/tradesphere/pkg/uow"
)

const (
	// PriceRefreshCooldown минимальный интервал между обновлениями цен. Ограничивает волатильность
	// и гарантирует, что конкурентные читатели в пределах окна видят одинаковые цены.
	PriceRefreshCooldown = 30 * time.Second
	// maxPriceDriftPercent максимальное случайное отклонение цены за одно обновление (в обе стороны).
	maxPriceDriftPercent = 0.35
	// moneyScale все денежные значения округляются до 2 знаков.
	moneyScale = 2
)

// minStockPrice нижняя граница цены. Бумага за 0 ломала бы экономику покупки/продажи.
var minStockPrice = decimal.NewFromInt(1)

type MarketService struct {
	uow       uow.UOW
	stockRepo StockRepository
	timeNow   func() time.Time
}

func NewMarketService(u uow.UOW) (*MarketService, error) {
	stockRepo, err := uow.GetRepositoryAs[StockRepository](u, uow.RepositoryName(repoargs.StockRepoName))
	if err != nil {
		return nil, err
	}
	return &MarketService{
		uow:       u,
		stockRepo: stockRepo,
		timeNow:   time.Now,
	}, nil
}

// GetStocks возвращает все бумаги с актуальными ценами. Перед чтением лениво обновляет цены,
// если кулдаун истек - отдельного фонового обновляльщика нет, цены двигает тот запрос,
// которому не повезло прийти первым после истечения окна.
func (m *MarketService) GetStocks(ctx context.Context) ([]domain.Stock, error) {
	if err := m.refreshIfDue(ctx); err != nil {
		return nil, fmt.Errorf("refreshing stock prices: %w", err)
	}
	stocks, err := m.stockRepo.GetAllStocks(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return stocks, nil
}

// refreshIfDue сдвигает цены всех бумаг случайным образом, если с последнего обновления прошло
// не меньше PriceRefreshCooldown.
//
// Сначала дешевая проверка без блокировки - в пределах окна запрос не платит за транзакцию.
// Если окно истекло, внутри транзакции берется FOR UPDATE на singleton строку price_refresh
// и кулдаун перепроверяется: из пачки конкурентных вызовов обновление применит ровно один,
// остальные увидят уже сдвинутый refreshed_at и выйдут.
func (m *MarketService) refreshIfDue(ctx context.Context) error {
	refreshedAt, readErr := m.stockRepo.GetPriceRefreshedAt(ctx)
	if readErr != nil {
		return readErr //nolint:wrapcheck
	}

	now := m.timeNow()
	if now.Sub(refreshedAt) < PriceRefreshCooldown {
		return nil
	}

	return m.uow.Do(ctx, func(c context.Context, tx uow.TX) error { //nolint:wrapcheck
		stockRepo, repoErr := uow.GetAs[StockRepository](tx, uow.RepositoryName(repoargs.StockRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		lockedAt, lockErr := stockRepo.LockPriceRefresh(c)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if now.Sub(lockedAt) < PriceRefreshCooldown {
			// кто-то успел обновить цены, пока мы ждали блокировку.
			return nil
		}

		stocks, stocksErr := stockRepo.GetAllStocks(c)
		if stocksErr != nil {
			return stocksErr //nolint:wrapcheck
		}
		for _, stock := range stocks {
			if updErr := stockRepo.UpdatePrice(c, stock.ID, driftPrice(stock.Price)); updErr != nil {
				return updErr //nolint:wrapcheck
			}
		}
		return stockRepo.SetPriceRefreshedAt(c, now) //nolint:wrapcheck
	})
}

// driftPrice возвращает новую цену: случайное отклонение в пределах [-35%, +35%],
// пол в 1.00 и округление до 2 знаков.
func driftPrice(price decimal.Decimal) decimal.Decimal {
	change := (rand.Float64()*2 - 1) * maxPriceDriftPercent //nolint:gosec,mnd
	newPrice := price.Mul(decimal.NewFromFloat(1 + change))
	if newPrice.LessThan(minStockPrice) {
		newPrice = minStockPrice
	}
	return newPrice.Round(moneyScale)
}
