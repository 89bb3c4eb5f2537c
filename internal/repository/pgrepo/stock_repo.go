package pgrepo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/tradesphere/internal/domain"
	"github.com/fsdevblog/tradesphere/pkg/uow"
)

const stockColumns = "id, created_at, updated_at, name, symbol, price"

type StockRepository struct {
	db uow.DBTX
}

func NewStockRepository(db uow.DBTX) *StockRepository {
	return &StockRepository{db: db}
}

func (s *StockRepository) GetAllStocks(ctx context.Context) ([]domain.Stock, error) {
	rows, err := s.db.Query(ctx, `SELECT `+stockColumns+` FROM stocks ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "getting stocks")
	}
	defer rows.Close()

	var stocks []domain.Stock
	for rows.Next() {
		var stock domain.Stock
		if scanErr := rows.Scan(
			&stock.ID,
			&stock.CreatedAt,
			&stock.UpdatedAt,
			&stock.Name,
			&stock.Symbol,
			&stock.Price,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning stock")
		}
		stocks = append(stocks, stock)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting stocks")
	}
	return stocks, nil
}

func (s *StockRepository) FindStockByID(ctx context.Context, id int64) (*domain.Stock, error) {
	row := s.db.QueryRow(ctx, `SELECT `+stockColumns+` FROM stocks WHERE id = $1`, id)

	var stock domain.Stock
	err := row.Scan(&stock.ID, &stock.CreatedAt, &stock.UpdatedAt, &stock.Name, &stock.Symbol, &stock.Price)
	if err != nil {
		return nil, convertErr(err, "finding stock by id %d", id)
	}
	return &stock, nil
}

func (s *StockRepository) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	tag, err := s.db.Exec(ctx, `UPDATE stocks SET price = $1, updated_at = now() WHERE id = $2`, price, id)
	if err != nil {
		return convertErr(err, "updating price for stock %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating price for stock %d", id)
	}
	return nil
}

// GetPriceRefreshedAt возвращает время последнего обновления цен без блокировки строки.
func (s *StockRepository) GetPriceRefreshedAt(ctx context.Context) (time.Time, error) {
	row := s.db.QueryRow(ctx, `SELECT refreshed_at FROM price_refresh WHERE id`)

	var refreshedAt time.Time
	if err := row.Scan(&refreshedAt); err != nil {
		return time.Time{}, convertErr(err, "getting price refreshed at")
	}
	return refreshedAt, nil
}

// LockPriceRefresh блокирует singleton строку price_refresh (FOR UPDATE) и возвращает время
// последнего обновления цен. Конкурентные вызовы выстраиваются в очередь - после получения
// блокировки вызывающий код обязан перечитать кулдаун по возвращенному значению.
func (s *StockRepository) LockPriceRefresh(ctx context.Context) (time.Time, error) {
	row := s.db.QueryRow(ctx, `SELECT refreshed_at FROM price_refresh WHERE id FOR UPDATE`)

	var refreshedAt time.Time
	if err := row.Scan(&refreshedAt); err != nil {
		return time.Time{}, convertErr(err, "locking price refresh")
	}
	return refreshedAt, nil
}

func (s *StockRepository) SetPriceRefreshedAt(ctx context.Context, refreshedAt time.Time) error {
	if _, err := s.db.Exec(ctx, `UPDATE price_refresh SET refreshed_at = $1 WHERE id`, refreshedAt); err != nil {
		return convertErr(err, "setting price refreshed at")
	}
	return nil
}
