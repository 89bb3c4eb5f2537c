package pgrepo

import (
	"context"

	"github.com/fsdevblog/tradesphere/internal/domain"
	"github.com/fsdevblog/tradesphere/internal/repository/repoargs"
	"github.com/fsdevblog/tradesphere/pkg/uow"
)

type HoldingRepository struct {
	db uow.DBTX
}

func NewHoldingRepository(db uow.DBTX) *HoldingRepository {
	return &HoldingRepository{db: db}
}

func (h *HoldingRepository) FindHolding(ctx context.Context, userID, stockID int64) (*domain.Holding, error) {
	row := h.db.QueryRow(ctx, `
		SELECT user_id, stock_id, quantity FROM holdings
		WHERE user_id = $1 AND stock_id = $2`,
		userID, stockID)

	var holding domain.Holding
	if err := row.Scan(&holding.UserID, &holding.StockID, &holding.Quantity); err != nil {
		return nil, convertErr(err, "finding holding (user %d, stock %d)", userID, stockID)
	}
	return &holding, nil
}

// IncrementHolding увеличивает количество акций на delta. Если записи нет - создает новую
// (upsert по составному ключу user_id + stock_id).
func (h *HoldingRepository) IncrementHolding(
	ctx context.Context,
	userID, stockID, delta int64,
) (*domain.Holding, error) {
	row := h.db.QueryRow(ctx, `
		INSERT INTO holdings (user_id, stock_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, stock_id)
		DO UPDATE SET quantity = holdings.quantity + EXCLUDED.quantity
		RETURNING user_id, stock_id, quantity`,
		userID, stockID, delta)

	var holding domain.Holding
	if err := row.Scan(&holding.UserID, &holding.StockID, &holding.Quantity); err != nil {
		return nil, convertErr(err, "incrementing holding (user %d, stock %d)", userID, stockID)
	}
	return &holding, nil
}

func (h *HoldingRepository) UpdateQuantity(
	ctx context.Context,
	userID, stockID, quantity int64,
) (*domain.Holding, error) {
	row := h.db.QueryRow(ctx, `
		UPDATE holdings SET quantity = $1
		WHERE user_id = $2 AND stock_id = $3
		RETURNING user_id, stock_id, quantity`,
		quantity, userID, stockID)

	var holding domain.Holding
	if err := row.Scan(&holding.UserID, &holding.StockID, &holding.Quantity); err != nil {
		return nil, convertErr(err, "updating holding (user %d, stock %d)", userID, stockID)
	}
	return &holding, nil
}

// DeleteHolding удаляет запись. Вызывается когда количество акций доходит ровно до нуля -
// нулевые записи в таблице не живут.
func (h *HoldingRepository) DeleteHolding(ctx context.Context, userID, stockID int64) error {
	tag, err := h.db.Exec(ctx, `DELETE FROM holdings WHERE user_id = $1 AND stock_id = $2`, userID, stockID)
	if err != nil {
		return convertErr(err, "deleting holding (user %d, stock %d)", userID, stockID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting holding (user %d, stock %d)", userID, stockID)
	}
	return nil
}

func (h *HoldingRepository) GetPortfolio(ctx context.Context, userID int64) ([]repoargs.PortfolioRow, error) {
	rows, err := h.db.Query(ctx, `
		SELECT s.id, s.name, s.symbol, s.price, h.quantity, (s.price * h.quantity) AS current_value
		FROM holdings h
		JOIN stocks s ON s.id = h.stock_id
		WHERE h.user_id = $1
		ORDER BY s.id`,
		userID)
	if err != nil {
		return nil, convertErr(err, "getting portfolio for user %d", userID)
	}
	defer rows.Close()

	var portfolio []repoargs.PortfolioRow
	for rows.Next() {
		var item repoargs.PortfolioRow
		if scanErr := rows.Scan(
			&item.StockID,
			&item.Name,
			&item.Symbol,
			&item.Price,
			&item.Quantity,
			&item.CurrentValue,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning portfolio row")
		}
		portfolio = append(portfolio, item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting portfolio for user %d", userID)
	}
	return portfolio, nil
}
