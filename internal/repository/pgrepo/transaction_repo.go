package pgrepo

import (
	"context"

	"github.com/fsdevblog/tradesphere/internal/domain"
	"github.com/fsdevblog/tradesphere/internal/repository/repoargs"
	"github.com/fsdevblog/tradesphere/pkg/uow"
)

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// CreateTransaction добавляет запись в журнал сделок. Журнал append-only: записи никогда
// не обновляются и не удаляются.
func (t *TransactionRepository) CreateTransaction(
	ctx context.Context,
	transaction repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `
		INSERT INTO transactions (user_id, stock_id, side, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, user_id, stock_id, side, quantity, price`,
		transaction.UserID,
		transaction.StockID,
		string(transaction.Side),
		transaction.Quantity,
		transaction.Price,
	)

	var created domain.Transaction
	err := row.Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UserID,
		&created.StockID,
		&created.Side,
		&created.Quantity,
		&created.Price,
	)
	if err != nil {
		return nil, convertErr(err, "creating transaction")
	}
	return &created, nil
}

// GetRecentByUserID возвращает не более limit последних сделок юзера. Сортировка от новых
// к старым, при совпадении времени побеждает больший id.
func (t *TransactionRepository) GetRecentByUserID(
	ctx context.Context,
	userID int64,
	limit uint,
) ([]repoargs.TransactionRow, error) {
	limitArg, limitErr := safeConvertUintToInt32(limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "transactions limit")
	}

	rows, err := t.db.Query(ctx, `
		SELECT t.id, t.created_at, t.stock_id, s.name, s.symbol, t.side, t.quantity, t.price
		FROM transactions t
		JOIN stocks s ON s.id = t.stock_id
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $2`,
		userID, limitArg)
	if err != nil {
		return nil, convertErr(err, "getting transactions for user %d", userID)
	}
	defer rows.Close()

	var transactions []repoargs.TransactionRow
	for rows.Next() {
		var tr repoargs.TransactionRow
		if scanErr := rows.Scan(
			&tr.ID,
			&tr.CreatedAt,
			&tr.StockID,
			&tr.Name,
			&tr.Symbol,
			&tr.Side,
			&tr.Quantity,
			&tr.Price,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning transaction row")
		}
		transactions = append(transactions, tr)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting transactions for user %d", userID)
	}
	return transactions, nil
}
