package pgrepo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/tradesphere/internal/domain"
	"github.com/fsdevblog/tradesphere/internal/repository/repoargs"
	"github.com/fsdevblog/tradesphere/pkg/uow"
)

const userColumns = "id, created_at, updated_at, username, encrypted_password, balance, last_recovery_at"

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser создает юзера со стартовым балансом (задан на уровне схемы). В случае конфликта
// юзернейма возвращает ошибку domain.ErrDuplicateKey.
func (u *UserRepository) CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		INSERT INTO users (username, encrypted_password)
		VALUES ($1, $2)
		RETURNING `+userColumns,
		user.Username, user.Password)

	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return dbUser, nil
}

// FindUserByUsername ищет юзера по его юзернейму. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return dbUser, nil
}

func (u *UserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return dbUser, nil
}

// FindUserByIDForUpdate то же что и FindUserByID, но блокирует строку юзера до конца транзакции.
// Вызывать имеет смысл только внутри uow.Do.
func (u *UserRepository) FindUserByIDForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "locking user by id %d", id)
	}
	return dbUser, nil
}

func (u *UserRepository) UpdateBalance(
	ctx context.Context,
	id int64,
	balance decimal.Decimal,
) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		UPDATE users SET balance = $1, updated_at = now()
		WHERE id = $2
		RETURNING `+userColumns,
		balance, id)

	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "updating balance for user %d", id)
	}
	return dbUser, nil
}

func (u *UserRepository) UpdateBalanceAndRecoveryAt(
	ctx context.Context,
	id int64,
	balance decimal.Decimal,
	recoveredAt time.Time,
) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		UPDATE users SET balance = $1, last_recovery_at = $2, updated_at = now()
		WHERE id = $3
		RETURNING `+userColumns,
		balance, recoveredAt, id)

	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "updating balance and recovery date for user %d", id)
	}
	return dbUser, nil
}

func scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Username,
		&user.EncryptedPassword,
		&user.Balance,
		&user.LastRecoveryAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
