package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/topup-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, login, password_hash, role, balance, created_at`

// UserRepository реализует domain.UserRepository
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.Balance, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser создает нового пользователя с ролью customer
func (r *UserRepository) CreateUser(ctx context.Context, login, passwordHash string) (*domain.User, error) {
	user, err := scanUser(conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO users (login, password_hash, role)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		login, passwordHash, domain.RoleCustomer,
	))
	if err != nil {
		if isUniqueViolation(err, "") {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("repository: failed to create user %q: %w", login, err)
	}

	return user, nil
}

// GetUserByLogin получает пользователя по логину
func (r *UserRepository) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	user, err := scanUser(conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE login = $1`,
		login,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by login %q: %w", login, err)
	}

	return user, nil
}

// GetUserByID получает пользователя по ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := scanUser(conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by id %d: %w", id, err)
	}

	return user, nil
}
