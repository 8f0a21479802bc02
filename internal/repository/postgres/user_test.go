package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/topup-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "login", "password_hash", "role", "balance", "created_at"}

func TestUserRepository_CreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows(userRowColumns).
			AddRow(int64(1), "testuser", "hashedpassword", domain.RoleCustomer, decimal.Zero, time.Now())

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("testuser", "hashedpassword", domain.RoleCustomer).
			WillReturnRows(rows)

		user, err := repo.CreateUser(ctx, "testuser", "hashedpassword")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, domain.RoleCustomer, user.Role)
		assert.True(t, user.Balance.IsZero())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User already exists", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("existinguser", "hashedpassword", domain.RoleCustomer).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		user, err := repo.CreateUser(ctx, "existinguser", "hashedpassword")
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("testuser", "hashedpassword", domain.RoleCustomer).
			WillReturnError(errors.New("database error"))

		user, err := repo.CreateUser(ctx, "testuser", "hashedpassword")
		assert.Error(t, err)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByLogin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows(userRowColumns).
			AddRow(int64(7), "admin", "hash", domain.RoleAdmin, decimal.NewFromInt(1500), time.Now())

		mock.ExpectQuery(`SELECT .+ FROM users WHERE login`).
			WithArgs("admin").
			WillReturnRows(rows)

		user, err := repo.GetUserByLogin(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.True(t, user.IsAdmin())
		assert.True(t, decimal.NewFromInt(1500).Equal(user.Balance))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM users WHERE login`).
			WithArgs("nonexistent").
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetUserByLogin(ctx, "nonexistent")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows(userRowColumns).
			AddRow(int64(1), "testuser", "hash", domain.RoleCustomer, decimal.Zero, time.Now())

		mock.ExpectQuery(`SELECT .+ FROM users WHERE id`).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		user, err := repo.GetUserByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "testuser", user.Login)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM users WHERE id`).
			WithArgs(int64(999)).
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetUserByID(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
