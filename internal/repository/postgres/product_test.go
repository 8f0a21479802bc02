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

var productRowColumns = []string{"id", "code", "name", "category", "price", "stock_mode", "stock", "active", "created_at", "updated_at"}

func TestProductRepository_GetProductByCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows(productRowColumns).
			AddRow(int64(1), "ML86", "86 Diamonds", domain.CategoryGame, decimal.NewFromInt(20000),
				domain.StockModeLimited, 5, true, now, now)

		mock.ExpectQuery(`SELECT .+ FROM products WHERE code`).
			WithArgs("ML86").
			WillReturnRows(rows)

		p, err := repo.GetProductByCode(ctx, "ML86")
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ID)
		assert.True(t, p.Limited())
		assert.Equal(t, 5, p.Stock)
		assert.True(t, decimal.NewFromInt(20000).Equal(p.Price))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM products WHERE code`).
			WithArgs("NOPE").
			WillReturnError(pgx.ErrNoRows)

		p, err := repo.GetProductByCode(ctx, "NOPE")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.Nil(t, p)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_DecrementStock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	ctx := context.Background()

	t.Run("Enough stock", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE products SET stock = stock - \$2`).
			WithArgs(int64(1), 2).
			WillReturnRows(pgxmock.NewRows([]string{"stock"}).AddRow(3))

		after, ok, err := repo.DecrementStock(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 3, after)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient stock or unlimited", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE products SET stock = stock - \$2`).
			WithArgs(int64(1), 10).
			WillReturnError(pgx.ErrNoRows)

		after, ok, err := repo.DecrementStock(ctx, 1, 10)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 0, after)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Check constraint", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE products SET stock = stock - \$2`).
			WithArgs(int64(1), 1).
			WillReturnError(&pgconn.PgError{Code: "23514"})

		_, ok, err := repo.DecrementStock(ctx, 1, 1)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE products SET stock = stock - \$2`).
			WithArgs(int64(1), 1).
			WillReturnError(errors.New("database error"))

		_, ok, err := repo.DecrementStock(ctx, 1, 1)
		assert.Error(t, err)
		assert.False(t, ok)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_IncrementStock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	ctx := context.Background()

	t.Run("Limited product", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE products SET stock = stock \+ \$2`).
			WithArgs(int64(1), 3).
			WillReturnRows(pgxmock.NewRows([]string{"stock"}).AddRow(3))

		after, ok, err := repo.IncrementStock(ctx, 1, 3)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 3, after)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unlimited product", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE products SET stock = stock \+ \$2`).
			WithArgs(int64(2), 1).
			WillReturnError(pgx.ErrNoRows)

		_, ok, err := repo.IncrementStock(ctx, 2, 1)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_SetStock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE products SET stock = \$2`).
			WithArgs(int64(1), 10).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.SetStock(ctx, 1, 10))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE products SET stock = \$2`).
			WithArgs(int64(42), 10).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.SetStock(ctx, 42, 10), domain.ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
