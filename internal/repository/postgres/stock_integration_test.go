//go:build integration

package postgres

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "storefront",
				"POSTGRES_PASSWORD": "storefront",
				"POSTGRES_DB":       "storefront",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://storefront:storefront@%s:%s/storefront?sslmode=disable", host, port.Port())
}

func TestProductRepository_ConcurrentReserve(t *testing.T) {
	ctx := context.Background()
	pool, err := NewPool(ctx, startPostgres(t), 30)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, RunMigrations(ctx, pool, zap.NewNop()))

	var productID int64
	err = pool.QueryRow(ctx,
		`INSERT INTO products (code, name, category, price, stock_mode, stock)
		 VALUES ('ML86', '86 Diamonds', 'game', 20000, 'LIMITED', 5)
		 RETURNING id`,
	).Scan(&productID)
	require.NoError(t, err)

	repo := NewProductRepository(pool)

	const buyers = 25
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok, err := repo.DecrementStock(ctx, productID, 1)
			assert.NoError(t, err)
			if ok {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), succeeded.Load())

	p, err := repo.GetProductByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)
}

func TestTransactionRepository_ChangeBalanceInsideTx(t *testing.T) {
	ctx := context.Background()
	pool, err := NewPool(ctx, startPostgres(t), 5)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, RunMigrations(ctx, pool, zap.NewNop()))

	users := NewUserRepository(pool)
	user, err := users.CreateUser(ctx, "buyer", "hash")
	require.NoError(t, err)

	transactions := NewTransactionRepository(pool)
	transactor := NewTransactor(pool)

	// Ошибка после изменения баланса откатывает и изменение, и транзакцию журнала
	err = transactor.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := transactions.ChangeBalance(ctx, refundChange(user.ID)); err != nil {
			return err
		}
		return fmt.Errorf("abort")
	})
	require.Error(t, err)

	balance, err := transactions.GetBalance(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, balance.Current.IsZero())

	txs, err := transactions.GetTransactions(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, txs)
}
