package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/topup-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionRepository реализует domain.TransactionRepository
type TransactionRepository struct {
	db DBTX
}

// NewTransactionRepository создает новый TransactionRepository
func NewTransactionRepository(db DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetBalance получает текущий баланс пользователя
func (r *TransactionRepository) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	balance := &domain.Balance{}

	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT balance FROM users WHERE id = $1`,
		userID,
	).Scan(&balance.Current)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get balance for user %d: %w", userID, err)
	}

	return balance, nil
}

// ChangeBalance меняет баланс пользователя и пишет транзакцию с балансом до и после.
// Выполняется в транзакции (вложенной, если она уже открыта в ctx) под advisory lock по user_id.
func (r *TransactionRepository) ChangeBalance(ctx context.Context, change domain.BalanceChange) (*domain.Transaction, error) {
	tx, err := conn(ctx, r.db).Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for user %d: %w", change.UserID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	// Advisory lock по user_id исключает гонку параллельных изменений баланса
	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, change.UserID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to acquire lock for user %d: %w", change.UserID, err)
	}

	var before decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT balance FROM users WHERE id = $1`, change.UserID).Scan(&before)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get balance for user %d: %w", change.UserID, err)
	}

	after := before.Add(change.Amount)
	if after.IsNegative() {
		return nil, domain.ErrInsufficientBalance
	}

	_, err = tx.Exec(ctx, `UPDATE users SET balance = $2 WHERE id = $1`, change.UserID, after)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to update balance for user %d: %w", change.UserID, err)
	}

	t := &domain.Transaction{
		UserID:        change.UserID,
		Type:          change.Type,
		Amount:        change.Amount,
		Description:   change.Description,
		Reference:     change.Reference,
		BalanceBefore: before,
		BalanceAfter:  after,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO transactions (user_id, type, amount, description, reference, balance_before, balance_after)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		t.UserID, t.Type, t.Amount, t.Description, t.Reference, t.BalanceBefore, t.BalanceAfter,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert %s transaction for %s: %w", t.Type, t.Reference, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit balance change: %w", err)
	}

	return t, nil
}

// GetTransactions получает историю операций пользователя
func (r *TransactionRepository) GetTransactions(ctx context.Context, userID int64) ([]*domain.Transaction, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT id, user_id, type, amount, description, reference, balance_before, balance_after, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		t := &domain.Transaction{}
		err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Description, &t.Reference, &t.BalanceBefore, &t.BalanceAfter, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating transactions: %w", err)
	}

	return transactions, nil
}
