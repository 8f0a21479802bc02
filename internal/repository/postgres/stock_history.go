package postgres

import (
	"context"
	"fmt"

	"github.com/avc/topup-storefront/internal/domain"
)

// StockHistoryRepository реализует domain.StockHistoryRepository
type StockHistoryRepository struct {
	db DBTX
}

// NewStockHistoryRepository создает новый StockHistoryRepository
func NewStockHistoryRepository(db DBTX) *StockHistoryRepository {
	return &StockHistoryRepository{db: db}
}

// CreateStockHistory добавляет запись в журнал остатков
func (r *StockHistoryRepository) CreateStockHistory(ctx context.Context, entry *domain.StockHistory) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO stock_history (product_id, type, delta, stock_before, stock_after, reason, actor_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		entry.ProductID, entry.Type, entry.Delta, entry.StockBefore, entry.StockAfter, entry.Reason, entry.ActorID,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("repository: failed to create stock history for product %d: %w", entry.ProductID, err)
	}

	return nil
}

// GetStockHistory возвращает последние записи журнала по товару
func (r *StockHistoryRepository) GetStockHistory(ctx context.Context, productID int64, limit int) ([]*domain.StockHistory, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT id, product_id, type, delta, stock_before, stock_after, reason, actor_id, created_at
		 FROM stock_history
		 WHERE product_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		productID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get stock history for product %d: %w", productID, err)
	}
	defer rows.Close()

	var history []*domain.StockHistory
	for rows.Next() {
		h := &domain.StockHistory{}
		err := rows.Scan(&h.ID, &h.ProductID, &h.Type, &h.Delta, &h.StockBefore, &h.StockAfter, &h.Reason, &h.ActorID, &h.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan stock history: %w", err)
		}
		history = append(history, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating stock history: %w", err)
	}

	return history, nil
}
