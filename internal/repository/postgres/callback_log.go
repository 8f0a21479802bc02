package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/topup-storefront/internal/domain"
)

// CallbackLogRepository реализует domain.CallbackLogRepository
type CallbackLogRepository struct {
	db DBTX
}

// NewCallbackLogRepository создает новый CallbackLogRepository
func NewCallbackLogRepository(db DBTX) *CallbackLogRepository {
	return &CallbackLogRepository{db: db}
}

// CreateCallbackLog сохраняет сырое входящее уведомление
func (r *CallbackLogRepository) CreateCallbackLog(ctx context.Context, entry *domain.CallbackLog) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO callback_logs (source, order_id, external_ref, payload)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		entry.Source, entry.OrderID, entry.ExternalRef, entry.Payload,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("repository: failed to create callback log: %w", err)
	}

	return nil
}

// MarkCallbackProcessed отмечает уведомление обработанным и привязывает его к заказу
func (r *CallbackLogRepository) MarkCallbackProcessed(ctx context.Context, id int64, orderID *int64, errText string) error {
	_, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE callback_logs
		 SET processed = TRUE, order_id = COALESCE($2, order_id), error = $3
		 WHERE id = $1`,
		id, orderID, errText,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to mark callback log %d processed: %w", id, err)
	}

	return nil
}

// DeleteCallbackLogsBefore удаляет записи старше before
func (r *CallbackLogRepository) DeleteCallbackLogsBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`DELETE FROM callback_logs WHERE created_at < $1`,
		before,
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to delete callback logs: %w", err)
	}

	return tag.RowsAffected(), nil
}

// CountCallbackLogs возвращает общее число записей и число необработанных
func (r *CallbackLogRepository) CountCallbackLogs(ctx context.Context) (int64, int64, error) {
	var total, unprocessed int64
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE NOT processed) FROM callback_logs`,
	).Scan(&total, &unprocessed)

	if err != nil {
		return 0, 0, fmt.Errorf("repository: failed to count callback logs: %w", err)
	}

	return total, unprocessed, nil
}
