package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// SyncStateRepository реализует domain.SyncStateRepository
type SyncStateRepository struct {
	db DBTX
}

// NewSyncStateRepository создает новый SyncStateRepository
func NewSyncStateRepository(db DBTX) *SyncStateRepository {
	return &SyncStateRepository{db: db}
}

// GetSyncTime возвращает время последнего запуска процедуры или nil
func (r *SyncStateRepository) GetSyncTime(ctx context.Context, name string) (*time.Time, error) {
	var at time.Time
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT last_run_at FROM sync_state WHERE name = $1`,
		name,
	).Scan(&at)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to get sync state %q: %w", name, err)
	}

	return &at, nil
}

// SetSyncTime сохраняет время запуска процедуры
func (r *SyncStateRepository) SetSyncTime(ctx context.Context, name string, at time.Time) error {
	_, err := conn(ctx, r.db).Exec(ctx,
		`INSERT INTO sync_state (name, last_run_at) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET last_run_at = EXCLUDED.last_run_at`,
		name, at,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to set sync state %q: %w", name, err)
	}

	return nil
}
