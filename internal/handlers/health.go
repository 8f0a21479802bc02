package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/avc/topup-storefront/internal/domain"
	"go.uber.org/zap"
)

// staleSyncFactor во сколько интервалов опроса допустимо отставание последней сверки
const staleSyncFactor = 3

// Pinger проверяет доступность базы данных
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProviderReadiness сообщает, может ли провайдер принимать заказы
type ProviderReadiness interface {
	Configured() bool
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	db           Pinger
	provider     ProviderReadiness
	syncState    domain.SyncStateRepository
	syncInterval time.Duration
	logger       *zap.Logger
	now          func() time.Time
}

// NewHealthHandler создает новый HealthHandler
func NewHealthHandler(
	db Pinger,
	provider ProviderReadiness,
	syncState domain.SyncStateRepository,
	syncInterval time.Duration,
	logger *zap.Logger,
) *HealthHandler {
	return &HealthHandler{
		db:           db,
		provider:     provider,
		syncState:    syncState,
		syncInterval: syncInterval,
		logger:       logger,
		now:          time.Now,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status   string     `json:"status"`
	Database string     `json:"database"`
	Provider string     `json:"provider"`
	Sync     string     `json:"sync"`
	LastSync *time.Time `json:"last_sync,omitempty"`
}

// Health возвращает статус приложения. 503 только при недоступной базе:
// без провайдера и с отстающей сверкой витрина продолжает показывать каталог и статусы.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:   "ok",
		Database: "ok",
		Provider: "configured",
		Sync:     "never",
	}
	status := http.StatusOK

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		response.Status = "degraded"
		response.Database = "unavailable"
		response.Sync = "unknown"
		status = http.StatusServiceUnavailable
		h.logger.Warn("health check: database unavailable", zap.Error(err))
	} else {
		last, err := h.syncState.GetSyncTime(ctx, domain.SyncStateLastSync)
		switch {
		case err != nil:
			response.Sync = "unknown"
			h.logger.Warn("health check: failed to read last sync time", zap.Error(err))
		case last != nil:
			response.LastSync = last
			response.Sync = "ok"
			if h.syncInterval > 0 && h.now().Sub(*last) > staleSyncFactor*h.syncInterval {
				response.Sync = "stale"
			}
		}
	}

	if !h.provider.Configured() {
		response.Status = "degraded"
		response.Provider = "not_configured"
	}

	if err := writeJSON(w, status, response); err != nil {
		h.logger.Error("failed to encode health response", zap.Error(err))
	}
}

// Ready возвращает готовность принимать заказы: база доступна и провайдер настроен
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed: database unavailable", zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}
	if !h.provider.Configured() {
		h.logger.Warn("readiness check failed: provider not configured")
		http.Error(w, "Provider Not Configured", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
