package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/topup-storefront/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ReconcileConfig параметры сверки
type ReconcileConfig struct {
	WebhookSecret   string
	CallTimeout     time.Duration
	Delay           time.Duration
	Retention       time.Duration
	CleanupInterval time.Duration
	// StaleAfter через сколько незавершенная отправка провайдеру считается прерванной
	StaleAfter time.Duration
	// PaymentExpiry сколько заказ может ждать оплаты шлюзом
	PaymentExpiry time.Duration
}

// ReconcileService реализует domain.ReconcileService:
// уведомления провайдера, опрос статусов и очистку журнала уведомлений.
type ReconcileService struct {
	tx        domain.Transactor
	orders    domain.OrderRepository
	payments  domain.PaymentRepository
	callbacks domain.CallbackLogRepository
	syncState domain.SyncStateRepository
	provider  domain.ProviderGateway
	lifecycle *LifecycleService
	cfg       ReconcileConfig
	logger    *zap.Logger
	group     singleflight.Group
	now       func() time.Time
}

// NewReconcileService создает новый ReconcileService
func NewReconcileService(
	tx domain.Transactor,
	orders domain.OrderRepository,
	payments domain.PaymentRepository,
	callbacks domain.CallbackLogRepository,
	syncState domain.SyncStateRepository,
	provider domain.ProviderGateway,
	lifecycle *LifecycleService,
	cfg ReconcileConfig,
	logger *zap.Logger,
) *ReconcileService {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 10 * time.Second
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 30 * 24 * time.Hour
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 24 * time.Hour
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = 15 * time.Minute
	}
	if cfg.PaymentExpiry <= 0 {
		cfg.PaymentExpiry = 24 * time.Hour
	}
	return &ReconcileService{
		tx:        tx,
		orders:    orders,
		payments:  payments,
		callbacks: callbacks,
		syncState: syncState,
		provider:  provider,
		lifecycle: lifecycle,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// HandleWebhook обрабатывает уведомление провайдера о статусе транзакции.
// Ошибки формата и подписи возвращаются вызывающему, остальные сбои
// логируются, а уведомление подтверждается: статус догонит опрос.
func (s *ReconcileService) HandleWebhook(ctx context.Context, body []byte, signature string) (*domain.WebhookResult, error) {
	entry := &domain.CallbackLog{Source: domain.CallbackSourceProvider, Payload: body}
	if err := s.callbacks.CreateCallbackLog(ctx, entry); err != nil {
		s.logger.Error("failed to log provider callback", zap.Error(err))
		entry = nil
	}

	status, err := s.provider.ParseCallback(body)
	if err != nil {
		s.finishCallback(ctx, entry, nil, err)
		return nil, err
	}

	if !verifySignature(s.cfg.WebhookSecret, body, signature) {
		s.finishCallback(ctx, entry, nil, domain.ErrInvalidSignature)
		s.logger.Warn("provider callback with invalid signature", zap.String("trxid", status.ExternalID))
		return nil, domain.ErrInvalidSignature
	}

	// подлинное уведомление обрабатывается до конца, даже если провайдер оборвал запрос
	ctx = context.WithoutCancel(ctx)

	item, err := s.orders.GetItemByExternalID(ctx, status.ExternalID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			s.logger.Warn("unmatched provider callback", zap.String("trxid", status.ExternalID))
			s.finishCallback(ctx, entry, nil, domain.ErrUnmatchedCallback)
			return &domain.WebhookResult{Success: true, Message: "Callback acknowledged, transaction unknown"}, nil
		}
		return s.acknowledgeFailure(ctx, entry, nil, status.ExternalID, err), nil
	}

	order, err := s.orders.GetOrderByID(ctx, item.OrderID)
	if err != nil {
		return s.acknowledgeFailure(ctx, entry, &item.OrderID, status.ExternalID, err), nil
	}

	if order.Status.IsFinal() {
		s.logger.Info("callback for final order ignored",
			zap.String("order_number", order.Number),
			zap.String("status", string(order.Status)),
			zap.String("provider_status", status.RawStatus),
		)
		s.finishCallback(ctx, entry, &order.ID, nil)
		return &domain.WebhookResult{Success: true, Message: "Order already final"}, nil
	}

	if _, err := s.applyItemStatus(ctx, order, item, status); err != nil {
		return s.acknowledgeFailure(ctx, entry, &order.ID, status.ExternalID, err), nil
	}

	s.finishCallback(ctx, entry, &order.ID, nil)
	return &domain.WebhookResult{Success: true, Message: "Order status updated"}, nil
}

func (s *ReconcileService) acknowledgeFailure(ctx context.Context, entry *domain.CallbackLog, orderID *int64, trxID string, err error) *domain.WebhookResult {
	s.logger.Error("failed to process provider callback", zap.String("trxid", trxID), zap.Error(err))
	s.finishCallback(ctx, entry, orderID, err)
	return &domain.WebhookResult{Success: true, Message: "Callback acknowledged"}
}

func (s *ReconcileService) finishCallback(ctx context.Context, entry *domain.CallbackLog, orderID *int64, cause error) {
	if entry == nil {
		return
	}
	errText := ""
	if cause != nil {
		errText = cause.Error()
	}
	if err := s.callbacks.MarkCallbackProcessed(ctx, entry.ID, orderID, errText); err != nil {
		s.logger.Error("failed to mark callback processed", zap.Int64("callback_id", entry.ID), zap.Error(err))
	}
}

// applyItemStatus записывает статус позиции и переводит заказ в агрегированный статус позиций
func (s *ReconcileService) applyItemStatus(ctx context.Context, order *domain.Order, item *domain.OrderItem, status *domain.ProviderStatus) (bool, error) {
	if item.ProviderStatus == nil || *item.ProviderStatus != status.Status {
		if err := s.orders.SetItemProviderStatus(ctx, item.ID, status.Status); err != nil {
			return false, err
		}
	}

	items, err := s.orders.GetOrderItems(ctx, order.ID)
	if err != nil {
		return false, err
	}
	statuses := make([]domain.OrderStatus, 0, len(items))
	for _, it := range items {
		if it.ID == item.ID {
			statuses = append(statuses, status.Status)
			continue
		}
		statuses = append(statuses, itemStatus(it))
	}

	return s.lifecycle.Transition(ctx, order, domain.AggregateItemStatus(statuses), providerNote(status), nil)
}

func providerNote(status *domain.ProviderStatus) string {
	parts := []string{"provider " + status.ExternalID + ": " + status.RawStatus}
	if status.Note != "" {
		parts = append(parts, status.Note)
	}
	if status.SerialNumber != "" {
		parts = append(parts, "sn "+status.SerialNumber)
	}
	return strings.Join(parts, "; ")
}

// SyncAll опрашивает провайдера по всем незавершенным заказам с внешним id.
// Ошибки отдельных заказов учитываются в статистике и не прерывают проход.
func (s *ReconcileService) SyncAll(ctx context.Context) (*domain.SyncStats, error) {
	start := s.now()

	orders, err := s.orders.GetOrdersToSync(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile: failed to list orders to sync: %w", err)
	}

	stats := &domain.SyncStats{}
	for i, order := range orders {
		if i > 0 && s.cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				stats.DurationMS = s.now().Sub(start).Milliseconds()
				return stats, ctx.Err()
			case <-time.After(s.cfg.Delay):
			}
		}
		s.syncInto(ctx, order, stats)
	}

	stats.DurationMS = s.now().Sub(start).Milliseconds()
	if err := s.syncState.SetSyncTime(ctx, domain.SyncStateLastSync, s.now()); err != nil {
		s.logger.Error("failed to record sync time", zap.Error(err))
	}

	s.logger.Info("sync finished",
		zap.Int("processed", stats.Processed),
		zap.Int("updated", stats.Updated),
		zap.Int("failed", stats.Failed),
		zap.Int("skipped", stats.Skipped),
		zap.Int64("duration_ms", stats.DurationMS),
	)
	return stats, nil
}

// SyncOne опрашивает провайдера по одному заказу.
// Одновременные запросы по одному заказу выполняют один опрос.
func (s *ReconcileService) SyncOne(ctx context.Context, orderNumber string) (*domain.SyncStats, error) {
	v, err, _ := s.group.Do(orderNumber, func() (interface{}, error) {
		start := s.now()
		order, err := s.orders.GetOrderByNumber(ctx, orderNumber)
		if err != nil {
			return nil, err
		}

		stats := &domain.SyncStats{}
		if order.Status.IsFinal() {
			stats.Skipped++
		} else {
			s.syncInto(ctx, order, stats)
		}
		stats.DurationMS = s.now().Sub(start).Milliseconds()
		return stats, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("reconcile: failed to sync order %s: %w", orderNumber, err)
	}

	stats := *v.(*domain.SyncStats)
	return &stats, nil
}

func (s *ReconcileService) syncInto(ctx context.Context, order *domain.Order, stats *domain.SyncStats) {
	stats.Processed++
	updated, polled, err := s.syncOrder(ctx, order)
	switch {
	case err != nil:
		stats.Failed++
		s.logger.Warn("order sync failed", zap.String("order_number", order.Number), zap.Error(err))
	case !polled:
		stats.Skipped++
	case updated:
		stats.Updated++
	}
}

// syncOrder запрашивает статусы всех отправленных позиций заказа
func (s *ReconcileService) syncOrder(ctx context.Context, order *domain.Order) (updated, polled bool, err error) {
	items, err := s.orders.GetOrderItems(ctx, order.ID)
	if err != nil {
		return false, false, err
	}

	statuses := make([]domain.OrderStatus, 0, len(items))
	var notes []string
	for _, item := range items {
		if item.ExternalID == nil {
			statuses = append(statuses, itemStatus(item))
			continue
		}
		polled = true

		status, err := s.queryStatus(ctx, order.CustomerData.Category, *item.ExternalID)
		if err != nil {
			return false, polled, err
		}
		if item.ProviderStatus == nil || *item.ProviderStatus != status.Status {
			if err := s.orders.SetItemProviderStatus(ctx, item.ID, status.Status); err != nil {
				return false, polled, err
			}
		}
		statuses = append(statuses, status.Status)
		if status.Status.IsFinal() {
			notes = append(notes, providerNote(status))
		}
	}
	if !polled {
		return false, false, nil
	}

	applied, err := s.lifecycle.Transition(ctx, order, domain.AggregateItemStatus(statuses), strings.Join(notes, "\n"), nil)
	return applied, true, err
}

func (s *ReconcileService) queryStatus(ctx context.Context, category domain.Category, externalID string) (*domain.ProviderStatus, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()
	return s.provider.QueryStatus(callCtx, category, externalID)
}

// RecoverStale доводит до итогового статуса заказы, которые не догонит опрос:
// прерванные до получения trxid по всем позициям (PENDING дольше StaleAfter либо
// PROCESSING с неотправленными позициями) переводятся в FAILED с возвратом резерва,
// а заказы, не оплаченные за PaymentExpiry, отменяются.
// Ошибки отдельных заказов учитываются в статистике.
func (s *ReconcileService) RecoverStale(ctx context.Context) (*domain.RecoverStats, error) {
	now := s.now()
	stats := &domain.RecoverStats{}

	stale, err := s.orders.GetStaleOrders(ctx, now.Add(-s.cfg.StaleAfter))
	if err != nil {
		return nil, fmt.Errorf("reconcile: failed to list stale orders: %w", err)
	}
	for _, order := range stale {
		applied, err := s.lifecycle.Transition(ctx, order, domain.OrderStatusFailed, "submission interrupted before provider confirmed every item", nil)
		if err != nil {
			stats.Failed++
			s.logger.Warn("failed to recover stale order", zap.String("order_number", order.Number), zap.Error(err))
			continue
		}
		if applied {
			stats.Interrupted++
		}
	}

	unpaid, err := s.orders.GetUnpaidOrders(ctx, now.Add(-s.cfg.PaymentExpiry))
	if err != nil {
		return nil, fmt.Errorf("reconcile: failed to list unpaid orders: %w", err)
	}
	for _, order := range unpaid {
		expired, err := s.expirePayment(ctx, order)
		if err != nil {
			stats.Failed++
			s.logger.Warn("failed to expire unpaid order", zap.String("order_number", order.Number), zap.Error(err))
			continue
		}
		if expired {
			stats.Expired++
		}
	}

	if stats.Interrupted > 0 || stats.Expired > 0 || stats.Failed > 0 {
		s.logger.Info("stale orders recovered",
			zap.Int("interrupted", stats.Interrupted),
			zap.Int("expired", stats.Expired),
			zap.Int("failed", stats.Failed),
		)
	}
	return stats, nil
}

// expirePayment закрывает просроченную оплату и отменяет заказ одной транзакцией.
// Если расчет успел прийти, заказ не трогается.
func (s *ReconcileService) expirePayment(ctx context.Context, order *domain.Order) (bool, error) {
	payment, err := s.payments.GetPaymentByOrderID(ctx, order.ID)
	if err != nil {
		return false, err
	}

	expired := false
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := s.payments.CompareAndSetPaymentStatus(ctx, payment.ID, domain.PaymentStatusPending, domain.PaymentStatusExpired)
		if err != nil || !ok {
			return err
		}
		expired, err = s.lifecycle.Transition(ctx, order, domain.OrderStatusCancelled, "payment not received in time", nil)
		return err
	})
	if err != nil {
		return false, err
	}
	return expired, nil
}

// Cleanup удаляет уведомления старше срока хранения.
// Без force выполняется не чаще одного раза за CleanupInterval.
func (s *ReconcileService) Cleanup(ctx context.Context, force bool) (*domain.CleanupResult, error) {
	now := s.now()

	last, err := s.syncState.GetSyncTime(ctx, domain.SyncStateLastCleanup)
	if err != nil {
		return nil, fmt.Errorf("reconcile: failed to get last cleanup time: %w", err)
	}
	if !force && last != nil && now.Sub(*last) < s.cfg.CleanupInterval {
		next := last.Add(s.cfg.CleanupInterval)
		return &domain.CleanupResult{Ran: false, NextRun: &next}, nil
	}

	deleted, err := s.callbacks.DeleteCallbackLogsBefore(ctx, now.Add(-s.cfg.Retention))
	if err != nil {
		return nil, fmt.Errorf("reconcile: failed to delete old callbacks: %w", err)
	}
	if err := s.syncState.SetSyncTime(ctx, domain.SyncStateLastCleanup, now); err != nil {
		return nil, fmt.Errorf("reconcile: failed to record cleanup time: %w", err)
	}

	s.logger.Info("callback log cleanup finished", zap.Int64("deleted", deleted), zap.Bool("forced", force))
	next := now.Add(s.cfg.CleanupInterval)
	return &domain.CleanupResult{Ran: true, Deleted: deleted, NextRun: &next}, nil
}

// Stats возвращает сводку по заказам и журналу уведомлений
func (s *ReconcileService) Stats(ctx context.Context) (*domain.ReconcileStats, error) {
	counts, err := s.orders.CountOrdersByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile: failed to count orders: %w", err)
	}
	total, unprocessed, err := s.callbacks.CountCallbackLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("reconcile: failed to count callbacks: %w", err)
	}
	lastSync, err := s.syncState.GetSyncTime(ctx, domain.SyncStateLastSync)
	if err != nil {
		return nil, fmt.Errorf("reconcile: failed to get last sync time: %w", err)
	}
	lastCleanup, err := s.syncState.GetSyncTime(ctx, domain.SyncStateLastCleanup)
	if err != nil {
		return nil, fmt.Errorf("reconcile: failed to get last cleanup time: %w", err)
	}

	return &domain.ReconcileStats{
		OrdersByStatus:       counts,
		CallbacksTotal:       total,
		CallbacksUnprocessed: unprocessed,
		LastSync:             lastSync,
		LastCleanup:          lastCleanup,
	}, nil
}

// RunScheduled выполняет плановую сверку: опрос, восстановление зависших заказов
// и очистку журнала по расписанию
func (s *ReconcileService) RunScheduled(ctx context.Context) error {
	_, syncErr := s.SyncAll(ctx)
	_, recoverErr := s.RecoverStale(ctx)
	_, cleanupErr := s.Cleanup(ctx, false)
	return errors.Join(syncErr, recoverErr, cleanupErr)
}
