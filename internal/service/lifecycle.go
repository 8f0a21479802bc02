package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/topup-storefront/internal/domain"
	"go.uber.org/zap"
)

// transitionAttempts ограничивает повторы перехода при конкурентной смене статуса
const transitionAttempts = 3

// LifecycleService единственная точка смены статуса заказа.
// Возврат резерва при FAILED и CANCELLED выполняется только здесь.
type LifecycleService struct {
	tx       domain.Transactor
	orders   domain.OrderRepository
	payments domain.PaymentRepository
	stock    *StockLedger
	logger   *zap.Logger
}

// NewLifecycleService создает новый LifecycleService
func NewLifecycleService(
	tx domain.Transactor,
	orders domain.OrderRepository,
	payments domain.PaymentRepository,
	stock *StockLedger,
	logger *zap.Logger,
) *LifecycleService {
	return &LifecycleService{
		tx:       tx,
		orders:   orders,
		payments: payments,
		stock:    stock,
		logger:   logger,
	}
}

// Transition переводит заказ в статус to.
// Если статус успел сменить другой обработчик, заказ перечитывается и переход
// повторяется от актуального статуса; order.Status всегда отражает последний
// известный статус. applied=false без ошибки означает, что заказ уже в статусе to
// либо конкурент перевел его туда, откуда переход невозможен.
// REFUNDED здесь недостижим, для него есть AdminService.Refund.
func (s *LifecycleService) Transition(ctx context.Context, order *domain.Order, to domain.OrderStatus, note string, actorID *int64) (bool, error) {
	if to == domain.OrderStatusRefunded {
		return false, fmt.Errorf("lifecycle: order %s: refund must go through refund flow: %w", order.Number, domain.ErrInvalidTransition)
	}
	return s.transition(ctx, order, to, note, actorID)
}

func (s *LifecycleService) transition(ctx context.Context, order *domain.Order, to domain.OrderStatus, note string, actorID *int64) (bool, error) {
	for attempt := 0; ; attempt++ {
		from := order.Status
		if from == to {
			return false, nil
		}
		if !domain.CanTransition(from, to) {
			if attempt > 0 {
				// конкурент перевел заказ в статус, из которого переход невозможен
				s.logger.Debug("order transition lost race",
					zap.String("order_number", order.Number),
					zap.String("status", string(from)),
					zap.String("to", string(to)),
				)
				return false, nil
			}
			s.logger.Warn("rejected order transition",
				zap.String("order_number", order.Number),
				zap.String("from", string(from)),
				zap.String("to", string(to)),
			)
			return false, fmt.Errorf("lifecycle: order %s %s -> %s: %w", order.Number, from, to, domain.ErrInvalidTransition)
		}

		applied, err := s.apply(ctx, order, from, to, note, actorID)
		if err != nil {
			return false, fmt.Errorf("lifecycle: failed to move order %s to %s: %w", order.Number, to, err)
		}
		if applied {
			order.Status = to
			s.logger.Info("order status changed",
				zap.String("order_number", order.Number),
				zap.String("from", string(from)),
				zap.String("to", string(to)),
			)
			return true, nil
		}

		if attempt+1 >= transitionAttempts {
			return false, fmt.Errorf("lifecycle: order %s: status keeps changing, %s not applied", order.Number, to)
		}

		// статус сменил другой обработчик: переход повторяется от актуального статуса
		fresh, err := s.orders.GetOrderByID(ctx, order.ID)
		if err != nil {
			return false, fmt.Errorf("lifecycle: failed to reload order %s: %w", order.Number, err)
		}
		order.Status = fresh.Status
		if order.ExternalID == nil {
			order.ExternalID = fresh.ExternalID
		}
	}
}

// apply выполняет compare-and-set статуса и побочные эффекты перехода в одной транзакции.
// false означает, что статус заказа уже не равен from.
func (s *LifecycleService) apply(ctx context.Context, order *domain.Order, from, to domain.OrderStatus, note string, actorID *int64) (bool, error) {
	applied := false
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := s.orders.CompareAndSetStatus(ctx, order.ID, from, to)
		if err != nil || !ok {
			return err
		}
		applied = true

		notes := make([]string, 0, 3)
		if note != "" {
			notes = append(notes, note)
		}

		if to.ReleasesStock() {
			accepted, err := s.restoreStockForOrder(ctx, order, actorID)
			if err != nil {
				return err
			}
			if len(accepted) > 0 {
				notes = append(notes, "accepted by provider before failure: "+strings.Join(accepted, ", "))
			}
		}

		if to == domain.OrderStatusFailed {
			settled, err := s.paymentSettled(ctx, order.ID)
			if err != nil {
				return err
			}
			if settled {
				notes = append(notes, "refund eligible: payment settled")
			}
		}

		if len(notes) > 0 {
			return s.orders.AppendNote(ctx, order.ID, strings.Join(notes, "\n"))
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// restoreStockForOrder возвращает резерв всех позиций заказа, которые его еще удерживают.
// Флаг stock_released защищает от повторного возврата.
// Возвращает trxid позиций, которые провайдер успел принять.
func (s *LifecycleService) restoreStockForOrder(ctx context.Context, order *domain.Order, actorID *int64) ([]string, error) {
	items, err := s.orders.GetOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	reason := "order " + order.Number
	var accepted []string
	for _, item := range items {
		if item.ExternalID != nil && (item.ProviderStatus == nil || !item.ProviderStatus.ReleasesStock()) {
			accepted = append(accepted, *item.ExternalID)
		}
		if item.StockReleased {
			continue
		}

		released, err := s.orders.MarkItemStockReleased(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		if !released {
			continue
		}
		item.StockReleased = true

		if err := s.stock.Restore(ctx, item.ProductID, item.Quantity, reason, actorID); err != nil {
			return nil, err
		}
	}

	return accepted, nil
}

func (s *LifecycleService) paymentSettled(ctx context.Context, orderID int64) (bool, error) {
	payment, err := s.payments.GetPaymentByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			return false, nil
		}
		return false, err
	}
	return payment.Status == domain.PaymentStatusSettled, nil
}
