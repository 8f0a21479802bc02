package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/topup-storefront/internal/domain"
	"go.uber.org/zap"
)

// paymentOutcomes статусы шлюза, завершающие оплату без расчета
var paymentOutcomes = map[string]domain.PaymentStatus{
	"deny":    domain.PaymentStatusDenied,
	"failure": domain.PaymentStatusDenied,
	"cancel":  domain.PaymentStatusCancelled,
	"expire":  domain.PaymentStatusExpired,
}

// PaymentService реализует domain.PaymentService
type PaymentService struct {
	tx        domain.Transactor
	orders    domain.OrderRepository
	payments  domain.PaymentRepository
	callbacks domain.CallbackLogRepository
	lifecycle *LifecycleService
	fulfiller *Fulfiller
	secret    string
	logger    *zap.Logger
}

// NewPaymentService создает новый PaymentService; пустой secret отключает проверку подписи
func NewPaymentService(
	tx domain.Transactor,
	orders domain.OrderRepository,
	payments domain.PaymentRepository,
	callbacks domain.CallbackLogRepository,
	lifecycle *LifecycleService,
	fulfiller *Fulfiller,
	secret string,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		tx:        tx,
		orders:    orders,
		payments:  payments,
		callbacks: callbacks,
		lifecycle: lifecycle,
		fulfiller: fulfiller,
		secret:    secret,
		logger:    logger,
	}
}

// HandleNotification обрабатывает уведомление платежного шлюза.
// Повторное уведомление о расчете ничего не меняет.
func (s *PaymentService) HandleNotification(ctx context.Context, body []byte, signature string) (*domain.WebhookResult, error) {
	entry := &domain.CallbackLog{Source: domain.CallbackSourcePayment, Payload: body}
	if err := s.callbacks.CreateCallbackLog(ctx, entry); err != nil {
		s.logger.Error("failed to log payment notification", zap.Error(err))
		entry = nil
	}

	if !verifySignature(s.secret, body, signature) {
		s.finish(ctx, entry, nil, domain.ErrInvalidSignature)
		return nil, domain.ErrInvalidSignature
	}

	var n domain.PaymentNotification
	if err := json.Unmarshal(body, &n); err != nil {
		s.finish(ctx, entry, nil, err)
		return nil, fmt.Errorf("payment service: malformed notification: %v: %w", err, domain.ErrValidation)
	}
	if n.OrderNumber == "" {
		s.finish(ctx, entry, nil, domain.ErrValidation)
		return nil, domain.NewValidationError("order_number", "required")
	}
	txStatus := strings.ToLower(strings.TrimSpace(n.TransactionStatus))
	if txStatus == "" {
		s.finish(ctx, entry, nil, domain.ErrValidation)
		return nil, domain.NewValidationError("transaction_status", "required")
	}

	// уведомление принято: его обработка не прерывается отменой запроса шлюза
	ctx = context.WithoutCancel(ctx)

	order, err := s.orders.GetOrderByNumber(ctx, n.OrderNumber)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			s.logger.Warn("payment notification for unknown order", zap.String("order_number", n.OrderNumber))
			s.finish(ctx, entry, nil, domain.ErrUnmatchedCallback)
			return &domain.WebhookResult{Success: true, Message: "Notification acknowledged, order unknown"}, nil
		}
		s.finish(ctx, entry, nil, err)
		return nil, fmt.Errorf("payment service: failed to get order %s: %w", n.OrderNumber, err)
	}

	payment, err := s.payments.GetPaymentByOrderID(ctx, order.ID)
	if err != nil {
		s.finish(ctx, entry, &order.ID, err)
		return nil, fmt.Errorf("payment service: failed to get payment of order %s: %w", order.Number, err)
	}

	var result *domain.WebhookResult
	switch {
	case txStatus == "settlement" || txStatus == "capture":
		result, err = s.settle(ctx, order, payment, n)
	case txStatus == "pending":
		result = &domain.WebhookResult{Success: true, Message: "Payment pending"}
	default:
		outcome, ok := paymentOutcomes[txStatus]
		if !ok {
			err = domain.NewValidationError("transaction_status", "unknown status "+txStatus)
			break
		}
		result, err = s.abandon(ctx, order, payment, outcome, txStatus)
	}

	s.finish(ctx, entry, &order.ID, err)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("payment service: order %s: %w", order.Number, err)
	}
	return result, nil
}

// settle фиксирует расчет и передает заказ провайдеру.
// При несовпадении суммы оплата помечается MISMATCH, а заказ FAILED.
func (s *PaymentService) settle(ctx context.Context, order *domain.Order, payment *domain.Payment, n domain.PaymentNotification) (*domain.WebhookResult, error) {
	if !n.GrossAmount.Equal(payment.Amount) {
		note := fmt.Sprintf("%s: paid %s, expected %s", domain.ErrPaymentMismatch, n.GrossAmount, payment.Amount)
		ok, err := s.closePayment(ctx, order, payment, domain.PaymentStatusMismatch, domain.OrderStatusFailed, note)
		if err != nil {
			return nil, err
		}
		if ok {
			s.logger.Warn("payment amount mismatch",
				zap.String("order_number", order.Number),
				zap.String("paid", n.GrossAmount.String()),
				zap.String("expected", payment.Amount.String()),
			)
		}
		return &domain.WebhookResult{Success: true, Message: "Payment amount mismatch"}, nil
	}

	settled, claimed, err := s.claim(ctx, order, payment)
	if err != nil {
		return nil, err
	}
	if !settled {
		return &domain.WebhookResult{Success: true, Message: "Payment already processed"}, nil
	}
	if !claimed {
		return &domain.WebhookResult{Success: true, Message: "Payment settled"}, nil
	}

	message, err := s.fulfiller.Submit(ctx, order)
	if err != nil {
		// оплата уже зафиксирована, повтор уведомления ничего не даст:
		// заказ без отправленных позиций доведет до FAILED восстановление зависших заказов
		s.logger.Error("failed to submit paid order",
			zap.String("order_number", order.Number),
			zap.Error(err),
		)
		return &domain.WebhookResult{Success: true, Message: "Payment settled, fulfillment pending"}, nil
	}
	return &domain.WebhookResult{Success: true, Message: message}, nil
}

// claim в одной транзакции фиксирует расчет и переводит заказ из WAITING_PAYMENT
// в PROCESSING. Только выигравший compare-and-set оплаты отправляет заказ провайдеру.
// settled=false: оплата уже была обработана раньше. claimed=false при settled=true:
// заказ уже не ждал оплаты, расчет отмечен в заметках.
func (s *PaymentService) claim(ctx context.Context, order *domain.Order, payment *domain.Payment) (settled, claimed bool, err error) {
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := s.payments.CompareAndSetPaymentStatus(ctx, payment.ID, domain.PaymentStatusPending, domain.PaymentStatusSettled)
		if err != nil || !ok {
			return err
		}
		settled = true

		if order.Status == domain.OrderStatusWaitingPayment {
			claimed, err = s.lifecycle.Transition(ctx, order, domain.OrderStatusProcessing, "payment settled", nil)
			if err != nil {
				return err
			}
		}
		if claimed {
			return nil
		}

		s.logger.Warn("payment settled for order not waiting for payment",
			zap.String("order_number", order.Number),
			zap.String("status", string(order.Status)),
		)
		return s.orders.AppendNote(ctx, order.ID, "payment settled while order was "+string(order.Status))
	})
	if err != nil {
		return false, false, err
	}
	return settled, claimed, nil
}

// abandon закрывает оплату без расчета и отменяет заказ с возвратом резерва
func (s *PaymentService) abandon(ctx context.Context, order *domain.Order, payment *domain.Payment, outcome domain.PaymentStatus, raw string) (*domain.WebhookResult, error) {
	ok, err := s.closePayment(ctx, order, payment, outcome, domain.OrderStatusCancelled, "payment "+raw)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &domain.WebhookResult{Success: true, Message: "Payment already processed"}, nil
	}
	return &domain.WebhookResult{Success: true, Message: "Order cancelled"}, nil
}

// closePayment переводит ожидающую оплату в outcome и заказ в статус to одной транзакцией.
// false означает, что оплата уже не ожидала расчета.
func (s *PaymentService) closePayment(ctx context.Context, order *domain.Order, payment *domain.Payment, outcome domain.PaymentStatus, to domain.OrderStatus, note string) (bool, error) {
	closed := false
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := s.payments.CompareAndSetPaymentStatus(ctx, payment.ID, domain.PaymentStatusPending, outcome)
		if err != nil || !ok {
			return err
		}
		closed = true
		if order.Status.IsFinal() {
			return s.orders.AppendNote(ctx, order.ID, note+" while order was "+string(order.Status))
		}
		_, err = s.lifecycle.Transition(ctx, order, to, note, nil)
		return err
	})
	if err != nil {
		return false, err
	}
	return closed, nil
}

func (s *PaymentService) finish(ctx context.Context, entry *domain.CallbackLog, orderID *int64, cause error) {
	if entry == nil {
		return
	}
	errText := ""
	if cause != nil {
		errText = cause.Error()
	}
	if err := s.callbacks.MarkCallbackProcessed(ctx, entry.ID, orderID, errText); err != nil {
		s.logger.Error("failed to mark payment notification processed", zap.Int64("callback_id", entry.ID), zap.Error(err))
	}
}
