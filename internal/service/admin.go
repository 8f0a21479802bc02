package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/topup-storefront/internal/domain"
	"go.uber.org/zap"
)

// AdminService реализует domain.AdminService
type AdminService struct {
	tx           domain.Transactor
	orders       domain.OrderRepository
	payments     domain.PaymentRepository
	transactions domain.TransactionRepository
	lifecycle    *LifecycleService
	stock        *StockLedger
	logger       *zap.Logger
}

// NewAdminService создает новый AdminService
func NewAdminService(
	tx domain.Transactor,
	orders domain.OrderRepository,
	payments domain.PaymentRepository,
	transactions domain.TransactionRepository,
	lifecycle *LifecycleService,
	stock *StockLedger,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		tx:           tx,
		orders:       orders,
		payments:     payments,
		transactions: transactions,
		lifecycle:    lifecycle,
		stock:        stock,
		logger:       logger,
	}
}

// Refund возвращает оплату заказа на баланс покупателя.
// Допустим только из SUCCESS или FAILED при рассчитанной оплате.
// Смена статуса, зачисление и закрытие оплаты выполняются в одной транзакции.
func (s *AdminService) Refund(ctx context.Context, orderNumber string, adminID int64) (*domain.Order, error) {
	order, err := s.getOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(order.Status, domain.OrderStatusRefunded) {
		return nil, fmt.Errorf("admin service: refund of %s order %s: %w", order.Status, order.Number, domain.ErrInvalidTransition)
	}
	if order.UserID == nil {
		return nil, fmt.Errorf("admin service: order %s has no customer account: %w", order.Number, domain.ErrRefundNotAllowed)
	}

	payment, err := s.payments.GetPaymentByOrderID(ctx, order.ID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			return nil, fmt.Errorf("admin service: order %s: %w", order.Number, domain.ErrPaymentNotSettled)
		}
		return nil, fmt.Errorf("admin service: failed to get payment of order %s: %w", order.Number, err)
	}
	if payment.Status != domain.PaymentStatusSettled {
		return nil, fmt.Errorf("admin service: order %s payment is %s: %w", order.Number, payment.Status, domain.ErrPaymentNotSettled)
	}

	from := order.Status
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := s.orders.CompareAndSetStatus(ctx, order.ID, from, domain.OrderStatusRefunded)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInvalidTransition
		}

		if _, err := s.transactions.ChangeBalance(ctx, domain.BalanceChange{
			UserID:      *order.UserID,
			Amount:      payment.Amount,
			Type:        domain.TransactionTypeRefund,
			Reference:   order.Number,
			Description: "refund " + order.Number,
		}); err != nil {
			return err
		}

		ok, err = s.payments.CompareAndSetPaymentStatus(ctx, payment.ID, domain.PaymentStatusSettled, domain.PaymentStatusCancelled)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrPaymentNotSettled
		}

		return s.orders.AppendNote(ctx, order.ID, fmt.Sprintf("refunded %s by admin %d", payment.Amount, adminID))
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrPaymentNotSettled) {
			return nil, fmt.Errorf("admin service: refund of order %s: %w", order.Number, err)
		}
		return nil, fmt.Errorf("admin service: failed to refund order %s: %w", order.Number, err)
	}

	s.logger.Info("order refunded",
		zap.String("order_number", order.Number),
		zap.String("amount", payment.Amount.String()),
		zap.Int64("admin_id", adminID),
	)
	return s.getOrder(ctx, orderNumber)
}

// OverrideStatus вручную меняет статус заказа через общую функцию перехода
func (s *AdminService) OverrideStatus(ctx context.Context, orderNumber string, to domain.OrderStatus, note string, adminID int64) (*domain.Order, error) {
	if !to.Valid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	order, err := s.getOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("admin %d set %s", adminID, to)
	if note = strings.TrimSpace(note); note != "" {
		text += ": " + note
	}

	if _, err := s.lifecycle.Transition(ctx, order, to, text, &adminID); err != nil {
		return nil, err
	}

	return s.getOrder(ctx, orderNumber)
}

// AdjustStock устанавливает остаток товара
func (s *AdminService) AdjustStock(ctx context.Context, productID int64, newStock int, reason string, adminID int64) (*domain.StockHistory, error) {
	return s.stock.Adjust(ctx, productID, newStock, strings.TrimSpace(reason), adminID)
}

// StockHistory возвращает журнал остатков товара
func (s *AdminService) StockHistory(ctx context.Context, productID int64, limit int) ([]*domain.StockHistory, error) {
	return s.stock.History(ctx, productID, limit)
}

func (s *AdminService) getOrder(ctx context.Context, number string) (*domain.Order, error) {
	order, err := s.orders.GetOrderByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("admin service: failed to get order %s: %w", number, err)
	}
	return order, nil
}
