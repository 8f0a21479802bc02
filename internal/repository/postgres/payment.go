package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/topup-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
)

// PaymentRepository реализует domain.PaymentRepository
type PaymentRepository struct {
	db DBTX
}

// NewPaymentRepository создает новый PaymentRepository
func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreatePayment создает запись об оплате заказа
func (r *PaymentRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO payments (order_id, method, amount, status, reference, settled_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		payment.OrderID, payment.Method, payment.Amount, payment.Status, payment.Reference, payment.SettledAt,
	).Scan(&payment.ID, &payment.CreatedAt)

	if err != nil {
		return fmt.Errorf("repository: failed to create payment for order %d: %w", payment.OrderID, err)
	}

	return nil
}

// GetPaymentByOrderID получает оплату заказа
func (r *PaymentRepository) GetPaymentByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id, order_id, method, amount, status, reference, settled_at, created_at
		 FROM payments
		 WHERE order_id = $1`,
		orderID,
	).Scan(&p.ID, &p.OrderID, &p.Method, &p.Amount, &p.Status, &p.Reference, &p.SettledAt, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("repository: failed to get payment for order %d: %w", orderID, err)
	}

	return p, nil
}

// CompareAndSetPaymentStatus меняет статус оплаты, только если текущий равен from.
// При переходе в SETTLED фиксируется время расчета.
func (r *PaymentRepository) CompareAndSetPaymentStatus(ctx context.Context, paymentID int64, from, to domain.PaymentStatus) (bool, error) {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE payments
		 SET status = $3,
		     settled_at = CASE WHEN $3 = 'SETTLED' THEN NOW() ELSE settled_at END
		 WHERE id = $1 AND status = $2`,
		paymentID, from, to,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to update payment %d status: %w", paymentID, err)
	}

	return tag.RowsAffected() == 1, nil
}
