package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avc/topup-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
)

const (
	orderColumns = `id, order_number, external_id, user_id, service_code, total, customer_data,
		payment_method, status, notes, created_at, updated_at`
	itemColumns = `id, order_id, product_id, product_code, quantity, unit_price, line_total,
		external_id, provider_status, stock_released`
)

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{}
	var customerData []byte
	err := row.Scan(&o.ID, &o.Number, &o.ExternalID, &o.UserID, &o.ServiceCode, &o.Total, &customerData,
		&o.PaymentMethod, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(customerData, &o.CustomerData); err != nil {
		return nil, fmt.Errorf("decode customer data: %w", err)
	}
	return o, nil
}

func scanItem(row pgx.Row) (*domain.OrderItem, error) {
	i := &domain.OrderItem{}
	err := row.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.ProductCode, &i.Quantity, &i.UnitPrice, &i.LineTotal,
		&i.ExternalID, &i.ProviderStatus, &i.StockReleased)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// CreateOrder создает заказ вместе с позициями. Вызывать внутри транзакции.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	customerData, err := json.Marshal(order.CustomerData)
	if err != nil {
		return fmt.Errorf("repository: failed to encode customer data for order %s: %w", order.Number, err)
	}

	db := conn(ctx, r.db)
	err = db.QueryRow(ctx,
		`INSERT INTO orders (order_number, user_id, service_code, total, customer_data, payment_method, status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		order.Number, order.UserID, order.ServiceCode, order.Total, customerData,
		order.PaymentMethod, order.Status, order.Notes,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "orders_order_number_key") {
			return domain.ErrOrderExists
		}
		return fmt.Errorf("repository: failed to create order %s: %w", order.Number, err)
	}

	for _, item := range order.Items {
		item.OrderID = order.ID
		err := db.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, product_code, quantity, unit_price, line_total, stock_released)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id`,
			item.OrderID, item.ProductID, item.ProductCode, item.Quantity, item.UnitPrice, item.LineTotal, item.StockReleased,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("repository: failed to create item %s for order %s: %w", item.ProductCode, order.Number, err)
		}
	}

	return nil
}

// GetOrderByNumber получает заказ по номеру (без позиций)
func (r *OrderRepository) GetOrderByNumber(ctx context.Context, number string) (*domain.Order, error) {
	o, err := scanOrder(conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`,
		number,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %s: %w", number, err)
	}

	return o, nil
}

// GetOrderByID получает заказ по ID (без позиций)
func (r *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := scanOrder(conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %d: %w", id, err)
	}

	return o, nil
}

// GetOrdersByUserID получает заказы пользователя, новые первыми
func (r *OrderRepository) GetOrdersByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
}

// GetOrdersToSync возвращает заказы, принятые провайдером и еще не завершенные
func (r *OrderRepository) GetOrdersToSync(ctx context.Context) ([]*domain.Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE external_id IS NOT NULL
		   AND status NOT IN ('SUCCESS', 'FAILED', 'CANCELLED', 'REFUNDED')
		 ORDER BY updated_at`,
	)
}

// GetStaleOrders возвращает заказы, отправка которых провайдеру прервалась:
// PENDING либо PROCESSING с позициями без trxid, не менявшиеся с before
func (r *OrderRepository) GetStaleOrders(ctx context.Context, before time.Time) ([]*domain.Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders o
		 WHERE o.updated_at < $1
		   AND (o.status = 'PENDING'
		        OR (o.status = 'PROCESSING' AND EXISTS (
		            SELECT 1 FROM order_items i WHERE i.order_id = o.id AND i.external_id IS NULL)))
		 ORDER BY o.updated_at`,
		before,
	)
}

// GetUnpaidOrders возвращает заказы в WAITING_PAYMENT, не менявшиеся с before
func (r *OrderRepository) GetUnpaidOrders(ctx context.Context, before time.Time) ([]*domain.Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE status = 'WAITING_PAYMENT' AND updated_at < $1
		 ORDER BY updated_at`,
		before,
	)
}

func (r *OrderRepository) queryOrders(ctx context.Context, sql string, args ...any) ([]*domain.Order, error) {
	rows, err := conn(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return orders, nil
}

// GetOrderItems получает позиции заказа
func (r *OrderRepository) GetOrderItems(ctx context.Context, orderID int64) ([]*domain.OrderItem, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT `+itemColumns+` FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get items for order %d: %w", orderID, err)
	}
	defer rows.Close()

	var items []*domain.OrderItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating order items: %w", err)
	}

	return items, nil
}

// GetItemByExternalID находит позицию по id транзакции провайдера
func (r *OrderRepository) GetItemByExternalID(ctx context.Context, externalID string) (*domain.OrderItem, error) {
	item, err := scanItem(conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+itemColumns+` FROM order_items WHERE external_id = $1`,
		externalID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get item by external id %s: %w", externalID, err)
	}

	return item, nil
}

// CompareAndSetStatus меняет статус заказа, только если текущий статус равен from
func (r *OrderRepository) CompareAndSetStatus(ctx context.Context, orderID int64, from, to domain.OrderStatus) (bool, error) {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE orders SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`,
		orderID, from, to,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to update order %d status: %w", orderID, err)
	}

	return tag.RowsAffected() == 1, nil
}

// SetExternalID записывает внешний id заказа; уже заданный id не перезаписывается
func (r *OrderRepository) SetExternalID(ctx context.Context, orderID int64, externalID string) error {
	_, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE orders SET external_id = $2, updated_at = NOW() WHERE id = $1 AND external_id IS NULL`,
		orderID, externalID,
	)
	if err != nil {
		if isUniqueViolation(err, "orders_external_id_key") {
			return domain.ErrOrderExists
		}
		return fmt.Errorf("repository: failed to set external id for order %d: %w", orderID, err)
	}

	return nil
}

// SetItemSubmission сохраняет id транзакции провайдера и статус позиции после отправки
func (r *OrderRepository) SetItemSubmission(ctx context.Context, itemID int64, externalID string, status domain.OrderStatus) error {
	_, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE order_items SET external_id = $2, provider_status = $3 WHERE id = $1 AND external_id IS NULL`,
		itemID, externalID, status,
	)
	if err != nil {
		if isUniqueViolation(err, "order_items_external_id_key") {
			return domain.ErrOrderExists
		}
		return fmt.Errorf("repository: failed to save submission for item %d: %w", itemID, err)
	}

	return nil
}

// SetItemProviderStatus сохраняет последний известный статус позиции у провайдера
func (r *OrderRepository) SetItemProviderStatus(ctx context.Context, itemID int64, status domain.OrderStatus) error {
	_, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE order_items SET provider_status = $2 WHERE id = $1`,
		itemID, status,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update provider status for item %d: %w", itemID, err)
	}

	return nil
}

// MarkItemStockReleased отмечает возврат резерва позиции. Повторная отметка возвращает false.
func (r *OrderRepository) MarkItemStockReleased(ctx context.Context, itemID int64) (bool, error) {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE order_items SET stock_released = TRUE WHERE id = $1 AND stock_released = FALSE`,
		itemID,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to release stock for item %d: %w", itemID, err)
	}

	return tag.RowsAffected() == 1, nil
}

// AppendNote дописывает строку в заметки заказа
func (r *OrderRepository) AppendNote(ctx context.Context, orderID int64, note string) error {
	_, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE orders
		 SET notes = CASE WHEN notes = '' THEN $2 ELSE notes || E'\n' || $2 END,
		     updated_at = NOW()
		 WHERE id = $1`,
		orderID, note,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to append note to order %d: %w", orderID, err)
	}

	return nil
}

// CountOrdersByStatus считает заказы по статусам
func (r *OrderRepository) CountOrdersByStatus(ctx context.Context) (map[domain.OrderStatus]int64, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to count orders: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.OrderStatus]int64)
	for rows.Next() {
		var status domain.OrderStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("repository: failed to scan order count: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating order counts: %w", err)
	}

	return counts, nil
}
