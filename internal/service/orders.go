package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/topup-storefront/internal/domain"
	"github.com/avc/topup-storefront/internal/utils/ordernum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	maxOrderItems       = 20
	orderNumberAttempts = 3
)

// OrderService реализует domain.OrderService
type OrderService struct {
	tx           domain.Transactor
	products     domain.ProductRepository
	orders       domain.OrderRepository
	payments     domain.PaymentRepository
	transactions domain.TransactionRepository
	stock        *StockLedger
	lifecycle    *LifecycleService
	fulfiller    *Fulfiller
	logger       *zap.Logger
	now          func() time.Time
}

// NewOrderService создает новый OrderService
func NewOrderService(
	tx domain.Transactor,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	payments domain.PaymentRepository,
	transactions domain.TransactionRepository,
	stock *StockLedger,
	lifecycle *LifecycleService,
	fulfiller *Fulfiller,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		tx:           tx,
		products:     products,
		orders:       orders,
		payments:     payments,
		transactions: transactions,
		stock:        stock,
		lifecycle:    lifecycle,
		fulfiller:    fulfiller,
		logger:       logger,
		now:          time.Now,
	}
}

// PlaceOrder оформляет заказ: проверка, резерв, сохранение, оплата и передача провайдеру.
// При нехватке остатка заказ сохраняется в FAILED и возвращается вместе с ErrInsufficientStock.
func (s *OrderService) PlaceOrder(ctx context.Context, input domain.PlaceOrderInput) (*domain.PlaceOrderResult, error) {
	order, err := s.buildOrder(ctx, input)
	if err != nil {
		return nil, err
	}

	shortages, err := s.reserveItems(ctx, order)
	if err != nil {
		return nil, err
	}

	// резерв уже взят: дальше заказ доводится до сохраненного исхода
	// независимо от того, дождется ли клиент ответа
	ctx = context.WithoutCancel(ctx)

	if len(shortages) > 0 {
		return s.persistRejected(ctx, order, shortages)
	}

	if err := s.persist(ctx, order); err != nil {
		s.releaseReservations(ctx, order, "order "+order.Number+" not placed")
		if errors.Is(err, domain.ErrInsufficientBalance) || errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to place order: %w", err)
	}

	s.logger.Info("order placed",
		zap.String("order_number", order.Number),
		zap.String("payment_method", string(order.PaymentMethod)),
		zap.String("total", order.Total.String()),
	)

	if order.PaymentMethod == domain.PaymentMethodGateway {
		if _, err := s.lifecycle.Transition(ctx, order, domain.OrderStatusWaitingPayment, "", nil); err != nil {
			return nil, fmt.Errorf("order service: %w", err)
		}
		return s.result(order, "Waiting for payment"), nil
	}

	message, err := s.fulfiller.Submit(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("order service: %w", err)
	}
	return s.result(order, message), nil
}

// buildOrder проверяет запрос и фиксирует цены из каталога
func (s *OrderService) buildOrder(ctx context.Context, input domain.PlaceOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, domain.NewValidationError("items", "at least one item required")
	}
	if len(input.Items) > maxOrderItems {
		return nil, domain.NewValidationError("items", fmt.Sprintf("at most %d items allowed", maxOrderItems))
	}

	method := input.PaymentMethod
	if method == "" {
		method = domain.PaymentMethodGateway
		if input.UserID != nil {
			method = domain.PaymentMethodBalance
		}
	}
	switch method {
	case domain.PaymentMethodGateway:
	case domain.PaymentMethodBalance:
		if input.UserID == nil {
			return nil, domain.NewValidationError("payment_method", "balance payment requires login")
		}
	default:
		return nil, domain.NewValidationError("payment_method", "unsupported payment method")
	}

	order := &domain.Order{
		UserID:        input.UserID,
		PaymentMethod: method,
		Status:        domain.OrderStatusPending,
		Total:         decimal.Zero,
		Items:         make([]*domain.OrderItem, 0, len(input.Items)),
	}

	var category domain.Category
	for i, in := range input.Items {
		if in.Quantity < 1 {
			return nil, domain.NewValidationError(fmt.Sprintf("items[%d].quantity", i), "must be at least 1")
		}

		product, err := s.products.GetProductByCode(ctx, strings.TrimSpace(in.ProductCode))
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("order service: failed to get product %q: %w", in.ProductCode, err)
		}
		if !product.Active {
			return nil, domain.ErrProductInactive
		}
		if i == 0 {
			category = product.Category
		} else if product.Category != category {
			return nil, domain.NewValidationError(fmt.Sprintf("items[%d].service", i), "all items must share one category")
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		order.Items = append(order.Items, &domain.OrderItem{
			ProductID:   product.ID,
			ProductCode: product.Code,
			Quantity:    in.Quantity,
			UnitPrice:   product.Price,
			LineTotal:   lineTotal,
		})
		order.Total = order.Total.Add(lineTotal)
	}

	customerData, err := domain.ParseCustomerData(category, input.CustomerData)
	if err != nil {
		return nil, err
	}
	order.CustomerData = customerData
	order.ServiceCode = order.Items[0].ProductCode
	order.Number = ordernum.Generate(s.now())

	return order, nil
}

// reserveItems резервирует позиции по очереди. При первой нехватке
// уже зарезервированные позиции возвращаются, а для каждой позиции
// без резерва формируется пояснение.
func (s *OrderService) reserveItems(ctx context.Context, order *domain.Order) ([]string, error) {
	reason := "order " + order.Number
	var shortages []string

	for i, item := range order.Items {
		ok, err := s.stock.Reserve(ctx, item.ProductID, item.Quantity, reason)
		if err != nil {
			s.releaseReservations(ctx, &domain.Order{Number: order.Number, Items: order.Items[:i]}, reason+" reservation aborted")
			return nil, fmt.Errorf("order service: %w", err)
		}
		if !ok {
			shortages = append(shortages, fmt.Sprintf("insufficient stock for %s (requested %d)", item.ProductCode, item.Quantity))
			s.releaseReservations(ctx, &domain.Order{Number: order.Number, Items: order.Items[:i]}, reason+" reservation aborted")
			for _, rest := range order.Items[i+1:] {
				shortages = append(shortages, fmt.Sprintf("not reserved: %s", rest.ProductCode))
			}
			break
		}
	}

	return shortages, nil
}

// releaseReservations возвращает резерв позиций заказа, который еще не сохранен.
// Выполняется и после отмены запроса, иначе резерв остался бы висеть.
func (s *OrderService) releaseReservations(ctx context.Context, order *domain.Order, reason string) {
	ctx = context.WithoutCancel(ctx)
	for _, item := range order.Items {
		if item.StockReleased {
			continue
		}
		if err := s.stock.Restore(ctx, item.ProductID, item.Quantity, reason, nil); err != nil {
			s.logger.Error("failed to release reservation",
				zap.String("order_number", order.Number),
				zap.Int64("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity),
				zap.Error(err),
			)
			continue
		}
		item.StockReleased = true
	}
}

// persistRejected сохраняет заказ, не прошедший резервирование, сразу в FAILED
func (s *OrderService) persistRejected(ctx context.Context, order *domain.Order, shortages []string) (*domain.PlaceOrderResult, error) {
	order.Status = domain.OrderStatusFailed
	order.Notes = strings.Join(shortages, "\n")
	for _, item := range order.Items {
		item.StockReleased = true
	}

	err := s.withOrderNumber(ctx, order, func(ctx context.Context) error {
		return s.orders.CreateOrder(ctx, order)
	})
	if err != nil {
		return nil, fmt.Errorf("order service: failed to save rejected order: %w", err)
	}

	s.logger.Info("order rejected: insufficient stock", zap.String("order_number", order.Number))
	return s.result(order, "Insufficient stock"), domain.ErrInsufficientStock
}

// persist сохраняет заказ, позиции и оплату в одной транзакции.
// Оплата с баланса списывается в той же транзакции.
func (s *OrderService) persist(ctx context.Context, order *domain.Order) error {
	return s.withOrderNumber(ctx, order, func(ctx context.Context) error {
		payment := &domain.Payment{
			Method: order.PaymentMethod,
			Amount: order.Total,
			Status: domain.PaymentStatusPending,
		}

		if order.PaymentMethod == domain.PaymentMethodBalance {
			tx, err := s.transactions.ChangeBalance(ctx, domain.BalanceChange{
				UserID:      *order.UserID,
				Amount:      order.Total.Neg(),
				Type:        domain.TransactionTypePurchase,
				Reference:   order.Number,
				Description: "purchase " + order.ServiceCode,
			})
			if err != nil {
				return err
			}
			settledAt := tx.CreatedAt
			payment.Status = domain.PaymentStatusSettled
			payment.Reference = order.Number
			payment.SettledAt = &settledAt
		} else {
			payment.Reference = uuid.NewString()
		}

		if err := s.orders.CreateOrder(ctx, order); err != nil {
			return err
		}
		payment.OrderID = order.ID
		return s.payments.CreatePayment(ctx, payment)
	})
}

// withOrderNumber выполняет сохранение в транзакции, генерируя новый номер при коллизии
func (s *OrderService) withOrderNumber(ctx context.Context, order *domain.Order, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		if attempt > 0 {
			order.Number = ordernum.Generate(s.now())
		}
		err = s.tx.WithinTx(ctx, fn)
		if !errors.Is(err, domain.ErrOrderExists) {
			return err
		}
	}
	return err
}

func (s *OrderService) result(order *domain.Order, message string) *domain.PlaceOrderResult {
	return &domain.PlaceOrderResult{
		OrderNumber: order.Number,
		ExternalID:  order.ExternalID,
		Status:      order.Status,
		Message:     message,
	}
}

// GetOrderStatus возвращает публичный статус заказа по номеру
func (s *OrderService) GetOrderStatus(ctx context.Context, number string) (*domain.OrderStatusView, error) {
	order, err := s.orders.GetOrderByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to get order %s: %w", number, err)
	}

	return &domain.OrderStatusView{
		OrderNumber: order.Number,
		Service:     order.ServiceCode,
		Status:      order.Status,
		Total:       order.Total,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}, nil
}

// GetUserOrders получает все заказы пользователя
func (s *OrderService) GetUserOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	orders, err := s.orders.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get orders for user %d: %w", userID, err)
	}

	return orders, nil
}

// GetOrderDetail возвращает заказ с позициями и заметками (для администратора)
func (s *OrderService) GetOrderDetail(ctx context.Context, number string) (*domain.Order, error) {
	order, err := s.orders.GetOrderByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to get order %s: %w", number, err)
	}

	items, err := s.orders.GetOrderItems(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get items of order %s: %w", number, err)
	}
	order.Items = items

	return order, nil
}
