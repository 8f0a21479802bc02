package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/topup-storefront/internal/domain"
	"go.uber.org/zap"
)

const defaultSubmitTimeout = 20 * time.Second

// Fulfiller передает оплаченный заказ провайдеру.
// Используется при оплате с баланса и после подтверждения платежа шлюзом.
type Fulfiller struct {
	orders    domain.OrderRepository
	provider  domain.ProviderGateway
	lifecycle *LifecycleService
	timeout   time.Duration
	logger    *zap.Logger
}

// NewFulfiller создает новый Fulfiller; timeout ограничивает каждый вызов провайдера
func NewFulfiller(
	orders domain.OrderRepository,
	provider domain.ProviderGateway,
	lifecycle *LifecycleService,
	timeout time.Duration,
	logger *zap.Logger,
) *Fulfiller {
	if timeout <= 0 {
		timeout = defaultSubmitTimeout
	}
	return &Fulfiller{
		orders:    orders,
		provider:  provider,
		lifecycle: lifecycle,
		timeout:   timeout,
		logger:    logger,
	}
}

// Submit отправляет провайдеру все еще не отправленные позиции заказа.
// Все приняты: заказ переходит в PROCESSING (или сразу в итоговый статус,
// если провайдер его уже сообщил). Отказ или таймаут: позиция и заказ FAILED,
// резерв возвращается. Вызывающий передает контекст, не зависящий от отмены
// запроса: результат отправки должен быть сохранен. Возвращает сообщение для покупателя.
func (f *Fulfiller) Submit(ctx context.Context, order *domain.Order) (string, error) {
	items, err := f.orders.GetOrderItems(ctx, order.ID)
	if err != nil {
		return "", fmt.Errorf("fulfillment: failed to get items of order %s: %w", order.Number, err)
	}
	order.Items = items

	target, zone := order.CustomerData.Target()
	statuses := make([]domain.OrderStatus, 0, len(items))
	var failure string

	for _, item := range items {
		if item.ExternalID != nil {
			statuses = append(statuses, itemStatus(item))
			continue
		}

		result, err := f.submitItem(ctx, domain.SubmitRequest{
			Reference:   order.Number,
			ProductCode: item.ProductCode,
			Category:    order.CustomerData.Category,
			Target:      target,
			Zone:        zone,
			Quantity:    item.Quantity,
		})
		if err != nil {
			f.logger.Warn("provider submission failed",
				zap.String("order_number", order.Number),
				zap.String("service", item.ProductCode),
				zap.Error(err),
			)
			failure = submissionFailure(err)
		} else if !result.Accepted || result.ExternalID == "" {
			failure = "provider rejected " + item.ProductCode
			if result.Message != "" {
				failure += ": " + result.Message
			}
		}
		if failure != "" {
			// позиция без trxid иначе навсегда считалась бы PROCESSING при сведении статусов
			if err := f.orders.SetItemProviderStatus(ctx, item.ID, domain.OrderStatusFailed); err != nil {
				return "", fmt.Errorf("fulfillment: failed to record rejection of order %s: %w", order.Number, err)
			}
			failed := domain.OrderStatusFailed
			item.ProviderStatus = &failed
			break
		}

		if err := f.orders.SetItemSubmission(ctx, item.ID, result.ExternalID, result.Status); err != nil {
			return "", fmt.Errorf("fulfillment: failed to record submission of order %s: %w", order.Number, err)
		}
		if order.ExternalID == nil {
			if err := f.orders.SetExternalID(ctx, order.ID, result.ExternalID); err != nil {
				return "", fmt.Errorf("fulfillment: failed to record external id of order %s: %w", order.Number, err)
			}
			ext := result.ExternalID
			order.ExternalID = &ext
		}

		ext, status := result.ExternalID, result.Status
		item.ExternalID = &ext
		item.ProviderStatus = &status
		statuses = append(statuses, status)
	}

	if failure != "" {
		if _, err := f.lifecycle.Transition(ctx, order, domain.OrderStatusFailed, failure, nil); err != nil {
			return "", err
		}
		return submitMessage(order.Status), nil
	}

	if _, err := f.lifecycle.Transition(ctx, order, domain.OrderStatusProcessing, "", nil); err != nil {
		return "", err
	}

	// заказ мог уже завершиться по уведомлению провайдера, пришедшему во время отправки
	if final := domain.AggregateItemStatus(statuses); final.IsFinal() && !order.Status.IsFinal() {
		if _, err := f.lifecycle.Transition(ctx, order, final, "provider reported "+string(final)+" on submission", nil); err != nil {
			return "", err
		}
	}

	return submitMessage(order.Status), nil
}

func submitMessage(status domain.OrderStatus) string {
	switch status {
	case domain.OrderStatusFailed, domain.OrderStatusCancelled:
		return "Order could not be processed by the provider"
	case domain.OrderStatusSuccess:
		return "Order completed"
	default:
		return "Order is being processed"
	}
}

func (f *Fulfiller) submitItem(ctx context.Context, req domain.SubmitRequest) (*domain.SubmitResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	result, err := f.provider.SubmitOrder(callCtx, req)
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) && !errors.Is(err, domain.ErrProviderTimeout) {
			return nil, fmt.Errorf("%w: %v", domain.ErrProviderTimeout, err)
		}
		return nil, err
	}
	return result, nil
}

func submissionFailure(err error) string {
	switch {
	case errors.Is(err, domain.ErrProviderTimeout):
		return "provider timeout"
	case errors.Is(err, domain.ErrProviderUnavailable):
		return "provider unavailable"
	default:
		return "provider submission error"
	}
}

func itemStatus(item *domain.OrderItem) domain.OrderStatus {
	if item.ProviderStatus == nil {
		return domain.OrderStatusProcessing
	}
	return *item.ProviderStatus
}
