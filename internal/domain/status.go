package domain

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusWaitingPayment OrderStatus = "WAITING_PAYMENT"
	OrderStatusProcessing     OrderStatus = "PROCESSING"
	OrderStatusSuccess        OrderStatus = "SUCCESS"
	OrderStatusFailed         OrderStatus = "FAILED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
	OrderStatusRefunded       OrderStatus = "REFUNDED"
)

// orderTransitions описывает допустимые переходы между статусами заказа.
// REFUNDED достижим только из SUCCESS и FAILED; CANCELLED и REFUNDED конечные.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {
		OrderStatusWaitingPayment,
		OrderStatusProcessing,
		OrderStatusFailed,
		OrderStatusCancelled,
	},
	OrderStatusWaitingPayment: {
		OrderStatusProcessing,
		OrderStatusFailed,
		OrderStatusCancelled,
	},
	OrderStatusProcessing: {
		OrderStatusSuccess,
		OrderStatusFailed,
		OrderStatusCancelled,
	},
	OrderStatusSuccess: {OrderStatusRefunded},
	OrderStatusFailed:  {OrderStatusRefunded},
}

// CanTransition проверяет, разрешен ли переход from -> to
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Valid сообщает, является ли значение известным статусом
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusWaitingPayment, OrderStatusProcessing,
		OrderStatusSuccess, OrderStatusFailed, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// IsFinal сообщает, завершена ли обработка заказа у провайдера.
// Сверка не трогает заказы в этих статусах.
func (s OrderStatus) IsFinal() bool {
	switch s {
	case OrderStatusSuccess, OrderStatusFailed, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// ReleasesStock сообщает, должен ли переход в статус вернуть зарезервированный остаток
func (s OrderStatus) ReleasesStock() bool {
	return s == OrderStatusFailed || s == OrderStatusCancelled
}

// AggregateItemStatus сводит статусы позиций заказа в статус заказа:
// любая FAILED позиция дает FAILED, любая CANCELLED дает CANCELLED,
// SUCCESS только когда успешны все позиции, иначе PROCESSING.
func AggregateItemStatus(statuses []OrderStatus) OrderStatus {
	if len(statuses) == 0 {
		return OrderStatusProcessing
	}

	allSuccess := true
	cancelled := false
	for _, s := range statuses {
		switch s {
		case OrderStatusFailed:
			return OrderStatusFailed
		case OrderStatusCancelled:
			cancelled = true
		}
		if s != OrderStatusSuccess {
			allSuccess = false
		}
	}

	if cancelled {
		return OrderStatusCancelled
	}
	if allSuccess {
		return OrderStatusSuccess
	}
	return OrderStatusProcessing
}
