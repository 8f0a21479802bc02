package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput позиция, запрошенная покупателем
type OrderItemInput struct {
	ProductCode string `json:"service"`
	Quantity    int    `json:"quantity"`
}

// PlaceOrderInput запрос на оформление заказа.
// Цена не передается клиентом, она берется из каталога.
type PlaceOrderInput struct {
	UserID        *int64
	Items         []OrderItemInput
	CustomerData  map[string]string
	PaymentMethod PaymentMethod
}

// PlaceOrderResult результат оформления заказа
type PlaceOrderResult struct {
	OrderNumber string      `json:"order_number"`
	ExternalID  *string     `json:"external_id,omitempty"`
	Status      OrderStatus `json:"status"`
	Message     string      `json:"message"`
}

// OrderStatusView публичное представление заказа без внутренних заметок
type OrderStatusView struct {
	OrderNumber string          `json:"order_number"`
	Service     string          `json:"service"`
	Status      OrderStatus     `json:"status"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SubmitRequest отправка одной позиции провайдеру
type SubmitRequest struct {
	Reference   string
	ProductCode string
	Category    Category
	Target      string
	Zone        string
	Quantity    int
}

// SubmitResult ответ провайдера на отправку позиции
type SubmitResult struct {
	Accepted   bool
	ExternalID string
	Status     OrderStatus
	Message    string
}

// ProviderStatus статус транзакции у провайдера, уже переведенный во внутренний словарь
type ProviderStatus struct {
	ExternalID   string
	Status       OrderStatus
	RawStatus    string
	Note         string
	SerialNumber string
}

// WebhookResult ответ на входящее уведомление
type WebhookResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SyncStats итоги прохода сверки
type SyncStats struct {
	Processed  int   `json:"processed"`
	Updated    int   `json:"updated"`
	Failed     int   `json:"failed"`
	Skipped    int   `json:"skipped"`
	DurationMS int64 `json:"duration_ms"`
}

// CleanupResult итоги очистки журнала уведомлений
type CleanupResult struct {
	Ran     bool       `json:"ran"`
	Deleted int64      `json:"deleted"`
	NextRun *time.Time `json:"next_run,omitempty"`
}

// RecoverStats итоги восстановления зависших заказов
type RecoverStats struct {
	Interrupted int `json:"interrupted"`
	Expired     int `json:"expired"`
	Failed      int `json:"failed"`
}

// ReconcileStats сводка для администратора
type ReconcileStats struct {
	OrdersByStatus       map[OrderStatus]int64 `json:"orders_by_status"`
	CallbacksTotal       int64                 `json:"callbacks_total"`
	CallbacksUnprocessed int64                 `json:"callbacks_unprocessed"`
	LastSync             *time.Time            `json:"last_sync,omitempty"`
	LastCleanup          *time.Time            `json:"last_cleanup,omitempty"`
}

// PaymentNotification уведомление платежного шлюза о расчете
type PaymentNotification struct {
	OrderNumber       string          `json:"order_number"`
	TransactionStatus string          `json:"transaction_status"`
	GrossAmount       decimal.Decimal `json:"gross_amount"`
	TransactionID     string          `json:"transaction_id"`
}
