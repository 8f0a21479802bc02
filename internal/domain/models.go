package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role роль пользователя
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// StockMode режим учета остатков товара
type StockMode string

const (
	StockModeUnlimited StockMode = "UNLIMITED"
	StockModeLimited   StockMode = "LIMITED"
)

// StockChangeType тип записи в журнале остатков
type StockChangeType string

const (
	StockChangeReserve StockChangeType = "RESERVE"
	StockChangeRestore StockChangeType = "RESTORE"
	StockChangeAdjust  StockChangeType = "ADJUST"
)

// PaymentMethod способ оплаты заказа
type PaymentMethod string

const (
	PaymentMethodBalance PaymentMethod = "BALANCE"
	PaymentMethodGateway PaymentMethod = "GATEWAY"
)

// PaymentStatus статус оплаты
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusSettled   PaymentStatus = "SETTLED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
	PaymentStatusExpired   PaymentStatus = "EXPIRED"
	PaymentStatusDenied    PaymentStatus = "DENIED"
	PaymentStatusMismatch  PaymentStatus = "MISMATCH"
)

// TransactionType представляет тип транзакции
type TransactionType string

const (
	TransactionTypePurchase TransactionType = "PURCHASE"
	TransactionTypeRefund   TransactionType = "REFUND"
)

// CallbackSource источник входящего уведомления
type CallbackSource string

const (
	CallbackSourceProvider CallbackSource = "provider"
	CallbackSourcePayment  CallbackSource = "payment"
)

// User представляет пользователя системы
type User struct {
	ID           int64           `json:"id"`
	Login        string          `json:"login"`
	PasswordHash string          `json:"-"` // Не отправляем хеш в JSON
	Role         Role            `json:"role"`
	Balance      decimal.Decimal `json:"balance"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Session выданный при входе токен и роль, под которой он выдан
type Session struct {
	Token  string `json:"-"`
	UserID int64  `json:"user_id"`
	Role   Role   `json:"role"`
}

// IsAdmin сообщает, является ли пользователь администратором
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Product товар каталога
type Product struct {
	ID        int64           `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Category  Category        `json:"category"`
	Price     decimal.Decimal `json:"price"`
	StockMode StockMode       `json:"stock_mode"`
	Stock     int             `json:"stock"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Limited сообщает, ведется ли по товару учет остатков
func (p *Product) Limited() bool {
	return p.StockMode == StockModeLimited
}

// Order представляет заказ
type Order struct {
	ID            int64           `json:"-"`
	Number        string          `json:"order_number"`
	ExternalID    *string         `json:"external_id,omitempty"`
	UserID        *int64          `json:"-"` // nil для гостевых заказов
	ServiceCode   string          `json:"service"`
	Total         decimal.Decimal `json:"total"`
	CustomerData  CustomerData    `json:"customer_data"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        OrderStatus     `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	Items         []*OrderItem    `json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderItem позиция заказа с зафиксированной ценой
type OrderItem struct {
	ID             int64           `json:"-"`
	OrderID        int64           `json:"-"`
	ProductID      int64           `json:"product_id"`
	ProductCode    string          `json:"product_code"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	LineTotal      decimal.Decimal `json:"line_total"`
	ExternalID     *string         `json:"external_id,omitempty"`
	ProviderStatus *OrderStatus    `json:"provider_status,omitempty"`
	StockReleased  bool            `json:"-"` // резерв по позиции больше не удерживается
}

// Payment оплата заказа
type Payment struct {
	ID        int64           `json:"-"`
	OrderID   int64           `json:"-"`
	Method    PaymentMethod   `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Status    PaymentStatus   `json:"status"`
	Reference string          `json:"reference"`
	SettledAt *time.Time      `json:"settled_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// StockHistory запись журнала изменения остатков
type StockHistory struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	Type        StockChangeType `json:"type"`
	Delta       int             `json:"delta"`
	StockBefore int             `json:"stock_before"`
	StockAfter  int             `json:"stock_after"`
	Reason      string          `json:"reason"`
	ActorID     *int64          `json:"actor_id,omitempty"` // nil для системных изменений
	CreatedAt   time.Time       `json:"created_at"`
}

// CallbackLog запись о входящем уведомлении
type CallbackLog struct {
	ID          int64          `json:"id"`
	Source      CallbackSource `json:"source"`
	OrderID     *int64         `json:"order_id,omitempty"`
	ExternalRef string         `json:"external_ref"`
	Payload     []byte         `json:"payload"`
	Processed   bool           `json:"processed"`
	Error       string         `json:"error,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Transaction представляет операцию на балансе
type Transaction struct {
	ID            int64           `json:"-"`
	UserID        int64           `json:"-"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Reference     string          `json:"reference"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Balance представляет баланс пользователя
type Balance struct {
	Current decimal.Decimal `json:"current"`
}
