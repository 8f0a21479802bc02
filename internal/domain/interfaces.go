package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transactor выполняет функцию в одной транзакции БД.
// Репозитории, вызванные с переданным ctx, работают внутри этой транзакции.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, login, passwordHash string) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
}

// ProductRepository определяет методы для работы с каталогом и остатками
type ProductRepository interface {
	GetProductByCode(ctx context.Context, code string) (*Product, error)
	GetProductByID(ctx context.Context, id int64) (*Product, error)
	ListActiveProducts(ctx context.Context) ([]*Product, error)
	// DecrementStock атомарно уменьшает остаток LIMITED товара, если его хватает.
	// ok=false означает, что строка не изменена.
	DecrementStock(ctx context.Context, productID int64, quantity int) (stockAfter int, ok bool, err error)
	// IncrementStock увеличивает остаток LIMITED товара; ok=false для UNLIMITED.
	IncrementStock(ctx context.Context, productID int64, quantity int) (stockAfter int, ok bool, err error)
	LockProduct(ctx context.Context, productID int64) (*Product, error)
	SetStock(ctx context.Context, productID int64, stock int) error
}

// StockHistoryRepository журнал изменений остатков (только добавление)
type StockHistoryRepository interface {
	CreateStockHistory(ctx context.Context, entry *StockHistory) error
	GetStockHistory(ctx context.Context, productID int64, limit int) ([]*StockHistory, error)
}

// OrderRepository определяет методы для работы с заказами и их позициями
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByNumber(ctx context.Context, number string) (*Order, error)
	GetOrderByID(ctx context.Context, id int64) (*Order, error)
	GetOrdersByUserID(ctx context.Context, userID int64) ([]*Order, error)
	GetOrderItems(ctx context.Context, orderID int64) ([]*OrderItem, error)
	GetItemByExternalID(ctx context.Context, externalID string) (*OrderItem, error)
	GetOrdersToSync(ctx context.Context) ([]*Order, error)
	// GetStaleOrders возвращает заказы, не переданные провайдеру полностью и не менявшиеся с before
	GetStaleOrders(ctx context.Context, before time.Time) ([]*Order, error)
	// GetUnpaidOrders возвращает заказы, ожидающие оплаты с момента раньше before
	GetUnpaidOrders(ctx context.Context, before time.Time) ([]*Order, error)
	// CompareAndSetStatus меняет статус только если текущий равен from
	CompareAndSetStatus(ctx context.Context, orderID int64, from, to OrderStatus) (bool, error)
	// SetExternalID записывает внешний id, только если он еще не задан
	SetExternalID(ctx context.Context, orderID int64, externalID string) error
	SetItemSubmission(ctx context.Context, itemID int64, externalID string, status OrderStatus) error
	SetItemProviderStatus(ctx context.Context, itemID int64, status OrderStatus) error
	// MarkItemStockReleased отмечает, что резерв позиции возвращен; false если уже был возвращен
	MarkItemStockReleased(ctx context.Context, itemID int64) (bool, error)
	AppendNote(ctx context.Context, orderID int64, note string) error
	CountOrdersByStatus(ctx context.Context) (map[OrderStatus]int64, error)
}

// PaymentRepository определяет методы для работы с оплатами
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *Payment) error
	GetPaymentByOrderID(ctx context.Context, orderID int64) (*Payment, error)
	CompareAndSetPaymentStatus(ctx context.Context, paymentID int64, from, to PaymentStatus) (bool, error)
}

// CallbackLogRepository журнал входящих уведомлений
type CallbackLogRepository interface {
	CreateCallbackLog(ctx context.Context, entry *CallbackLog) error
	MarkCallbackProcessed(ctx context.Context, id int64, orderID *int64, errText string) error
	DeleteCallbackLogsBefore(ctx context.Context, before time.Time) (int64, error)
	CountCallbackLogs(ctx context.Context) (total int64, unprocessed int64, err error)
}

// BalanceChange изменение баланса пользователя; Amount со знаком
type BalanceChange struct {
	UserID      int64
	Amount      decimal.Decimal
	Type        TransactionType
	Reference   string
	Description string
}

// TransactionRepository определяет методы для работы с балансом и его журналом
type TransactionRepository interface {
	GetBalance(ctx context.Context, userID int64) (*Balance, error)
	// ChangeBalance меняет баланс под блокировкой пользователя и пишет транзакцию
	ChangeBalance(ctx context.Context, change BalanceChange) (*Transaction, error)
	GetTransactions(ctx context.Context, userID int64) ([]*Transaction, error)
}

// Имена отметок в sync_state
const (
	SyncStateLastSync    = "last_sync"
	SyncStateLastCleanup = "last_cleanup"
)

// SyncStateRepository хранит отметки времени фоновых процедур
type SyncStateRepository interface {
	GetSyncTime(ctx context.Context, name string) (*time.Time, error)
	SetSyncTime(ctx context.Context, name string, at time.Time) error
}

// ProviderGateway внешний поставщик, исполняющий заказы
type ProviderGateway interface {
	SubmitOrder(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
	QueryStatus(ctx context.Context, category Category, externalID string) (*ProviderStatus, error)
	ParseCallback(body []byte) (*ProviderStatus, error)
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, login, password string) (*Session, error)
	Login(ctx context.Context, login, password string) (*Session, error)
}

// CatalogService определяет методы чтения каталога
type CatalogService interface {
	ListProducts(ctx context.Context) ([]*Product, error)
}

// OrderService определяет методы работы с заказами
type OrderService interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderResult, error)
	GetOrderStatus(ctx context.Context, number string) (*OrderStatusView, error)
	GetUserOrders(ctx context.Context, userID int64) ([]*Order, error)
	GetOrderDetail(ctx context.Context, number string) (*Order, error)
}

// BalanceService определяет методы работы с балансом
type BalanceService interface {
	GetBalance(ctx context.Context, userID int64) (*Balance, error)
	GetTransactions(ctx context.Context, userID int64) ([]*Transaction, error)
}

// PaymentService обрабатывает уведомления платежного шлюза
type PaymentService interface {
	HandleNotification(ctx context.Context, body []byte, signature string) (*WebhookResult, error)
}

// ReconcileService сверяет статусы заказов с провайдером
type ReconcileService interface {
	HandleWebhook(ctx context.Context, body []byte, signature string) (*WebhookResult, error)
	SyncAll(ctx context.Context) (*SyncStats, error)
	SyncOne(ctx context.Context, orderNumber string) (*SyncStats, error)
	Cleanup(ctx context.Context, force bool) (*CleanupResult, error)
	RecoverStale(ctx context.Context) (*RecoverStats, error)
	Stats(ctx context.Context) (*ReconcileStats, error)
	RunScheduled(ctx context.Context) error
}

// AdminService операции администратора
type AdminService interface {
	Refund(ctx context.Context, orderNumber string, adminID int64) (*Order, error)
	OverrideStatus(ctx context.Context, orderNumber string, to OrderStatus, note string, adminID int64) (*Order, error)
	AdjustStock(ctx context.Context, productID int64, newStock int, reason string, adminID int64) (*StockHistory, error)
	StockHistory(ctx context.Context, productID int64, limit int) ([]*StockHistory, error)
}
