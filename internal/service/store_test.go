package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/avc/topup-storefront/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// memStore хранилище в памяти, реализующее репозитории домена для тестов сервисов.
// Чтения возвращают копии, как это делает БД.
type memStore struct {
	mu        sync.Mutex
	seq       int64
	users     map[int64]*domain.User
	products  map[int64]*domain.Product
	orders    map[int64]*domain.Order
	items     map[int64]*domain.OrderItem
	payments  map[int64]*domain.Payment
	history   []*domain.StockHistory
	callbacks []*domain.CallbackLog
	txs       []*domain.Transaction
	syncTimes map[string]time.Time
	// itemsErr возвращается из GetOrderItems, пока установлен
	itemsErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[int64]*domain.User{},
		products:  map[int64]*domain.Product{},
		orders:    map[int64]*domain.Order{},
		items:     map[int64]*domain.OrderItem{},
		payments:  map[int64]*domain.Payment{},
		syncTimes: map[string]time.Time{},
	}
}

func (m *memStore) nextID() int64 {
	m.seq++
	return m.seq
}

// WithinTx не изолирует изменения: тестам сервисов достаточно последовательного выполнения.
// Как и pgx, отказывается начинать транзакцию на отмененном контексте.
func (m *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

func (m *memStore) addUser(balance string) *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := &domain.User{ID: m.nextID(), Login: "user", Role: domain.RoleCustomer, Balance: decimal.RequireFromString(balance)}
	m.users[u.ID] = u
	return u
}

func (m *memStore) addProduct(code string, category domain.Category, price string, mode domain.StockMode, stock int) *domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := &domain.Product{
		ID:        m.nextID(),
		Code:      code,
		Name:      code,
		Category:  category,
		Price:     decimal.RequireFromString(price),
		StockMode: mode,
		Stock:     stock,
		Active:    true,
	}
	m.products[p.ID] = p
	return p
}

func (m *memStore) stockOf(productID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[productID].Stock
}

func (m *memStore) balanceOf(userID int64) decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[userID].Balance
}

func (m *memStore) orderByNumber(number string) *domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.Number == number {
			c := *o
			return &c
		}
	}
	return nil
}

func (m *memStore) failItems(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.itemsErr = err
}

func (m *memStore) historyOf(productID int64, typ domain.StockChangeType) []*domain.StockHistory {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.StockHistory
	for _, h := range m.history {
		if h.ProductID == productID && h.Type == typ {
			out = append(out, h)
		}
	}
	return out
}

// ProductRepository

func (m *memStore) GetProductByCode(_ context.Context, code string) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.Code == code {
			c := *p
			return &c, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (m *memStore) GetProductByID(_ context.Context, id int64) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	c := *p
	return &c, nil
}

func (m *memStore) ListActiveProducts(_ context.Context) ([]*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Product
	for _, p := range m.products {
		if p.Active {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (m *memStore) DecrementStock(_ context.Context, productID int64, quantity int) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[productID]
	if !ok || !p.Limited() || p.Stock < quantity {
		return 0, false, nil
	}
	p.Stock -= quantity
	return p.Stock, true, nil
}

func (m *memStore) IncrementStock(_ context.Context, productID int64, quantity int) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[productID]
	if !ok || !p.Limited() {
		return 0, false, nil
	}
	p.Stock += quantity
	return p.Stock, true, nil
}

func (m *memStore) LockProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	return m.GetProductByID(ctx, productID)
}

func (m *memStore) SetStock(_ context.Context, productID int64, stock int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Stock = stock
	return nil
}

// StockHistoryRepository

func (m *memStore) CreateStockHistory(_ context.Context, entry *domain.StockHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = m.nextID()
	c := *entry
	m.history = append(m.history, &c)
	return nil
}

func (m *memStore) GetStockHistory(_ context.Context, productID int64, limit int) ([]*domain.StockHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.StockHistory
	for i := len(m.history) - 1; i >= 0 && len(out) < limit; i-- {
		if m.history[i].ProductID == productID {
			c := *m.history[i]
			out = append(out, &c)
		}
	}
	return out, nil
}

// OrderRepository

func (m *memStore) CreateOrder(_ context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.Number == order.Number {
			return domain.ErrOrderExists
		}
	}
	order.ID = m.nextID()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	c := *order
	c.Items = nil
	m.orders[order.ID] = &c
	for _, item := range order.Items {
		item.ID = m.nextID()
		item.OrderID = order.ID
		ic := *item
		m.items[item.ID] = &ic
	}
	return nil
}

func (m *memStore) GetOrderByNumber(_ context.Context, number string) (*domain.Order, error) {
	if o := m.orderByNumber(number); o != nil {
		return o, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (m *memStore) GetOrderByID(_ context.Context, id int64) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	c := *o
	return &c, nil
}

func (m *memStore) GetOrdersByUserID(_ context.Context, userID int64) ([]*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Order
	for _, o := range m.orders {
		if o.UserID != nil && *o.UserID == userID {
			c := *o
			out = append(out, &c)
		}
	}
	return out, nil
}

func (m *memStore) GetOrderItems(_ context.Context, orderID int64) ([]*domain.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.itemsErr != nil {
		return nil, m.itemsErr
	}
	var out []*domain.OrderItem
	for _, it := range m.items {
		if it.OrderID == orderID {
			c := *it
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) GetItemByExternalID(_ context.Context, externalID string) (*domain.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.ExternalID != nil && *it.ExternalID == externalID {
			c := *it
			return &c, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (m *memStore) GetOrdersToSync(_ context.Context) ([]*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Order
	for _, o := range m.orders {
		if o.ExternalID != nil && !o.Status.IsFinal() {
			c := *o
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) GetStaleOrders(_ context.Context, before time.Time) ([]*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Order
	for _, o := range m.orders {
		if !o.UpdatedAt.Before(before) {
			continue
		}
		if o.Status == domain.OrderStatusPending || (o.Status == domain.OrderStatusProcessing && m.hasUnsubmittedItem(o.ID)) {
			c := *o
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) hasUnsubmittedItem(orderID int64) bool {
	for _, it := range m.items {
		if it.OrderID == orderID && it.ExternalID == nil {
			return true
		}
	}
	return false
}

func (m *memStore) GetUnpaidOrders(_ context.Context, before time.Time) ([]*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Order
	for _, o := range m.orders {
		if o.Status == domain.OrderStatusWaitingPayment && o.UpdatedAt.Before(before) {
			c := *o
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) CompareAndSetStatus(_ context.Context, orderID int64, from, to domain.OrderStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	o.UpdatedAt = time.Now()
	return true, nil
}

func (m *memStore) SetExternalID(_ context.Context, orderID int64, externalID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o := m.orders[orderID]; o != nil && o.ExternalID == nil {
		o.ExternalID = &externalID
	}
	return nil
}

func (m *memStore) SetItemSubmission(_ context.Context, itemID int64, externalID string, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it := m.items[itemID]
	it.ExternalID = &externalID
	it.ProviderStatus = &status
	return nil
}

func (m *memStore) SetItemProviderStatus(_ context.Context, itemID int64, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[itemID].ProviderStatus = &status
	return nil
}

func (m *memStore) MarkItemStockReleased(_ context.Context, itemID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it := m.items[itemID]
	if it.StockReleased {
		return false, nil
	}
	it.StockReleased = true
	return true, nil
}

func (m *memStore) AppendNote(_ context.Context, orderID int64, note string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := m.orders[orderID]
	if o.Notes == "" {
		o.Notes = note
	} else {
		o.Notes = strings.Join([]string{o.Notes, note}, "\n")
	}
	return nil
}

func (m *memStore) CountOrdersByStatus(_ context.Context) (map[domain.OrderStatus]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[domain.OrderStatus]int64{}
	for _, o := range m.orders {
		out[o.Status]++
	}
	return out, nil
}

// PaymentRepository

func (m *memStore) CreatePayment(_ context.Context, payment *domain.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment.ID = m.nextID()
	c := *payment
	m.payments[payment.ID] = &c
	return nil
}

func (m *memStore) GetPaymentByOrderID(_ context.Context, orderID int64) (*domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.payments {
		if p.OrderID == orderID {
			c := *p
			return &c, nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *memStore) CompareAndSetPaymentStatus(_ context.Context, paymentID int64, from, to domain.PaymentStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[paymentID]
	if !ok || p.Status != from {
		return false, nil
	}
	p.Status = to
	return true, nil
}

// CallbackLogRepository

func (m *memStore) CreateCallbackLog(_ context.Context, entry *domain.CallbackLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = m.nextID()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	c := *entry
	m.callbacks = append(m.callbacks, &c)
	return nil
}

func (m *memStore) MarkCallbackProcessed(_ context.Context, id int64, orderID *int64, errText string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.callbacks {
		if c.ID == id {
			c.Processed = true
			c.OrderID = orderID
			c.Error = errText
		}
	}
	return nil
}

func (m *memStore) DeleteCallbackLogsBefore(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.callbacks[:0]
	var deleted int64
	for _, c := range m.callbacks {
		if c.CreatedAt.Before(before) {
			deleted++
			continue
		}
		kept = append(kept, c)
	}
	m.callbacks = kept
	return deleted, nil
}

func (m *memStore) CountCallbackLogs(_ context.Context) (int64, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var unprocessed int64
	for _, c := range m.callbacks {
		if !c.Processed {
			unprocessed++
		}
	}
	return int64(len(m.callbacks)), unprocessed, nil
}

// TransactionRepository

func (m *memStore) GetBalance(_ context.Context, userID int64) (*domain.Balance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &domain.Balance{Current: u.Balance}, nil
}

func (m *memStore) ChangeBalance(_ context.Context, change domain.BalanceChange) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[change.UserID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	after := u.Balance.Add(change.Amount)
	if after.IsNegative() {
		return nil, domain.ErrInsufficientBalance
	}
	t := &domain.Transaction{
		ID:            m.nextID(),
		UserID:        change.UserID,
		Type:          change.Type,
		Amount:        change.Amount,
		Description:   change.Description,
		Reference:     change.Reference,
		BalanceBefore: u.Balance,
		BalanceAfter:  after,
		CreatedAt:     time.Now(),
	}
	u.Balance = after
	m.txs = append(m.txs, t)
	return t, nil
}

func (m *memStore) GetTransactions(_ context.Context, userID int64) ([]*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Transaction
	for _, t := range m.txs {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

// SyncStateRepository

func (m *memStore) GetSyncTime(_ context.Context, name string) (*time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.syncTimes[name]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (m *memStore) SetSyncTime(_ context.Context, name string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncTimes[name] = at
	return nil
}

// fakeProvider провайдер с программируемыми ответами
type fakeProvider struct {
	mu       sync.Mutex
	seq      int
	submit   func(ctx context.Context, req domain.SubmitRequest) (*domain.SubmitResult, error)
	statuses map[string]string
	queries  int
}

func (p *fakeProvider) SubmitOrder(ctx context.Context, req domain.SubmitRequest) (*domain.SubmitResult, error) {
	if p.submit != nil {
		return p.submit(ctx, req)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	return &domain.SubmitResult{
		Accepted:   true,
		ExternalID: "VIP" + string(rune('0'+p.seq)),
		Status:     domain.OrderStatusProcessing,
	}, nil
}

func (p *fakeProvider) QueryStatus(_ context.Context, _ domain.Category, externalID string) (*domain.ProviderStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queries++
	raw, ok := p.statuses[externalID]
	if !ok {
		return nil, domain.ErrProviderUnavailable
	}
	return &domain.ProviderStatus{ExternalID: externalID, Status: mapTestStatus(raw), RawStatus: raw}, nil
}

func (p *fakeProvider) ParseCallback(body []byte) (*domain.ProviderStatus, error) {
	// формат тестовых уведомлений: "trxid:status"
	parts := strings.SplitN(string(body), ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, domain.NewValidationError("trxid", "required")
	}
	return &domain.ProviderStatus{ExternalID: parts[0], Status: mapTestStatus(parts[1]), RawStatus: parts[1]}, nil
}

func mapTestStatus(raw string) domain.OrderStatus {
	switch raw {
	case "success":
		return domain.OrderStatusSuccess
	case "failed":
		return domain.OrderStatusFailed
	case "cancelled":
		return domain.OrderStatusCancelled
	default:
		return domain.OrderStatusProcessing
	}
}

// testEnv собранные сервисы поверх memStore
type testEnv struct {
	store     *memStore
	provider  *fakeProvider
	stock     *StockLedger
	lifecycle *LifecycleService
	orders    *OrderService
	payments  *PaymentService
	reconcile *ReconcileService
	admin     *AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := newMemStore()
	provider := &fakeProvider{statuses: map[string]string{}}
	logger := zap.NewNop()

	stock := NewStockLedger(store, store, store, logger)
	lifecycle := NewLifecycleService(store, store, store, stock, logger)
	fulfiller := NewFulfiller(store, provider, lifecycle, time.Second, logger)

	return &testEnv{
		store:     store,
		provider:  provider,
		stock:     stock,
		lifecycle: lifecycle,
		orders:    NewOrderService(store, store, store, store, store, stock, lifecycle, fulfiller, logger),
		payments:  NewPaymentService(store, store, store, store, lifecycle, fulfiller, "", logger),
		reconcile: NewReconcileService(store, store, store, store, store, provider, lifecycle, ReconcileConfig{CallTimeout: time.Second}, logger),
		admin:     NewAdminService(store, store, store, store, lifecycle, stock, logger),
	}
}

func gameCustomer() map[string]string {
	return map[string]string{"user_id": "123456", "zone_id": "2001"}
}
