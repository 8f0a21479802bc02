package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc/topup-storefront/internal/domain"
	domainmocks "github.com/avc/topup-storefront/internal/domain/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func withUser(req *http.Request, userID int64, role domain.Role) *http.Request {
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	ctx = context.WithValue(ctx, RoleKey, role)
	return req.WithContext(ctx)
}

func TestAuthHandler_Register(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	handler := NewAuthHandler(mockService, zap.NewNop())

	tests := []struct {
		name       string
		body       string
		setup      func()
		wantStatus int
		wantToken  bool
	}{
		{
			name: "Success",
			body: `{"login":"user","password":"secret"}`,
			setup: func() {
				mockService.EXPECT().Register(mock.Anything, "user", "secret").
					Return(&domain.Session{Token: "token", UserID: 7, Role: domain.RoleCustomer}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name: "User exists",
			body: `{"login":"user","password":"secret"}`,
			setup: func() {
				mockService.EXPECT().Register(mock.Anything, "user", "secret").Return(nil, domain.ErrUserExists).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "Weak password",
			body: `{"login":"user","password":"1"}`,
			setup: func() {
				mockService.EXPECT().Register(mock.Anything, "user", "1").
					Return(nil, domain.NewValidationError("password", "too short")).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Invalid JSON",
			body:       `{"login":}`,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Internal error",
			body: `{"login":"user","password":"secret"}`,
			setup: func() {
				mockService.EXPECT().Register(mock.Anything, "user", "secret").Return(nil, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantToken {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
				assert.JSONEq(t, `{"user_id":7,"role":"customer"}`, w.Body.String())
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	handler := NewAuthHandler(mockService, zap.NewNop())

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "user", "secret").
			Return(&domain.Session{Token: "token", UserID: 7, Role: domain.RoleCustomer}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(`{"login":"user","password":"secret"}`))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
		assert.JSONEq(t, `{"user_id":7,"role":"customer"}`, w.Body.String())
	})

	t.Run("Admin sees admin role", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "root", "secret").
			Return(&domain.Session{Token: "admin-token", UserID: 1, Role: domain.RoleAdmin}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(`{"login":"root","password":"secret"}`))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer admin-token", w.Header().Get("Authorization"))
		assert.JSONEq(t, `{"user_id":1,"role":"admin"}`, w.Body.String())
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "user", "wrong").Return(nil, domain.ErrInvalidCredentials).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(`{"login":"user","password":"wrong"}`))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	mockService := domainmocks.NewCatalogServiceMock(t)
	handler := NewCatalogHandler(mockService, zap.NewNop())

	t.Run("Success", func(t *testing.T) {
		products := []*domain.Product{{ID: 1, Code: "ML86", Name: "86 Diamonds", Price: decimal.RequireFromString("20000")}}
		mockService.EXPECT().ListProducts(mock.Anything).Return(products, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()

		handler.ListProducts(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var result []map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		require.Len(t, result, 1)
	})

	t.Run("Empty catalog", func(t *testing.T) {
		mockService.EXPECT().ListProducts(mock.Anything).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()

		handler.ListProducts(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestOrdersHandler_PlaceOrder(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	handler := NewOrdersHandler(mockService, zap.NewNop())

	body := `{"service":"ML86","customer_data":{"user_id":"12345","zone_id":"678"},"payment_method":"gateway"}`

	t.Run("Guest order", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, mock.MatchedBy(func(in domain.PlaceOrderInput) bool {
			return in.UserID == nil &&
				in.PaymentMethod == domain.PaymentMethodGateway &&
				len(in.Items) == 1 && in.Items[0].ProductCode == "ML86" && in.Items[0].Quantity == 1 &&
				in.CustomerData["user_id"] == "12345"
		})).Return(&domain.PlaceOrderResult{
			OrderNumber: "TU-20260101-000001-5",
			Status:      domain.OrderStatusWaitingPayment,
			Message:     "Waiting for payment",
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.PlaceOrder(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var result domain.PlaceOrderResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, "TU-20260101-000001-5", result.OrderNumber)
		assert.Equal(t, domain.OrderStatusWaitingPayment, result.Status)
	})

	t.Run("Logged in user with items", func(t *testing.T) {
		itemsBody := `{"items":[{"service":"ML86","quantity":2},{"service":"ML172","quantity":1}],"customer_data":{"user_id":"1","zone_id":"2"}}`
		mockService.EXPECT().PlaceOrder(mock.Anything, mock.MatchedBy(func(in domain.PlaceOrderInput) bool {
			return in.UserID != nil && *in.UserID == 7 && len(in.Items) == 2 && in.Items[0].Quantity == 2
		})).Return(&domain.PlaceOrderResult{OrderNumber: "TU-1", Status: domain.OrderStatusProcessing}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(itemsBody))
		w := httptest.NewRecorder()

		handler.PlaceOrder(w, withUser(req, 7, domain.RoleCustomer))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Insufficient stock returns order number", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, mock.Anything).Return(&domain.PlaceOrderResult{
			OrderNumber: "TU-2",
			Status:      domain.OrderStatusFailed,
			Message:     "Insufficient stock",
		}, domain.ErrInsufficientStock).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.PlaceOrder(w, req)
		require.Equal(t, http.StatusConflict, w.Code)

		var result domain.PlaceOrderResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, "TU-2", result.OrderNumber)
		assert.Equal(t, domain.OrderStatusFailed, result.Status)
	})

	t.Run("Validation error", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
			Return(nil, domain.NewValidationError("customer_data.user_id", "required")).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.PlaceOrder(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, mock.Anything).Return(nil, domain.ErrInsufficientBalance).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.PlaceOrder(w, withUser(req, 7, domain.RoleCustomer))
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(`{`))
		w := httptest.NewRecorder()

		handler.PlaceOrder(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrdersHandler_GetOrderStatus(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	handler := NewOrdersHandler(mockService, zap.NewNop())

	t.Run("Found", func(t *testing.T) {
		mockService.EXPECT().GetOrderStatus(mock.Anything, "TU-1").Return(&domain.OrderStatusView{
			OrderNumber: "TU-1",
			Status:      domain.OrderStatusSuccess,
		}, nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/orders/TU-1", nil), "number", "TU-1")
		w := httptest.NewRecorder()

		handler.GetOrderStatus(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"SUCCESS"`)
		assert.NotContains(t, w.Body.String(), "notes")
	})

	t.Run("Not found", func(t *testing.T) {
		mockService.EXPECT().GetOrderStatus(mock.Anything, "TU-404").Return(nil, domain.ErrOrderNotFound).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/orders/TU-404", nil), "number", "TU-404")
		w := httptest.NewRecorder()

		handler.GetOrderStatus(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrdersHandler_GetUserOrders(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	handler := NewOrdersHandler(mockService, zap.NewNop())

	t.Run("Hides notes", func(t *testing.T) {
		orders := []*domain.Order{{Number: "TU-1", Status: domain.OrderStatusFailed, Notes: "provider timeout"}}
		mockService.EXPECT().GetUserOrders(mock.Anything, int64(1)).Return(orders, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/orders", nil)
		w := httptest.NewRecorder()

		handler.GetUserOrders(w, withUser(req, 1, domain.RoleCustomer))
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "provider timeout")
	})

	t.Run("No orders", func(t *testing.T) {
		mockService.EXPECT().GetUserOrders(mock.Anything, int64(1)).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/orders", nil)
		w := httptest.NewRecorder()

		handler.GetUserOrders(w, withUser(req, 1, domain.RoleCustomer))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user/orders", nil)
		w := httptest.NewRecorder()

		handler.GetUserOrders(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestBalanceHandler(t *testing.T) {
	mockService := domainmocks.NewBalanceServiceMock(t)
	handler := NewBalanceHandler(mockService, zap.NewNop())

	t.Run("Balance", func(t *testing.T) {
		balance := &domain.Balance{Current: decimal.RequireFromString("150000.50")}
		mockService.EXPECT().GetBalance(mock.Anything, int64(1)).Return(balance, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
		w := httptest.NewRecorder()

		handler.GetBalance(w, withUser(req, 1, domain.RoleCustomer))
		require.Equal(t, http.StatusOK, w.Code)

		var result domain.Balance
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.True(t, balance.Current.Equal(result.Current))
	})

	t.Run("Balance unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
		w := httptest.NewRecorder()

		handler.GetBalance(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Transactions", func(t *testing.T) {
		transactions := []*domain.Transaction{{Type: domain.TransactionTypePurchase, Amount: decimal.RequireFromString("-20000")}}
		mockService.EXPECT().GetTransactions(mock.Anything, int64(1)).Return(transactions, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/transactions", nil)
		w := httptest.NewRecorder()

		handler.GetTransactions(w, withUser(req, 1, domain.RoleCustomer))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"PURCHASE"`)
	})

	t.Run("No transactions", func(t *testing.T) {
		mockService.EXPECT().GetTransactions(mock.Anything, int64(1)).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/user/transactions", nil)
		w := httptest.NewRecorder()

		handler.GetTransactions(w, withUser(req, 1, domain.RoleCustomer))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestWebhookHandler_Provider(t *testing.T) {
	reconcile := domainmocks.NewReconcileServiceMock(t)
	payment := domainmocks.NewPaymentServiceMock(t)
	handler := NewWebhookHandler(reconcile, payment, zap.NewNop())

	body := `{"data":{"trxid":"VIP1","status":"success"}}`

	tests := []struct {
		name       string
		result     *domain.WebhookResult
		err        error
		wantStatus int
	}{
		{name: "Applied", result: &domain.WebhookResult{Success: true, Message: "Order status updated"}, wantStatus: http.StatusOK},
		{name: "Bad shape", err: domain.NewValidationError("trxid", "required"), wantStatus: http.StatusBadRequest},
		{name: "Bad signature", err: domain.ErrInvalidSignature, wantStatus: http.StatusUnauthorized},
		{name: "Internal error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reconcile.EXPECT().HandleWebhook(mock.Anything, []byte(body), "sig").Return(tt.result, tt.err).Once()

			req := httptest.NewRequest(http.MethodPost, "/api/webhooks/provider", bytes.NewBufferString(body))
			req.Header.Set(SignatureHeader, "sig")
			w := httptest.NewRecorder()

			handler.Provider(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"success":true,"message":"Order status updated"}`, w.Body.String())
			}
		})
	}
}

func TestWebhookHandler_Payment(t *testing.T) {
	reconcile := domainmocks.NewReconcileServiceMock(t)
	payment := domainmocks.NewPaymentServiceMock(t)
	handler := NewWebhookHandler(reconcile, payment, zap.NewNop())

	body := `{"order_number":"TU-1","transaction_status":"settlement","gross_amount":"20000"}`
	payment.EXPECT().HandleNotification(mock.Anything, []byte(body), "").
		Return(&domain.WebhookResult{Success: true, Message: "Payment settled"}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payment", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	handler.Payment(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Payment settled")
}

func TestAdminHandler_Reconcile(t *testing.T) {
	adminService := domainmocks.NewAdminServiceMock(t)
	reconcile := domainmocks.NewReconcileServiceMock(t)
	orders := domainmocks.NewOrderServiceMock(t)
	handler := NewAdminHandler(adminService, reconcile, orders, zap.NewNop())

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/reconcile", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		handler.Reconcile(w, req)
		return w
	}

	t.Run("Sync all", func(t *testing.T) {
		reconcile.EXPECT().SyncAll(mock.Anything).Return(&domain.SyncStats{Processed: 3, Updated: 1}, nil).Once()

		w := post(`{"action":"sync-all"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"processed":3`)
	})

	t.Run("Sync one", func(t *testing.T) {
		reconcile.EXPECT().SyncOne(mock.Anything, "TU-1").Return(&domain.SyncStats{Processed: 1}, nil).Once()

		w := post(`{"action":"sync-one","order_number":"TU-1"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Sync one without number", func(t *testing.T) {
		w := post(`{"action":"sync-one"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Sync one unknown order", func(t *testing.T) {
		reconcile.EXPECT().SyncOne(mock.Anything, "TU-404").Return(nil, domain.ErrOrderNotFound).Once()

		w := post(`{"action":"sync-one","order_number":"TU-404"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Forced cleanup", func(t *testing.T) {
		reconcile.EXPECT().Cleanup(mock.Anything, true).Return(&domain.CleanupResult{Ran: true, Deleted: 5}, nil).Once()

		w := post(`{"action":"cleanup","force":true}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":5`)
	})

	t.Run("Stats", func(t *testing.T) {
		reconcile.EXPECT().Stats(mock.Anything).Return(&domain.ReconcileStats{CallbacksTotal: 10}, nil).Once()

		w := post(`{"action":"stats"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Recover stale orders", func(t *testing.T) {
		reconcile.EXPECT().RecoverStale(mock.Anything).Return(&domain.RecoverStats{Interrupted: 2, Expired: 1}, nil).Once()

		w := post(`{"action":"recover"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"interrupted":2`)
		assert.Contains(t, w.Body.String(), `"expired":1`)
	})

	t.Run("Unknown action", func(t *testing.T) {
		w := post(`{"action":"purge"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandler_Orders(t *testing.T) {
	adminService := domainmocks.NewAdminServiceMock(t)
	reconcile := domainmocks.NewReconcileServiceMock(t)
	orders := domainmocks.NewOrderServiceMock(t)
	handler := NewAdminHandler(adminService, reconcile, orders, zap.NewNop())

	t.Run("Detail shows notes", func(t *testing.T) {
		orders.EXPECT().GetOrderDetail(mock.Anything, "TU-1").
			Return(&domain.Order{Number: "TU-1", Status: domain.OrderStatusFailed, Notes: "provider timeout"}, nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/admin/orders/TU-1", nil), "number", "TU-1")
		w := httptest.NewRecorder()

		handler.GetOrder(w, withUser(req, 99, domain.RoleAdmin))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "provider timeout")
	})

	t.Run("Refund", func(t *testing.T) {
		adminService.EXPECT().Refund(mock.Anything, "TU-1", int64(99)).
			Return(&domain.Order{Number: "TU-1", Status: domain.OrderStatusRefunded}, nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/admin/orders/TU-1/refund", nil), "number", "TU-1")
		w := httptest.NewRecorder()

		handler.Refund(w, withUser(req, 99, domain.RoleAdmin))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"REFUNDED"`)
	})

	t.Run("Refund not settled", func(t *testing.T) {
		adminService.EXPECT().Refund(mock.Anything, "TU-2", int64(99)).Return(nil, domain.ErrPaymentNotSettled).Once()

		req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/admin/orders/TU-2/refund", nil), "number", "TU-2")
		w := httptest.NewRecorder()

		handler.Refund(w, withUser(req, 99, domain.RoleAdmin))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Override status", func(t *testing.T) {
		adminService.EXPECT().OverrideStatus(mock.Anything, "TU-1", domain.OrderStatusSuccess, "confirmed by provider support", int64(99)).
			Return(&domain.Order{Number: "TU-1", Status: domain.OrderStatusSuccess}, nil).Once()

		body := `{"status":"success","note":"confirmed by provider support"}`
		req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/admin/orders/TU-1/status", bytes.NewBufferString(body)), "number", "TU-1")
		w := httptest.NewRecorder()

		handler.OverrideStatus(w, withUser(req, 99, domain.RoleAdmin))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Override from final status", func(t *testing.T) {
		adminService.EXPECT().OverrideStatus(mock.Anything, "TU-3", domain.OrderStatusProcessing, "", int64(99)).
			Return(nil, domain.ErrInvalidTransition).Once()

		body := `{"status":"PROCESSING"}`
		req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/admin/orders/TU-3/status", bytes.NewBufferString(body)), "number", "TU-3")
		w := httptest.NewRecorder()

		handler.OverrideStatus(w, withUser(req, 99, domain.RoleAdmin))
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAdminHandler_Stock(t *testing.T) {
	adminService := domainmocks.NewAdminServiceMock(t)
	reconcile := domainmocks.NewReconcileServiceMock(t)
	orders := domainmocks.NewOrderServiceMock(t)
	handler := NewAdminHandler(adminService, reconcile, orders, zap.NewNop())

	t.Run("Adjust", func(t *testing.T) {
		entry := &domain.StockHistory{ProductID: 5, Type: domain.StockChangeAdjust, StockBefore: 3, StockAfter: 10, Delta: 7}
		adminService.EXPECT().AdjustStock(mock.Anything, int64(5), 10, "restock", int64(99)).Return(entry, nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/admin/products/5/stock", bytes.NewBufferString(`{"stock":10,"reason":"restock"}`)), "id", "5")
		w := httptest.NewRecorder()

		handler.AdjustStock(w, withUser(req, 99, domain.RoleAdmin))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"stock_after":10`)
	})

	t.Run("Adjust without stock", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/admin/products/5/stock", bytes.NewBufferString(`{"reason":"restock"}`)), "id", "5")
		w := httptest.NewRecorder()

		handler.AdjustStock(w, withUser(req, 99, domain.RoleAdmin))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid product id", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/admin/products/abc/stock-history", nil), "id", "abc")
		w := httptest.NewRecorder()

		handler.StockHistory(w, withUser(req, 99, domain.RoleAdmin))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("History", func(t *testing.T) {
		adminService.EXPECT().StockHistory(mock.Anything, int64(5), 20).
			Return([]*domain.StockHistory{{ProductID: 5, Type: domain.StockChangeReserve, Delta: -1}}, nil).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/admin/products/5/stock-history?limit=20", nil), "id", "5")
		w := httptest.NewRecorder()

		handler.StockHistory(w, withUser(req, 99, domain.RoleAdmin))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"RESERVE"`)
	})
}
