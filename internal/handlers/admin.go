package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/avc/topup-storefront/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Действия ручной и плановой сверки
const (
	actionSyncAll = "sync-all"
	actionSyncOne = "sync-one"
	actionCleanup = "cleanup"
	actionStats   = "stats"
	actionRecover = "recover"
)

// AdminHandler операции администратора и точка входа для внешнего планировщика
type AdminHandler struct {
	adminService     domain.AdminService
	reconcileService domain.ReconcileService
	orderService     domain.OrderService
	logger           *zap.Logger
}

func NewAdminHandler(
	adminService domain.AdminService,
	reconcileService domain.ReconcileService,
	orderService domain.OrderService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		adminService:     adminService,
		reconcileService: reconcileService,
		orderService:     orderService,
		logger:           logger,
	}
}

type reconcileRequest struct {
	Action      string `json:"action"`
	OrderNumber string `json:"order_number"`
	Force       bool   `json:"force"`
}

func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req reconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	var (
		result any
		err    error
	)
	switch req.Action {
	case actionSyncAll:
		result, err = h.reconcileService.SyncAll(r.Context())
	case actionSyncOne:
		if strings.TrimSpace(req.OrderNumber) == "" {
			writeError(w, http.StatusBadRequest, "order_number is required")
			return
		}
		result, err = h.reconcileService.SyncOne(r.Context(), strings.TrimSpace(req.OrderNumber))
	case actionCleanup:
		result, err = h.reconcileService.Cleanup(r.Context(), req.Force)
	case actionStats:
		result, err = h.reconcileService.Stats(r.Context())
	case actionRecover:
		result, err = h.reconcileService.RecoverStale(r.Context())
	default:
		writeError(w, http.StatusBadRequest, "unknown action")
		return
	}
	if err != nil {
		writeServiceError(w, h.logger, err, "reconcile action failed", zap.String("action", req.Action))
		return
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("failed to encode reconcile response", zap.Error(err))
	}
}

func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	order, err := h.orderService.GetOrderDetail(r.Context(), number)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get order detail", zap.String("order", number))
		return
	}

	if err := writeJSON(w, http.StatusOK, order); err != nil {
		h.logger.Error("failed to encode order response", zap.Error(err))
	}
}

func (h *AdminHandler) Refund(w http.ResponseWriter, r *http.Request) {
	adminID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	number := chi.URLParam(r, "number")

	order, err := h.adminService.Refund(r.Context(), number, adminID)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to refund order", zap.String("order", number))
		return
	}

	if err := writeJSON(w, http.StatusOK, order); err != nil {
		h.logger.Error("failed to encode order response", zap.Error(err))
	}
}

type overrideStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

func (h *AdminHandler) OverrideStatus(w http.ResponseWriter, r *http.Request) {
	adminID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	number := chi.URLParam(r, "number")

	var req overrideStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	status := domain.OrderStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	order, err := h.adminService.OverrideStatus(r.Context(), number, status, req.Note, adminID)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to override order status", zap.String("order", number))
		return
	}

	if err := writeJSON(w, http.StatusOK, order); err != nil {
		h.logger.Error("failed to encode order response", zap.Error(err))
	}
}

type adjustStockRequest struct {
	Stock  *int   `json:"stock"`
	Reason string `json:"reason"`
}

func (h *AdminHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	adminID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	productID, ok := productIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req adjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Stock == nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	entry, err := h.adminService.AdjustStock(r.Context(), productID, *req.Stock, req.Reason, adminID)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to adjust stock", zap.Int64("product_id", productID))
		return
	}

	if err := writeJSON(w, http.StatusOK, entry); err != nil {
		h.logger.Error("failed to encode stock response", zap.Error(err))
	}
}

func (h *AdminHandler) StockHistory(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	history, err := h.adminService.StockHistory(r.Context(), productID, limit)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get stock history", zap.Int64("product_id", productID))
		return
	}
	if history == nil {
		history = []*domain.StockHistory{}
	}

	if err := writeJSON(w, http.StatusOK, history); err != nil {
		h.logger.Error("failed to encode stock history response", zap.Error(err))
	}
}

func productIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
