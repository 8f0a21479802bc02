package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/avc/topup-storefront/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrdersHandler struct {
	orderService domain.OrderService
	logger       *zap.Logger
}

func NewOrdersHandler(orderService domain.OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// placeOrderRequest тело запроса на заказ: одна позиция через service/quantity
// или несколько через items
type placeOrderRequest struct {
	Service       string                  `json:"service"`
	Quantity      int                     `json:"quantity"`
	Items         []domain.OrderItemInput `json:"items"`
	CustomerData  map[string]string       `json:"customer_data"`
	PaymentMethod string                  `json:"payment_method"`
}

func (req placeOrderRequest) items() []domain.OrderItemInput {
	if len(req.Items) > 0 {
		return req.Items
	}
	if req.Service == "" {
		return nil
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return []domain.OrderItemInput{{ProductCode: req.Service, Quantity: quantity}}
}

func (h *OrdersHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	input := domain.PlaceOrderInput{
		Items:         req.items(),
		CustomerData:  req.CustomerData,
		PaymentMethod: domain.PaymentMethod(strings.ToUpper(strings.TrimSpace(req.PaymentMethod))),
	}
	if userID, ok := GetUserID(r.Context()); ok {
		input.UserID = &userID
	}

	result, err := h.orderService.PlaceOrder(r.Context(), input)
	if err != nil {
		// заказ сохранен как FAILED, покупатель получает номер
		if errors.Is(err, domain.ErrInsufficientStock) && result != nil {
			if err := writeJSON(w, http.StatusConflict, result); err != nil {
				h.logger.Error("failed to encode order response", zap.Error(err))
			}
			return
		}
		writeServiceError(w, h.logger, err, "failed to place order")
		return
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("failed to encode order response", zap.Error(err))
	}
}

func (h *OrdersHandler) GetOrderStatus(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	view, err := h.orderService.GetOrderStatus(r.Context(), number)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get order status", zap.String("order", number))
		return
	}

	if err := writeJSON(w, http.StatusOK, view); err != nil {
		h.logger.Error("failed to encode order status response", zap.Error(err))
	}
}

func (h *OrdersHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orderService.GetUserOrders(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get orders", zap.Int64("user_id", userID))
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	// покупатель не видит внутренние заметки
	for _, order := range orders {
		order.Notes = ""
	}
	if err := writeJSON(w, http.StatusOK, orders); err != nil {
		h.logger.Error("failed to encode orders response", zap.Error(err))
	}
}
