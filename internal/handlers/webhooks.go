package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/avc/topup-storefront/internal/domain"
	"go.uber.org/zap"
)

// SignatureHeader заголовок с HMAC подписью тела уведомления
const SignatureHeader = "X-Webhook-Signature"

const maxWebhookBody = 1 << 20

// WebhookHandler принимает уведомления провайдера и платежного шлюза
type WebhookHandler struct {
	reconcileService domain.ReconcileService
	paymentService   domain.PaymentService
	logger           *zap.Logger
}

func NewWebhookHandler(reconcileService domain.ReconcileService, paymentService domain.PaymentService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		reconcileService: reconcileService,
		paymentService:   paymentService,
		logger:           logger,
	}
}

func (h *WebhookHandler) Provider(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "provider", h.reconcileService.HandleWebhook)
}

func (h *WebhookHandler) Payment(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "payment", h.paymentService.HandleNotification)
}

type webhookFunc func(ctx context.Context, body []byte, signature string) (*domain.WebhookResult, error)

func (h *WebhookHandler) handle(w http.ResponseWriter, r *http.Request, source string, fn webhookFunc) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	result, err := fn(r.Context(), body, r.Header.Get(SignatureHeader))
	if err != nil {
		if status := errorStatus(err); status != 0 {
			h.logger.Warn("webhook rejected", zap.String("source", source), zap.Error(err))
			_ = writeJSON(w, status, domain.WebhookResult{Success: false, Message: err.Error()})
			return
		}
		h.logger.Error("failed to handle webhook", zap.String("source", source), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("failed to encode webhook response", zap.Error(err))
	}
}
