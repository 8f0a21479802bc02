package vipreseller

import (
	"strings"

	"github.com/avc/topup-storefront/internal/domain"
)

var statusVocabulary = map[string]domain.OrderStatus{
	"success":   domain.OrderStatusSuccess,
	"completed": domain.OrderStatusSuccess,
	"delivered": domain.OrderStatusSuccess,
	"sukses":    domain.OrderStatusSuccess,

	"failed":   domain.OrderStatusFailed,
	"error":    domain.OrderStatusFailed,
	"rejected": domain.OrderStatusFailed,
	"gagal":    domain.OrderStatusFailed,

	"cancelled": domain.OrderStatusCancelled,
	"canceled":  domain.OrderStatusCancelled,
	"cancel":    domain.OrderStatusCancelled,
	"batal":     domain.OrderStatusCancelled,
	"refund":    domain.OrderStatusCancelled,
	"refunded":  domain.OrderStatusCancelled,
}

// MapStatus переводит статус провайдера во внутренний статус заказа.
// Неизвестные и промежуточные статусы (pending, waiting, processing) дают PROCESSING.
func MapStatus(raw string) domain.OrderStatus {
	if status, ok := statusVocabulary[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return status
	}
	return domain.OrderStatusProcessing
}
