package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/topup-storefront/internal/domain"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	_ = writeJSON(w, status, errorResponse{Error: message})
}

// errorStatus сопоставляет доменную ошибку с HTTP статусом; 0 для неизвестных ошибок
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidSignature):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserExists), errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrRefundNotAllowed),
		errors.Is(err, domain.ErrPaymentNotSettled):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrProductInactive):
		return http.StatusUnprocessableEntity
	}
	return 0
}

// writeServiceError пишет ответ для ошибки сервиса; неизвестные ошибки логируются и скрываются
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if status := errorStatus(err); status != 0 {
		writeError(w, status, err.Error())
		return
	}
	logger.Error(msg, append(fields, zap.Error(err))...)
	writeError(w, http.StatusInternalServerError, "Internal Server Error")
}
