package domain

import (
	"errors"
	"fmt"
)

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)

// Ошибки каталога и склада
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductInactive   = errors.New("product is not active")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Ошибки заказов
var (
	ErrValidation        = errors.New("validation failed")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderExists       = errors.New("order already exists")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// Ошибки провайдера и сверки
var (
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrProviderTimeout     = errors.New("provider timeout")
	ErrProviderRejected    = errors.New("provider rejected order")
	ErrUnmatchedCallback   = errors.New("callback does not match any order")
	ErrInvalidSignature    = errors.New("invalid signature")
)

// Ошибки оплаты и баланса
var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPaymentMismatch     = errors.New("payment amount mismatch")
	ErrPaymentNotSettled   = errors.New("payment is not settled")
	ErrRefundNotAllowed    = errors.New("refund not allowed")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// ValidationError описывает ошибку конкретного поля входных данных
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError создает ошибку валидации поля
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
