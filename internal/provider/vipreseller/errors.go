package vipreseller

import (
	"fmt"
	"time"

	"github.com/avc/topup-storefront/internal/domain"
)

// RateLimitError представляет ошибку превышения лимита запросов
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// Unwrap относит ограничение частоты к временной недоступности провайдера
func (e *RateLimitError) Unwrap() error {
	return domain.ErrProviderUnavailable
}

// NewRateLimitError создает новую ошибку rate limit
func NewRateLimitError(retryAfter time.Duration) *RateLimitError {
	return &RateLimitError{RetryAfter: retryAfter}
}
