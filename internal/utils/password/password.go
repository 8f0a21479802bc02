package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinLength минимальная длина пароля покупателя
	MinLength = 6
	// maxLength ограничение bcrypt на длину входа в байтах
	maxLength = 72
	// DefaultCost стоимость хеширования по умолчанию
	DefaultCost = bcrypt.DefaultCost
)

var (
	// ErrMismatch пароль не соответствует хешу
	ErrMismatch = errors.New("password does not match")
	// ErrPolicy пароль не удовлетворяет требованиям к длине
	ErrPolicy = errors.New("password does not meet policy")
)

// Hasher интерфейс для хеширования паролей
type Hasher interface {
	Hash(password string) (string, error)
	Check(hash, password string) error
}

// BCryptHasher реализация хеширования через bcrypt
type BCryptHasher struct {
	cost int
}

// NewBCryptHasher создает hasher; стоимость вне допустимого диапазона заменяется на bcrypt.DefaultCost
func NewBCryptHasher(cost int) *BCryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BCryptHasher{cost: cost}
}

// Hash проверяет длину пароля и хеширует его
func (h *BCryptHasher) Hash(password string) (string, error) {
	if len(password) < MinLength || len(password) > maxLength {
		return "", fmt.Errorf("%w: length must be between %d and %d", ErrPolicy, MinLength, maxLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Check сравнивает пароль с хешем
func (h *BCryptHasher) Check(hash, password string) error {
	if hash == "" || password == "" {
		return ErrMismatch
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("failed to check password: %w", err)
	}

	return nil
}
