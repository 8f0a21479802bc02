package service

import (
	"context"
	"fmt"

	"github.com/avc/topup-storefront/internal/domain"
)

// BalanceService предоставляет чтение баланса и журнала операций
type BalanceService struct {
	transactionRepo domain.TransactionRepository
}

// NewBalanceService создает новый BalanceService
func NewBalanceService(transactionRepo domain.TransactionRepository) *BalanceService {
	return &BalanceService{
		transactionRepo: transactionRepo,
	}
}

// GetBalance получает баланс пользователя
func (s *BalanceService) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	balance, err := s.transactionRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("balance service: failed to get balance for user %d: %w", userID, err)
	}

	return balance, nil
}

// GetTransactions получает историю операций по балансу пользователя
func (s *BalanceService) GetTransactions(ctx context.Context, userID int64) ([]*domain.Transaction, error) {
	transactions, err := s.transactionRepo.GetTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("balance service: failed to get transactions for user %d: %w", userID, err)
	}

	return transactions, nil
}
