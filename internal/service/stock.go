package service

import (
	"context"
	"fmt"

	"github.com/avc/topup-storefront/internal/domain"
	"go.uber.org/zap"
)

// StockLedger ведет остатки LIMITED товаров и журнал их изменений.
// Каждое изменение остатка и его запись в журнале выполняются в одной транзакции.
type StockLedger struct {
	tx       domain.Transactor
	products domain.ProductRepository
	history  domain.StockHistoryRepository
	logger   *zap.Logger
}

// NewStockLedger создает новый StockLedger
func NewStockLedger(
	tx domain.Transactor,
	products domain.ProductRepository,
	history domain.StockHistoryRepository,
	logger *zap.Logger,
) *StockLedger {
	return &StockLedger{
		tx:       tx,
		products: products,
		history:  history,
		logger:   logger,
	}
}

// Reserve списывает quantity единиц товара под заказ.
// Для UNLIMITED товара всегда успешен и ничего не меняет.
// false означает нехватку остатка; в этом случае остаток не изменен.
func (l *StockLedger) Reserve(ctx context.Context, productID int64, quantity int, reason string) (bool, error) {
	if quantity < 1 {
		return false, domain.NewValidationError("quantity", "must be at least 1")
	}

	reserved := false
	err := l.tx.WithinTx(ctx, func(ctx context.Context) error {
		after, ok, err := l.products.DecrementStock(ctx, productID, quantity)
		if err != nil {
			return err
		}
		if ok {
			reserved = true
			return l.history.CreateStockHistory(ctx, &domain.StockHistory{
				ProductID:   productID,
				Type:        domain.StockChangeReserve,
				Delta:       -quantity,
				StockBefore: after + quantity,
				StockAfter:  after,
				Reason:      reason,
			})
		}

		product, err := l.products.GetProductByID(ctx, productID)
		if err != nil {
			return err
		}
		reserved = !product.Limited()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("stock ledger: failed to reserve %d of product %d: %w", quantity, productID, err)
	}

	return reserved, nil
}

// Restore возвращает quantity единиц товара на остаток.
// Для UNLIMITED товара остаток не меняется, но возврат все равно попадает
// в журнал записью с нулевым delta.
func (l *StockLedger) Restore(ctx context.Context, productID int64, quantity int, reason string, actorID *int64) error {
	if quantity < 1 {
		return nil
	}

	err := l.tx.WithinTx(ctx, func(ctx context.Context) error {
		after, ok, err := l.products.IncrementStock(ctx, productID, quantity)
		if err != nil {
			return err
		}
		entry := &domain.StockHistory{
			ProductID:   productID,
			Type:        domain.StockChangeRestore,
			Delta:       quantity,
			StockBefore: after - quantity,
			StockAfter:  after,
			Reason:      reason,
			ActorID:     actorID,
		}
		if !ok {
			product, err := l.products.GetProductByID(ctx, productID)
			if err != nil {
				return err
			}
			entry.Delta = 0
			entry.StockBefore = product.Stock
			entry.StockAfter = product.Stock
			entry.Reason = fmt.Sprintf("%s (unlimited, %d not counted)", reason, quantity)
		}
		return l.history.CreateStockHistory(ctx, entry)
	})
	if err != nil {
		return fmt.Errorf("stock ledger: failed to restore %d of product %d: %w", quantity, productID, err)
	}

	return nil
}

// Adjust устанавливает остаток товара вручную (операция администратора)
func (l *StockLedger) Adjust(ctx context.Context, productID int64, newStock int, reason string, actorID int64) (*domain.StockHistory, error) {
	if newStock < 0 {
		return nil, domain.NewValidationError("stock", "must not be negative")
	}
	if reason == "" {
		return nil, domain.NewValidationError("reason", "required")
	}

	var entry *domain.StockHistory
	err := l.tx.WithinTx(ctx, func(ctx context.Context) error {
		product, err := l.products.LockProduct(ctx, productID)
		if err != nil {
			return err
		}
		if !product.Limited() {
			return domain.NewValidationError("stock_mode", "product is not stock limited")
		}
		if err := l.products.SetStock(ctx, productID, newStock); err != nil {
			return err
		}

		entry = &domain.StockHistory{
			ProductID:   productID,
			Type:        domain.StockChangeAdjust,
			Delta:       newStock - product.Stock,
			StockBefore: product.Stock,
			StockAfter:  newStock,
			Reason:      reason,
			ActorID:     &actorID,
		}
		return l.history.CreateStockHistory(ctx, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("stock ledger: failed to adjust product %d: %w", productID, err)
	}

	l.logger.Info("stock adjusted",
		zap.Int64("product_id", productID),
		zap.Int("before", entry.StockBefore),
		zap.Int("after", entry.StockAfter),
		zap.Int64("actor_id", actorID),
	)
	return entry, nil
}

// History возвращает последние записи журнала остатков товара
func (l *StockLedger) History(ctx context.Context, productID int64, limit int) ([]*domain.StockHistory, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	entries, err := l.history.GetStockHistory(ctx, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("stock ledger: failed to get history of product %d: %w", productID, err)
	}

	return entries, nil
}
