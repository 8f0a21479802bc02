package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/topup-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, code, name, category, price, stock_mode, stock, active, created_at, updated_at`

// ProductRepository реализует domain.ProductRepository
type ProductRepository struct {
	db DBTX
}

// NewProductRepository создает новый ProductRepository
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	p := &domain.Product{}
	err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Category, &p.Price, &p.StockMode, &p.Stock, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetProductByCode получает товар по коду услуги провайдера
func (r *ProductRepository) GetProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	p, err := scanProduct(conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE code = $1`,
		code,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to get product %q: %w", code, err)
	}

	return p, nil
}

// GetProductByID получает товар по ID
func (r *ProductRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := scanProduct(conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to get product %d: %w", id, err)
	}

	return p, nil
}

// ListActiveProducts возвращает активные товары каталога
func (r *ProductRepository) ListActiveProducts(ctx context.Context) ([]*domain.Product, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE active = TRUE ORDER BY category, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products: %w", err)
	}

	return products, nil
}

// DecrementStock уменьшает остаток одним условным UPDATE.
// Проверка и списание происходят атомарно, поэтому параллельные резервы не уводят остаток в минус.
func (r *ProductRepository) DecrementStock(ctx context.Context, productID int64, quantity int) (int, bool, error) {
	var stockAfter int
	err := conn(ctx, r.db).QueryRow(ctx,
		`UPDATE products
		 SET stock = stock - $2, updated_at = NOW()
		 WHERE id = $1 AND stock_mode = 'LIMITED' AND stock >= $2
		 RETURNING stock`,
		productID, quantity,
	).Scan(&stockAfter)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		if isCheckViolation(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("repository: failed to decrement stock for product %d: %w", productID, err)
	}

	return stockAfter, true, nil
}

// IncrementStock возвращает остаток LIMITED товару
func (r *ProductRepository) IncrementStock(ctx context.Context, productID int64, quantity int) (int, bool, error) {
	var stockAfter int
	err := conn(ctx, r.db).QueryRow(ctx,
		`UPDATE products
		 SET stock = stock + $2, updated_at = NOW()
		 WHERE id = $1 AND stock_mode = 'LIMITED'
		 RETURNING stock`,
		productID, quantity,
	).Scan(&stockAfter)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("repository: failed to increment stock for product %d: %w", productID, err)
	}

	return stockAfter, true, nil
}

// LockProduct читает товар с блокировкой строки до конца транзакции
func (r *ProductRepository) LockProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	p, err := scanProduct(conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`,
		productID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to lock product %d: %w", productID, err)
	}

	return p, nil
}

// SetStock устанавливает остаток напрямую
func (r *ProductRepository) SetStock(ctx context.Context, productID int64, stock int) error {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE products SET stock = $2, updated_at = NOW() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to set stock for product %d: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}
