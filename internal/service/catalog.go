package service

import (
	"context"
	"fmt"

	"github.com/avc/topup-storefront/internal/domain"
)

// CatalogService реализует domain.CatalogService
type CatalogService struct {
	products domain.ProductRepository
}

// NewCatalogService создает новый CatalogService
func NewCatalogService(products domain.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// ListProducts возвращает активные товары каталога
func (s *CatalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.products.ListActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to list products: %w", err)
	}

	return products, nil
}
