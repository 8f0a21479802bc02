package handlers

import (
	"net/http"

	"github.com/avc/topup-storefront/internal/domain"
	"go.uber.org/zap"
)

// CatalogHandler отдает активный каталог
type CatalogHandler struct {
	catalogService domain.CatalogService
	logger         *zap.Logger
}

func NewCatalogHandler(catalogService domain.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to list products")
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}

	if err := writeJSON(w, http.StatusOK, products); err != nil {
		h.logger.Error("failed to encode products response", zap.Error(err))
	}
}
