// Package adapters bridges the leads module to sibling bounded contexts
// without importing their internals directly into the service layer.
package adapters

import (
	"context"

	"github.com/google/uuid"

	catalogservice "staysoft_backend/internal/catalog/service"
	"staysoft_backend/internal/leads/ports"
)

// CatalogReader adapts the catalog service to the leads Catalog port.
type CatalogReader struct {
	catalog *catalogservice.Service
}

// NewCatalogReader creates a catalog reader backed by the catalog module.
func NewCatalogReader(catalog *catalogservice.Service) *CatalogReader {
	return &CatalogReader{catalog: catalog}
}

var _ ports.Catalog = (*CatalogReader)(nil)

// ListItems returns the store's catalog in listing order. The funnel
// valuation depends on this order being stable between calls.
func (r *CatalogReader) ListItems(ctx context.Context, storeID uuid.UUID) ([]ports.CatalogItem, error) {
	products, err := r.catalog.List(ctx, storeID)
	if err != nil {
		return nil, err
	}

	items := make([]ports.CatalogItem, len(products))
	for i, product := range products {
		items[i] = ports.CatalogItem{
			Name:       product.Name,
			Model:      product.Model,
			PriceCents: product.PriceCents,
		}
	}
	return items, nil
}
