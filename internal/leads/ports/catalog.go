// Package ports declares the collaborator contracts the leads module consumes.
package ports

import (
	"context"

	"github.com/google/uuid"
)

// CatalogItem is the read-only product view used for pipeline valuation.
type CatalogItem struct {
	Name       string
	Model      string
	PriceCents int64
}

// Catalog looks up the items a store currently offers. The funnel stats
// aggregator scans these in the order returned; implementations must preserve
// a stable catalog order because the first substring match wins.
type Catalog interface {
	ListItems(ctx context.Context, storeID uuid.UUID) ([]CatalogItem, error)
}
