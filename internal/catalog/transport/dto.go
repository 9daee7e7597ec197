// Package transport defines the request/response DTOs for the catalog module.
package transport

import (
	"time"

	"github.com/google/uuid"
)

// CreateProductRequest adds a product to the store catalog.
type CreateProductRequest struct {
	Name           string `json:"name" binding:"required"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	Category       string `json:"category"`
	Condition      string `json:"condition" binding:"required"`
	PriceCents     int64  `json:"priceCents" binding:"required,gt=0"`
	CostPriceCents int64  `json:"costPriceCents" binding:"omitempty,gte=0"`
	Stock          int    `json:"stock" binding:"omitempty,gte=0"`
	Description    string `json:"description"`
}

// UpdateProductRequest partially updates a product; absent fields keep their
// stored value.
type UpdateProductRequest struct {
	Name           *string `json:"name"`
	Brand          *string `json:"brand"`
	Model          *string `json:"model"`
	Category       *string `json:"category"`
	Condition      *string `json:"condition"`
	PriceCents     *int64  `json:"priceCents" binding:"omitempty,gt=0"`
	CostPriceCents *int64  `json:"costPriceCents" binding:"omitempty,gte=0"`
	Stock          *int    `json:"stock" binding:"omitempty,gte=0"`
	Description    *string `json:"description"`
}

// ProductResponse is the outward representation of a product.
type ProductResponse struct {
	ID             uuid.UUID `json:"id"`
	StoreID        uuid.UUID `json:"storeId"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand,omitempty"`
	Model          string    `json:"model,omitempty"`
	Category       string    `json:"category,omitempty"`
	Condition      string    `json:"condition"`
	PriceCents     int64     `json:"priceCents"`
	CostPriceCents int64     `json:"costPriceCents,omitempty"`
	Stock          int       `json:"stock"`
	Description    string    `json:"description,omitempty"`
	Views          int       `json:"views"`
	InterestCount  int       `json:"interestCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PublicProductResponse is the storefront view of a product. Cost price is
// never exposed publicly.
type PublicProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand,omitempty"`
	Model       string    `json:"model,omitempty"`
	Category    string    `json:"category,omitempty"`
	Condition   string    `json:"condition"`
	PriceCents  int64     `json:"priceCents"`
	Stock       int       `json:"stock"`
	Description string    `json:"description,omitempty"`
}
