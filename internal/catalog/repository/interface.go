package repository

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for catalog products.
type Repository interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (Product, error)
	UpdateProduct(ctx context.Context, params UpdateProductParams) (Product, error)
	DeleteProduct(ctx context.Context, storeID uuid.UUID, id uuid.UUID) error
	GetProductByID(ctx context.Context, storeID uuid.UUID, id uuid.UUID) (Product, error)
	ListProducts(ctx context.Context, storeID uuid.UUID) ([]Product, error)
	IncrementViews(ctx context.Context, storeID uuid.UUID) error
	IncrementInterest(ctx context.Context, storeID uuid.UUID, id uuid.UUID) error
}
