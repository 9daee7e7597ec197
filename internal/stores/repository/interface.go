package repository

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for store profiles.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Store, error)
	GetBySlug(ctx context.Context, slug string) (Store, error)
	GetByDeviceToken(ctx context.Context, token string) (Store, error)
	Update(ctx context.Context, params UpdateStoreParams) (Store, error)
}
