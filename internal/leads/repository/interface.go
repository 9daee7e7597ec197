package repository

import (
	"context"

	"github.com/google/uuid"

	"staysoft_backend/internal/leads/domain"
)

// Repository is the persistence contract for leads. Implementations must
// return apperr.NotFound for missing rows and apperr.Conflict when an insert
// violates the (store_id, phone) uniqueness constraint.
type Repository interface {
	// GetByPhone looks up a lead by its business key.
	GetByPhone(ctx context.Context, storeID uuid.UUID, phone string) (domain.Lead, error)
	// GetByID looks up a lead by ID, scoped to a store.
	GetByID(ctx context.Context, id uuid.UUID, storeID uuid.UUID) (domain.Lead, error)
	// ListByStore returns all leads for a store ordered by updated_at descending.
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]domain.Lead, error)
	// Create inserts a new lead.
	Create(ctx context.Context, params CreateParams) (domain.Lead, error)
	// Update replaces the mutable fields of a lead and refreshes updated_at.
	Update(ctx context.Context, lead domain.Lead) (domain.Lead, error)
	// Delete removes a lead, returning the removed record.
	Delete(ctx context.Context, id uuid.UUID, storeID uuid.UUID) (domain.Lead, error)
}

// CreateParams carries the fields set at first contact.
type CreateParams struct {
	StoreID     uuid.UUID
	Phone       string
	Name        *string
	LastMessage string
	IsHot       bool
	Status      domain.Status
}
