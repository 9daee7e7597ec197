// Package repository persists leads in Postgres.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"staysoft_backend/internal/leads/domain"
	"staysoft_backend/platform/apperr"
)

const (
	leadNotFoundMessage = "lead not found"
	leadExistsMessage   = "lead already exists for this phone"

	uniqueViolationCode = "23505"

	leadColumns = `id, store_id, phone, name, last_message, is_hot, interest_subject, status, created_at, updated_at`
)

// Repo implements the leads repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetByPhone looks up a lead by its business key.
func (r *Repo) GetByPhone(ctx context.Context, storeID uuid.UUID, phone string) (domain.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE store_id = $1 AND phone = $2`, leadColumns)
	return r.queryOne(ctx, query, storeID, phone)
}

// GetByID looks up a lead by ID, scoped to a store.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID, storeID uuid.UUID) (domain.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE id = $1 AND store_id = $2`, leadColumns)
	return r.queryOne(ctx, query, id, storeID)
}

// ListByStore returns all leads for a store ordered by updated_at descending.
func (r *Repo) ListByStore(ctx context.Context, storeID uuid.UUID) ([]domain.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE store_id = $1 ORDER BY updated_at DESC`, leadColumns)

	rows, err := r.pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]domain.Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate leads: %w", rows.Err())
	}

	return leads, nil
}

// Create inserts a new lead. A concurrent first contact for the same
// (store_id, phone) pair trips the unique constraint and surfaces as
// apperr.Conflict so the caller can retry as an update.
func (r *Repo) Create(ctx context.Context, params CreateParams) (domain.Lead, error) {
	query := fmt.Sprintf(`
		INSERT INTO leads (store_id, phone, name, last_message, is_hot, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, leadColumns)

	lead, err := r.queryOne(ctx, query,
		params.StoreID, params.Phone, params.Name, params.LastMessage, params.IsHot, params.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.Lead{}, apperr.Conflict(leadExistsMessage)
		}
		return domain.Lead{}, fmt.Errorf("create lead: %w", err)
	}
	return lead, nil
}

// Update replaces the mutable fields of a lead and refreshes updated_at.
func (r *Repo) Update(ctx context.Context, lead domain.Lead) (domain.Lead, error) {
	query := fmt.Sprintf(`
		UPDATE leads
		SET name = $3,
			last_message = $4,
			is_hot = $5,
			interest_subject = $6,
			status = $7,
			updated_at = now()
		WHERE id = $1 AND store_id = $2
		RETURNING %s`, leadColumns)

	updated, err := r.queryOne(ctx, query,
		lead.ID, lead.StoreID, lead.Name, lead.LastMessage, lead.IsHot, lead.InterestSubject, lead.Status,
	)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return domain.Lead{}, err
		}
		return domain.Lead{}, fmt.Errorf("update lead: %w", err)
	}
	return updated, nil
}

// Delete removes a lead, returning the removed record.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID, storeID uuid.UUID) (domain.Lead, error) {
	query := fmt.Sprintf(`DELETE FROM leads WHERE id = $1 AND store_id = $2 RETURNING %s`, leadColumns)

	lead, err := r.queryOne(ctx, query, id, storeID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return domain.Lead{}, err
		}
		return domain.Lead{}, fmt.Errorf("delete lead: %w", err)
	}
	return lead, nil
}

func (r *Repo) queryOne(ctx context.Context, query string, args ...any) (domain.Lead, error) {
	row := r.pool.QueryRow(ctx, query, args...)
	lead, err := scanLead(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return domain.Lead{}, err
	}
	return lead, nil
}

func scanLead(row pgx.Row) (domain.Lead, error) {
	var lead domain.Lead
	var status string
	if err := row.Scan(
		&lead.ID, &lead.StoreID, &lead.Phone, &lead.Name, &lead.LastMessage,
		&lead.IsHot, &lead.InterestSubject, &status, &lead.CreatedAt, &lead.UpdatedAt,
	); err != nil {
		return domain.Lead{}, err
	}
	lead.Status = domain.Status(status)
	return lead, nil
}
