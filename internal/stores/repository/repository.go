// Package repository persists store profiles in Postgres.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"staysoft_backend/platform/apperr"
)

const storeNotFoundMessage = "store not found"

// Store is a tenant's profile row.
type Store struct {
	ID                  uuid.UUID
	Slug                string
	StoreName           string
	Description         string
	Phone               string
	LogoURL             string
	PrimaryColor        string
	NotifyHotLeads      bool
	WhatsAppDeviceToken string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// UpdateStoreParams carries a partial profile update; nil fields keep their
// stored value.
type UpdateStoreParams struct {
	ID                  uuid.UUID
	Slug                *string
	StoreName           *string
	Description         *string
	Phone               *string
	LogoURL             *string
	PrimaryColor        *string
	NotifyHotLeads      *bool
	WhatsAppDeviceToken *string
}

const storeColumns = `id, slug, store_name, description, phone, logo_url, primary_color, notify_hot_leads, whatsapp_device_token, created_at, updated_at`

// Repo implements the stores repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new stores repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

// GetByID retrieves a store profile.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Store, error) {
	query := fmt.Sprintf(`SELECT %s FROM stores WHERE id = $1`, storeColumns)
	return r.queryOne(ctx, query, id)
}

// GetBySlug retrieves a store profile by its public slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (Store, error) {
	query := fmt.Sprintf(`SELECT %s FROM stores WHERE slug = $1`, storeColumns)
	return r.queryOne(ctx, query, slug)
}

// GetByDeviceToken retrieves the store bound to a WhatsApp device token.
func (r *Repo) GetByDeviceToken(ctx context.Context, token string) (Store, error) {
	query := fmt.Sprintf(`SELECT %s FROM stores WHERE whatsapp_device_token = $1`, storeColumns)
	return r.queryOne(ctx, query, token)
}

// Update applies a partial profile update; nil params keep the stored value.
func (r *Repo) Update(ctx context.Context, params UpdateStoreParams) (Store, error) {
	query := fmt.Sprintf(`
		UPDATE stores
		SET slug = COALESCE($2, slug),
			store_name = COALESCE($3, store_name),
			description = COALESCE($4, description),
			phone = COALESCE($5, phone),
			logo_url = COALESCE($6, logo_url),
			primary_color = COALESCE($7, primary_color),
			notify_hot_leads = COALESCE($8, notify_hot_leads),
			whatsapp_device_token = COALESCE($9, whatsapp_device_token),
			updated_at = now()
		WHERE id = $1
		RETURNING %s`, storeColumns)

	store, err := r.scanOne(r.pool.QueryRow(ctx, query,
		params.ID, params.Slug, params.StoreName, params.Description, params.Phone,
		params.LogoURL, params.PrimaryColor, params.NotifyHotLeads, params.WhatsAppDeviceToken,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Store{}, apperr.NotFound(storeNotFoundMessage)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Store{}, apperr.Conflict("slug already in use")
		}
		return Store{}, fmt.Errorf("update store: %w", err)
	}
	return store, nil
}

func (r *Repo) queryOne(ctx context.Context, query string, arg any) (Store, error) {
	store, err := r.scanOne(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Store{}, apperr.NotFound(storeNotFoundMessage)
		}
		return Store{}, fmt.Errorf("get store: %w", err)
	}
	return store, nil
}

func (r *Repo) scanOne(row pgx.Row) (Store, error) {
	var store Store
	if err := row.Scan(
		&store.ID, &store.Slug, &store.StoreName, &store.Description, &store.Phone,
		&store.LogoURL, &store.PrimaryColor, &store.NotifyHotLeads, &store.WhatsAppDeviceToken,
		&store.CreatedAt, &store.UpdatedAt,
	); err != nil {
		return Store{}, err
	}
	return store, nil
}
