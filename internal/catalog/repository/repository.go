// Package repository persists catalog products in Postgres.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"staysoft_backend/platform/apperr"
)

const productNotFoundMessage = "product not found"

// Product is a catalog row.
type Product struct {
	ID             uuid.UUID
	StoreID        uuid.UUID
	Name           string
	Brand          string
	Model          string
	Category       string
	Condition      string
	PriceCents     int64
	CostPriceCents int64
	Stock          int
	Description    string
	Views          int
	InterestCount  int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateProductParams carries the fields for a new product.
type CreateProductParams struct {
	StoreID        uuid.UUID
	Name           string
	Brand          string
	Model          string
	Category       string
	Condition      string
	PriceCents     int64
	CostPriceCents int64
	Stock          int
	Description    string
}

// UpdateProductParams carries a partial update; nil fields keep their value.
type UpdateProductParams struct {
	ID             uuid.UUID
	StoreID        uuid.UUID
	Name           *string
	Brand          *string
	Model          *string
	Category       *string
	Condition      *string
	PriceCents     *int64
	CostPriceCents *int64
	Stock          *int
	Description    *string
}

const productColumns = `id, store_id, name, brand, model, category, condition, price_cents, cost_price_cents, stock, description, views, interest_count, created_at, updated_at`

// Repo implements the catalog repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// CreateProduct creates a product.
func (r *Repo) CreateProduct(ctx context.Context, params CreateProductParams) (Product, error) {
	query := fmt.Sprintf(`
		INSERT INTO products (store_id, name, brand, model, category, condition, price_cents, cost_price_cents, stock, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, productColumns)

	product, err := r.scanOne(r.pool.QueryRow(ctx, query,
		params.StoreID, params.Name, params.Brand, params.Model, params.Category,
		params.Condition, params.PriceCents, params.CostPriceCents, params.Stock, params.Description,
	))
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// UpdateProduct updates a product; nil params keep the stored value.
func (r *Repo) UpdateProduct(ctx context.Context, params UpdateProductParams) (Product, error) {
	query := fmt.Sprintf(`
		UPDATE products
		SET name = COALESCE($3, name),
			brand = COALESCE($4, brand),
			model = COALESCE($5, model),
			category = COALESCE($6, category),
			condition = COALESCE($7, condition),
			price_cents = COALESCE($8, price_cents),
			cost_price_cents = COALESCE($9, cost_price_cents),
			stock = COALESCE($10, stock),
			description = COALESCE($11, description),
			updated_at = now()
		WHERE id = $1 AND store_id = $2
		RETURNING %s`, productColumns)

	product, err := r.scanOne(r.pool.QueryRow(ctx, query,
		params.ID, params.StoreID, params.Name, params.Brand, params.Model, params.Category,
		params.Condition, params.PriceCents, params.CostPriceCents, params.Stock, params.Description,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, apperr.NotFound(productNotFoundMessage)
		}
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

// DeleteProduct deletes a product.
func (r *Repo) DeleteProduct(ctx context.Context, storeID uuid.UUID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(productNotFoundMessage)
	}
	return nil
}

// GetProductByID retrieves a product by ID.
func (r *Repo) GetProductByID(ctx context.Context, storeID uuid.UUID, id uuid.UUID) (Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1 AND store_id = $2`, productColumns)

	product, err := r.scanOne(r.pool.QueryRow(ctx, query, id, storeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, apperr.NotFound(productNotFoundMessage)
		}
		return Product{}, fmt.Errorf("get product by id: %w", err)
	}
	return product, nil
}

// ListProducts returns a store's products, newest first. The order is stable
// and meaningful: the funnel valuation credits the first match in this order.
func (r *Repo) ListProducts(ctx context.Context, storeID uuid.UUID) ([]Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE store_id = $1 ORDER BY created_at DESC, id`, productColumns)

	rows, err := r.pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		product, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate products: %w", rows.Err())
	}

	return products, nil
}

// IncrementViews bumps the view counter for every product in the store. It is
// called when the public storefront is served; updated_at is left untouched so
// counters do not disturb listing order.
func (r *Repo) IncrementViews(ctx context.Context, storeID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `UPDATE products SET views = views + 1 WHERE store_id = $1`, storeID); err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// IncrementInterest bumps the interest counter for one product.
func (r *Repo) IncrementInterest(ctx context.Context, storeID uuid.UUID, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `UPDATE products SET interest_count = interest_count + 1 WHERE id = $1 AND store_id = $2`, id, storeID); err != nil {
		return fmt.Errorf("increment interest: %w", err)
	}
	return nil
}

func (r *Repo) scanOne(row pgx.Row) (Product, error) {
	var product Product
	if err := row.Scan(
		&product.ID, &product.StoreID, &product.Name, &product.Brand, &product.Model,
		&product.Category, &product.Condition, &product.PriceCents, &product.CostPriceCents,
		&product.Stock, &product.Description, &product.Views, &product.InterestCount,
		&product.CreatedAt, &product.UpdatedAt,
	); err != nil {
		return Product{}, err
	}
	return product, nil
}
