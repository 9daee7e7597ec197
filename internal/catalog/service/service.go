// Package service implements catalog business logic.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"staysoft_backend/internal/catalog/repository"
	"staysoft_backend/internal/catalog/transport"
	"staysoft_backend/platform/apperr"
	"staysoft_backend/platform/logger"
)

var allowedConditions = map[string]bool{
	"Novo":     true,
	"Usado":    true,
	"Open Box": true,
}

// Service provides business logic for the product catalog.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new catalog service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create adds a product to the store's catalog.
func (s *Service) Create(ctx context.Context, storeID uuid.UUID, req transport.CreateProductRequest) (transport.ProductResponse, error) {
	if !allowedConditions[req.Condition] {
		return transport.ProductResponse{}, apperr.Validation("condition must be one of: Novo, Usado, Open Box")
	}

	product, err := s.repo.CreateProduct(ctx, repository.CreateProductParams{
		StoreID:        storeID,
		Name:           req.Name,
		Brand:          req.Brand,
		Model:          req.Model,
		Category:       req.Category,
		Condition:      req.Condition,
		PriceCents:     req.PriceCents,
		CostPriceCents: req.CostPriceCents,
		Stock:          req.Stock,
		Description:    req.Description,
	})
	if err != nil {
		return transport.ProductResponse{}, err
	}

	s.log.Info("product created", "productId", product.ID, "storeId", storeID)
	return toProductResponse(product), nil
}

// Update applies a partial update to a product.
func (s *Service) Update(ctx context.Context, storeID uuid.UUID, id uuid.UUID, req transport.UpdateProductRequest) (transport.ProductResponse, error) {
	if req.Condition != nil && !allowedConditions[*req.Condition] {
		return transport.ProductResponse{}, apperr.Validation("condition must be one of: Novo, Usado, Open Box")
	}

	product, err := s.repo.UpdateProduct(ctx, repository.UpdateProductParams{
		ID:             id,
		StoreID:        storeID,
		Name:           req.Name,
		Brand:          req.Brand,
		Model:          req.Model,
		Category:       req.Category,
		Condition:      req.Condition,
		PriceCents:     req.PriceCents,
		CostPriceCents: req.CostPriceCents,
		Stock:          req.Stock,
		Description:    req.Description,
	})
	if err != nil {
		return transport.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

// Delete removes a product from the catalog.
func (s *Service) Delete(ctx context.Context, storeID uuid.UUID, id uuid.UUID) error {
	if err := s.repo.DeleteProduct(ctx, storeID, id); err != nil {
		return err
	}
	s.log.Info("product removed", "productId", id, "storeId", storeID)
	return nil
}

// Get retrieves a single product.
func (s *Service) Get(ctx context.Context, storeID uuid.UUID, id uuid.UUID) (transport.ProductResponse, error) {
	product, err := s.repo.GetProductByID(ctx, storeID, id)
	if err != nil {
		return transport.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

// List returns the store's full catalog, newest first.
func (s *Service) List(ctx context.Context, storeID uuid.UUID) ([]transport.ProductResponse, error) {
	products, err := s.repo.ListProducts(ctx, storeID)
	if err != nil {
		return nil, err
	}

	responses := make([]transport.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = toProductResponse(product)
	}
	return responses, nil
}

// ListPublic returns the storefront view of a store's catalog. Out-of-stock
// products are kept visible; only cost price is hidden. Serving the storefront
// bumps view counters; a counter failure never fails the page.
func (s *Service) ListPublic(ctx context.Context, storeID uuid.UUID) ([]transport.PublicProductResponse, error) {
	products, err := s.repo.ListProducts(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViews(ctx, storeID); err != nil {
		s.log.Error("increment product views", "storeId", storeID, "error", err)
	}

	responses := make([]transport.PublicProductResponse, len(products))
	for i, product := range products {
		responses[i] = transport.PublicProductResponse{
			ID:          product.ID,
			Name:        product.Name,
			Brand:       product.Brand,
			Model:       product.Model,
			Category:    product.Category,
			Condition:   product.Condition,
			PriceCents:  product.PriceCents,
			Stock:       product.Stock,
			Description: product.Description,
		}
	}
	return responses, nil
}

// RecordInterest credits the first product whose name or model appears inside
// the interest text, mirroring the rule the funnel valuation uses. No match is
// a silent no-op.
func (s *Service) RecordInterest(ctx context.Context, storeID uuid.UUID, interest string) error {
	text := strings.ToLower(interest)
	if text == "" {
		return nil
	}

	products, err := s.repo.ListProducts(ctx, storeID)
	if err != nil {
		return err
	}

	for _, product := range products {
		if name := strings.ToLower(product.Name); name != "" && strings.Contains(text, name) {
			return s.repo.IncrementInterest(ctx, storeID, product.ID)
		}
		if model := strings.ToLower(product.Model); model != "" && strings.Contains(text, model) {
			return s.repo.IncrementInterest(ctx, storeID, product.ID)
		}
	}
	return nil
}

func toProductResponse(product repository.Product) transport.ProductResponse {
	return transport.ProductResponse{
		ID:             product.ID,
		StoreID:        product.StoreID,
		Name:           product.Name,
		Brand:          product.Brand,
		Model:          product.Model,
		Category:       product.Category,
		Condition:      product.Condition,
		PriceCents:     product.PriceCents,
		CostPriceCents: product.CostPriceCents,
		Stock:          product.Stock,
		Description:    product.Description,
		Views:          product.Views,
		InterestCount:  product.InterestCount,
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
	}
}
