// Package service implements store profile and public storefront logic.
package service

import (
	"context"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	catalogservice "staysoft_backend/internal/catalog/service"
	"staysoft_backend/internal/stores/repository"
	"staysoft_backend/internal/stores/transport"
	"staysoft_backend/platform/apperr"
	"staysoft_backend/platform/logger"
	"staysoft_backend/platform/phone"
)

const qrImageSize = 256

// Service provides business logic for store profiles and the public
// storefront surface.
type Service struct {
	repo    repository.Repository
	catalog *catalogservice.Service
	log     *logger.Logger
}

// New creates a new stores service.
func New(repo repository.Repository, catalog *catalogservice.Service, log *logger.Logger) *Service {
	return &Service{repo: repo, catalog: catalog, log: log}
}

// Get returns the authenticated owner's store profile.
func (s *Service) Get(ctx context.Context, storeID uuid.UUID) (transport.StoreResponse, error) {
	store, err := s.repo.GetByID(ctx, storeID)
	if err != nil {
		return transport.StoreResponse{}, err
	}
	return toStoreResponse(store), nil
}

// Update applies a partial profile update.
func (s *Service) Update(ctx context.Context, storeID uuid.UUID, req transport.UpdateStoreRequest) (transport.StoreResponse, error) {
	params := repository.UpdateStoreParams{
		ID:                  storeID,
		Slug:                req.Slug,
		StoreName:           req.StoreName,
		Description:         req.Description,
		LogoURL:             req.LogoURL,
		PrimaryColor:        req.PrimaryColor,
		NotifyHotLeads:      req.NotifyHotLeads,
		WhatsAppDeviceToken: req.WhatsAppDeviceToken,
	}
	if req.Phone != nil {
		normalized := phone.NormalizeDigits(*req.Phone)
		if normalized == "" {
			return transport.StoreResponse{}, apperr.Validation("phone is invalid")
		}
		params.Phone = &normalized
	}

	store, err := s.repo.Update(ctx, params)
	if err != nil {
		return transport.StoreResponse{}, err
	}

	s.log.Info("store profile updated", "storeId", storeID)
	return toStoreResponse(store), nil
}

// ResolveByDeviceToken maps a WhatsApp device token to its store. Used by the
// inbound webhook when the payload carries no store ID.
func (s *Service) ResolveByDeviceToken(ctx context.Context, token string) (transport.StoreResponse, error) {
	if token == "" {
		return transport.StoreResponse{}, apperr.Validation("device token is required")
	}
	store, err := s.repo.GetByDeviceToken(ctx, token)
	if err != nil {
		return transport.StoreResponse{}, err
	}
	return toStoreResponse(store), nil
}

// GetPublic returns the storefront page for a slug: profile plus catalog.
func (s *Service) GetPublic(ctx context.Context, slug string) (transport.PublicStoreResponse, error) {
	store, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return transport.PublicStoreResponse{}, err
	}

	products, err := s.catalog.ListPublic(ctx, store.ID)
	if err != nil {
		return transport.PublicStoreResponse{}, err
	}

	return transport.PublicStoreResponse{
		Slug:         store.Slug,
		StoreName:    store.StoreName,
		Description:  store.Description,
		Phone:        store.Phone,
		LogoURL:      store.LogoURL,
		PrimaryColor: store.PrimaryColor,
		WhatsAppLink: whatsAppLink(store.Phone),
		Products:     products,
	}, nil
}

// WhatsAppQR renders the store's wa.me link as a PNG. Stores without a phone
// cannot produce a link, which is a validation outcome rather than a 404.
func (s *Service) WhatsAppQR(ctx context.Context, slug string) ([]byte, error) {
	store, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	link := whatsAppLink(store.Phone)
	if link == "" {
		return nil, apperr.Validation("store has no contact phone configured")
	}

	png, err := qrcode.Encode(link, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "generate qr code", err)
	}
	return png, nil
}

func whatsAppLink(storePhone string) string {
	digits := phone.NormalizeDigits(storePhone)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits
}

func toStoreResponse(store repository.Store) transport.StoreResponse {
	return transport.StoreResponse{
		ID:                  store.ID,
		Slug:                store.Slug,
		StoreName:           store.StoreName,
		Description:         store.Description,
		Phone:               store.Phone,
		LogoURL:             store.LogoURL,
		PrimaryColor:        store.PrimaryColor,
		NotifyHotLeads:      store.NotifyHotLeads,
		WhatsAppDeviceToken: store.WhatsAppDeviceToken,
		CreatedAt:           store.CreatedAt,
		UpdatedAt:           store.UpdatedAt,
	}
}
