package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	catalogrepo "staysoft_backend/internal/catalog/repository"
	catalogservice "staysoft_backend/internal/catalog/service"
	"staysoft_backend/internal/stores/repository"
	"staysoft_backend/internal/stores/transport"
	"staysoft_backend/platform/apperr"
	"staysoft_backend/platform/logger"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// memoryStores holds a single store profile, which is all these tests need.
type memoryStores struct {
	store repository.Store
}

func (m *memoryStores) GetByID(_ context.Context, id uuid.UUID) (repository.Store, error) {
	if m.store.ID != id {
		return repository.Store{}, apperr.NotFound("store not found")
	}
	return m.store, nil
}

func (m *memoryStores) GetBySlug(_ context.Context, slug string) (repository.Store, error) {
	if m.store.Slug != slug {
		return repository.Store{}, apperr.NotFound("store not found")
	}
	return m.store, nil
}

func (m *memoryStores) GetByDeviceToken(_ context.Context, token string) (repository.Store, error) {
	if token == "" || m.store.WhatsAppDeviceToken != token {
		return repository.Store{}, apperr.NotFound("store not found")
	}
	return m.store, nil
}

func (m *memoryStores) Update(_ context.Context, params repository.UpdateStoreParams) (repository.Store, error) {
	if m.store.ID != params.ID {
		return repository.Store{}, apperr.NotFound("store not found")
	}
	if params.Slug != nil {
		m.store.Slug = *params.Slug
	}
	if params.StoreName != nil {
		m.store.StoreName = *params.StoreName
	}
	if params.Description != nil {
		m.store.Description = *params.Description
	}
	if params.Phone != nil {
		m.store.Phone = *params.Phone
	}
	if params.LogoURL != nil {
		m.store.LogoURL = *params.LogoURL
	}
	if params.PrimaryColor != nil {
		m.store.PrimaryColor = *params.PrimaryColor
	}
	if params.NotifyHotLeads != nil {
		m.store.NotifyHotLeads = *params.NotifyHotLeads
	}
	if params.WhatsAppDeviceToken != nil {
		m.store.WhatsAppDeviceToken = *params.WhatsAppDeviceToken
	}
	m.store.UpdatedAt = m.store.UpdatedAt.Add(time.Second)
	return m.store, nil
}

// emptyCatalog satisfies the catalog repository with no products.
type emptyCatalog struct{}

func (emptyCatalog) CreateProduct(context.Context, catalogrepo.CreateProductParams) (catalogrepo.Product, error) {
	return catalogrepo.Product{}, nil
}

func (emptyCatalog) UpdateProduct(context.Context, catalogrepo.UpdateProductParams) (catalogrepo.Product, error) {
	return catalogrepo.Product{}, nil
}

func (emptyCatalog) DeleteProduct(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (emptyCatalog) GetProductByID(context.Context, uuid.UUID, uuid.UUID) (catalogrepo.Product, error) {
	return catalogrepo.Product{}, nil
}

func (emptyCatalog) ListProducts(context.Context, uuid.UUID) ([]catalogrepo.Product, error) {
	return nil, nil
}

func (emptyCatalog) IncrementViews(context.Context, uuid.UUID) error { return nil }

func (emptyCatalog) IncrementInterest(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func newTestService(store repository.Store) (*Service, *memoryStores) {
	repo := &memoryStores{store: store}
	log := logger.New("development")
	catalog := catalogservice.New(emptyCatalog{}, log)
	return New(repo, catalog, log), repo
}

func testStore() repository.Store {
	return repository.Store{
		ID:        uuid.New(),
		Slug:      "tc-hardware",
		StoreName: "TC Hardware",
		Phone:     "5511987654321",
	}
}

func TestUpdateNormalizesPhone(t *testing.T) {
	store := testStore()
	svc, _ := newTestService(store)

	formatted := "+55 (11) 91234-5678"
	updated, err := svc.Update(context.Background(), store.ID, transport.UpdateStoreRequest{Phone: &formatted})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Phone != "5511912345678" {
		t.Fatalf("expected normalized phone, got %q", updated.Phone)
	}
}

func TestGetPublicHidesPrivateFields(t *testing.T) {
	store := testStore()
	store.WhatsAppDeviceToken = "device-token-123"
	svc, _ := newTestService(store)

	public, err := svc.GetPublic(context.Background(), store.Slug)
	if err != nil {
		t.Fatalf("getPublic: %v", err)
	}
	if public.StoreName != "TC Hardware" {
		t.Errorf("expected store name, got %q", public.StoreName)
	}
	if public.WhatsAppLink != "https://wa.me/5511987654321" {
		t.Errorf("expected wa.me link, got %q", public.WhatsAppLink)
	}
	if public.Products == nil {
		t.Error("products must be present, even when empty")
	}
}

func TestGetPublicUnknownSlug(t *testing.T) {
	svc, _ := newTestService(testStore())

	if _, err := svc.GetPublic(context.Background(), "nope"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestWhatsAppQRProducesPNG(t *testing.T) {
	store := testStore()
	svc, _ := newTestService(store)

	png, err := svc.WhatsAppQR(context.Background(), store.Slug)
	if err != nil {
		t.Fatalf("whatsappQR: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatal("expected PNG output")
	}
}

func TestWhatsAppQRRequiresPhone(t *testing.T) {
	store := testStore()
	store.Phone = ""
	svc, _ := newTestService(store)

	if _, err := svc.WhatsAppQR(context.Background(), store.Slug); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolveByDeviceToken(t *testing.T) {
	store := testStore()
	store.WhatsAppDeviceToken = "device-token-123"
	svc, _ := newTestService(store)

	resolved, err := svc.ResolveByDeviceToken(context.Background(), "device-token-123")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.ID != store.ID {
		t.Fatal("expected matching store")
	}

	if _, err := svc.ResolveByDeviceToken(context.Background(), ""); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for empty token, got %v", err)
	}
}
