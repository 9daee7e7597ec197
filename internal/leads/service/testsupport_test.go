package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"staysoft_backend/internal/leads/domain"
	"staysoft_backend/internal/leads/ports"
	"staysoft_backend/internal/leads/repository"
	"staysoft_backend/internal/leads/transport"
	"staysoft_backend/platform/apperr"
	"staysoft_backend/platform/events"
	"staysoft_backend/platform/logger"
)

// memoryRepo is an in-memory Repository used by service tests. Writes bump a
// logical clock so updated_at ordering is deterministic.
type memoryRepo struct {
	mu    sync.Mutex
	leads map[uuid.UUID]domain.Lead
	clock time.Time

	// createConflicts forces the next n Create calls to fail with a
	// uniqueness conflict, simulating a lost first-contact race.
	createConflicts int
	// racedLead, when set alongside createConflicts, is inserted as the row
	// the racing writer won with.
	racedLead *domain.Lead
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		leads: make(map[uuid.UUID]domain.Lead),
		clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (m *memoryRepo) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memoryRepo) GetByPhone(_ context.Context, storeID uuid.UUID, phone string) (domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, lead := range m.leads {
		if lead.StoreID == storeID && lead.Phone == phone {
			return lead, nil
		}
	}
	return domain.Lead{}, apperr.NotFound("lead not found")
}

func (m *memoryRepo) GetByID(_ context.Context, id uuid.UUID, storeID uuid.UUID) (domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lead, ok := m.leads[id]
	if !ok || lead.StoreID != storeID {
		return domain.Lead{}, apperr.NotFound("lead not found")
	}
	return lead, nil
}

func (m *memoryRepo) ListByStore(_ context.Context, storeID uuid.UUID) ([]domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]domain.Lead, 0)
	for _, lead := range m.leads {
		if lead.StoreID == storeID {
			result = append(result, lead)
		}
	}
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].UpdatedAt.After(result[i].UpdatedAt) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

func (m *memoryRepo) Create(_ context.Context, params repository.CreateParams) (domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createConflicts > 0 {
		m.createConflicts--
		if m.racedLead != nil {
			raced := *m.racedLead
			m.leads[raced.ID] = raced
			m.racedLead = nil
		}
		return domain.Lead{}, apperr.Conflict("lead already exists for this phone")
	}

	for _, lead := range m.leads {
		if lead.StoreID == params.StoreID && lead.Phone == params.Phone {
			return domain.Lead{}, apperr.Conflict("lead already exists for this phone")
		}
	}

	now := m.tick()
	lead := domain.Lead{
		ID:          uuid.New(),
		StoreID:     params.StoreID,
		Phone:       params.Phone,
		Name:        params.Name,
		LastMessage: params.LastMessage,
		IsHot:       params.IsHot,
		Status:      params.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.leads[lead.ID] = lead
	return lead, nil
}

func (m *memoryRepo) Update(_ context.Context, lead domain.Lead) (domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.leads[lead.ID]
	if !ok || stored.StoreID != lead.StoreID {
		return domain.Lead{}, apperr.NotFound("lead not found")
	}
	lead.CreatedAt = stored.CreatedAt
	lead.UpdatedAt = m.tick()
	m.leads[lead.ID] = lead
	return lead, nil
}

func (m *memoryRepo) Delete(_ context.Context, id uuid.UUID, storeID uuid.UUID) (domain.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lead, ok := m.leads[id]
	if !ok || lead.StoreID != storeID {
		return domain.Lead{}, apperr.NotFound("lead not found")
	}
	delete(m.leads, id)
	return lead, nil
}

func (m *memoryRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.leads)
}

// staticCatalog serves a fixed item list, or an error.
type staticCatalog struct {
	items []ports.CatalogItem
	err   error
}

func (c *staticCatalog) ListItems(context.Context, uuid.UUID) ([]ports.CatalogItem, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.items, nil
}

// recordingBus captures synchronously every published event.
type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBus) PublishSync(ctx context.Context, event events.Event) error {
	b.Publish(ctx, event)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func (b *recordingBus) named(name string) []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	matched := make([]events.Event, 0)
	for _, event := range b.events {
		if event.EventName() == name {
			matched = append(matched, event)
		}
	}
	return matched
}

// fakeCache is a map-backed StatsCache that counts hits and writes.
type fakeCache struct {
	mu     sync.Mutex
	values map[string][]byte
	gets   int
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	data, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, unmarshalJSON(data, dest)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	data, err := marshalJSON(value)
	if err != nil {
		return err
	}
	c.values[key] = data
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

func createRequest(phone, description, name string) transport.CreateLeadRequest {
	return transport.CreateLeadRequest{Phone: phone, Description: description, Name: name}
}

func marshalJSON(value any) ([]byte, error) {
	return json.Marshal(value)
}

func unmarshalJSON(data []byte, dest any) error {
	return json.Unmarshal(data, dest)
}

type fixture struct {
	svc     *Service
	repo    *memoryRepo
	catalog *staticCatalog
	bus     *recordingBus
	cache   *fakeCache
	storeID uuid.UUID
}

func newFixture() *fixture {
	repo := newMemoryRepo()
	catalog := &staticCatalog{}
	bus := &recordingBus{}
	log := logger.New("development")
	return &fixture{
		svc:     New(repo, catalog, bus, nil, 30*time.Second, log),
		repo:    repo,
		catalog: catalog,
		bus:     bus,
		storeID: uuid.New(),
	}
}

func newCachedFixture() *fixture {
	f := newFixture()
	f.cache = newFakeCache()
	f.svc = New(f.repo, f.catalog, f.bus, f.cache, 30*time.Second, logger.New("development"))
	return f
}
