// Package service implements the lead lifecycle: upsert on inbound contact,
// pipeline status changes, interest tracking, and funnel statistics.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"staysoft_backend/internal/events"
	"staysoft_backend/internal/leads/domain"
	"staysoft_backend/internal/leads/ports"
	"staysoft_backend/internal/leads/repository"
	"staysoft_backend/internal/leads/transport"
	"staysoft_backend/platform/apperr"
	"staysoft_backend/platform/logger"
	"staysoft_backend/platform/phone"
)

// manualLeadMessage is recorded when a lead is created by hand instead of
// from an inbound message.
const manualLeadMessage = "Lead Manual"

// StatsCache caches computed funnel summaries. platform/cache.Redis satisfies
// it; a nil cache disables caching entirely.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Service provides business logic for leads.
type Service struct {
	repo     repository.Repository
	catalog  ports.Catalog
	bus      events.Bus
	cache    StatsCache
	cacheTTL time.Duration
	log      *logger.Logger
}

// New creates a new leads service. cache may be nil.
func New(repo repository.Repository, catalog ports.Catalog, bus events.Bus, cache StatsCache, cacheTTL time.Duration, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		catalog:  catalog,
		bus:      bus,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// Upsert finds-or-creates the lead for (storeID, phone) and applies the
// contact event. The hot flag only ever moves false -> true here, and the
// stored name is overwritten only when a non-empty name is supplied.
func (s *Service) Upsert(ctx context.Context, storeID uuid.UUID, rawPhone, message, name string) (transport.LeadResponse, error) {
	if storeID == uuid.Nil {
		return transport.LeadResponse{}, apperr.Validation("storeId is required")
	}
	normalized := phone.NormalizeDigits(rawPhone)
	if normalized == "" {
		return transport.LeadResponse{}, apperr.Validation("phone is required")
	}

	lead, err := s.repo.GetByPhone(ctx, storeID, normalized)
	if err != nil {
		if !apperr.Is(err, apperr.KindNotFound) {
			return transport.LeadResponse{}, err
		}
		return s.createFromContact(ctx, storeID, normalized, message, name)
	}

	return s.applyContact(ctx, lead, message, name)
}

// Create makes a lead by hand. The description doubles as the message body so
// the classification and dedup rules stay identical to the inbound path.
func (s *Service) Create(ctx context.Context, storeID uuid.UUID, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	message := req.Description
	if message == "" {
		message = manualLeadMessage
	}
	return s.Upsert(ctx, storeID, req.Phone, message, req.Name)
}

func (s *Service) createFromContact(ctx context.Context, storeID uuid.UUID, normalizedPhone, message, name string) (transport.LeadResponse, error) {
	params := repository.CreateParams{
		StoreID:     storeID,
		Phone:       normalizedPhone,
		LastMessage: message,
		IsHot:       domain.IsHotMessage(message),
		Status:      domain.StatusNew,
	}
	if name != "" {
		params.Name = &name
	}

	lead, err := s.repo.Create(ctx, params)
	if err != nil {
		if apperr.Is(err, apperr.KindConflict) {
			// Lost a create race for this phone; the row exists now, so
			// resolve by applying the contact as an update.
			existing, getErr := s.repo.GetByPhone(ctx, storeID, normalizedPhone)
			if getErr != nil {
				return transport.LeadResponse{}, getErr
			}
			return s.applyContact(ctx, existing, message, name)
		}
		return transport.LeadResponse{}, err
	}

	s.invalidateStats(ctx, storeID)
	s.bus.Publish(ctx, events.LeadCreated{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		StoreID:   lead.StoreID,
		Phone:     lead.Phone,
		IsHot:     lead.IsHot,
	})
	if lead.IsHot {
		s.publishBecameHot(ctx, lead)
	}

	s.log.Info("lead created", "leadId", lead.ID, "storeId", lead.StoreID, "hot", lead.IsHot)
	return toLeadResponse(lead), nil
}

func (s *Service) applyContact(ctx context.Context, lead domain.Lead, message, name string) (transport.LeadResponse, error) {
	lead.LastMessage = message
	promoted := !lead.IsHot && domain.IsHotMessage(message)
	lead.IsHot = lead.IsHot || domain.IsHotMessage(message)
	if name != "" {
		lead.Name = &name
	}

	updated, err := s.repo.Update(ctx, lead)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	s.invalidateStats(ctx, updated.StoreID)
	if promoted {
		s.publishBecameHot(ctx, updated)
	}

	return toLeadResponse(updated), nil
}

// SetInterest records the free-text interest subject for the lead keyed by
// (storeID, phone). Missing leads are a normal NotFound outcome.
func (s *Service) SetInterest(ctx context.Context, storeID uuid.UUID, rawPhone, interest string) (transport.LeadResponse, error) {
	normalized := phone.NormalizeDigits(rawPhone)
	if normalized == "" {
		return transport.LeadResponse{}, apperr.Validation("phone is required")
	}

	lead, err := s.repo.GetByPhone(ctx, storeID, normalized)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	lead.InterestSubject = &interest
	updated, err := s.repo.Update(ctx, lead)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	s.invalidateStats(ctx, storeID)
	s.bus.Publish(ctx, events.LeadInterestSet{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    updated.ID,
		StoreID:   updated.StoreID,
		Interest:  interest,
	})
	return toLeadResponse(updated), nil
}

// FindAll returns the store's leads, most recently updated first.
func (s *Service) FindAll(ctx context.Context, storeID uuid.UUID) ([]transport.LeadResponse, error) {
	leads, err := s.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	responses := make([]transport.LeadResponse, len(leads))
	for i, lead := range leads {
		responses[i] = toLeadResponse(lead)
	}
	return responses, nil
}

// UpdateStatus overwrites the lead's pipeline stage. Any stage may be set
// from any other stage, including out of WON and LOST; owners rely on this
// to correct mis-classified outcomes.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, storeID uuid.UUID, status string) (transport.LeadResponse, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	lead, err := s.repo.GetByID(ctx, id, storeID)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	oldStatus := lead.Status
	lead.Status = parsed
	updated, err := s.repo.Update(ctx, lead)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	s.invalidateStats(ctx, storeID)
	if oldStatus != parsed {
		s.bus.Publish(ctx, events.LeadStatusChanged{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    updated.ID,
			StoreID:   updated.StoreID,
			OldStatus: string(oldStatus),
			NewStatus: string(parsed),
		})
	}

	s.log.Info("lead status updated", "leadId", id, "from", oldStatus, "to", parsed)
	return toLeadResponse(updated), nil
}

// Remove deletes a lead and returns the removed record.
func (s *Service) Remove(ctx context.Context, id uuid.UUID, storeID uuid.UUID) (transport.LeadResponse, error) {
	lead, err := s.repo.Delete(ctx, id, storeID)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	s.invalidateStats(ctx, storeID)
	s.log.Info("lead removed", "leadId", id, "storeId", storeID)
	return toLeadResponse(lead), nil
}

func (s *Service) publishBecameHot(ctx context.Context, lead domain.Lead) {
	event := events.LeadBecameHot{
		BaseEvent:   events.NewBaseEvent(),
		LeadID:      lead.ID,
		StoreID:     lead.StoreID,
		Phone:       lead.Phone,
		LastMessage: lead.LastMessage,
	}
	if lead.Name != nil {
		event.Name = *lead.Name
	}
	s.bus.Publish(ctx, event)
}

func toLeadResponse(lead domain.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:              lead.ID,
		StoreID:         lead.StoreID,
		Phone:           lead.Phone,
		Name:            lead.Name,
		LastMessage:     lead.LastMessage,
		IsHot:           lead.IsHot,
		InterestSubject: lead.InterestSubject,
		Status:          string(lead.Status),
		CreatedAt:       lead.CreatedAt,
		UpdatedAt:       lead.UpdatedAt,
	}
}
