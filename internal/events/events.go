// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"staysoft_backend/platform/events"
	"staysoft_backend/platform/logger"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCreated is published when a first contact creates a new lead.
type LeadCreated struct {
	BaseEvent
	LeadID  uuid.UUID `json:"leadId"`
	StoreID uuid.UUID `json:"storeId"`
	Phone   string    `json:"phone"`
	IsHot   bool      `json:"isHot"`
}

func (e LeadCreated) EventName() string { return "leads.lead.created" }

// LeadBecameHot is published when a lead's hot flag is promoted from false to
// true. The flag never reverts, so this fires at most once per lead.
type LeadBecameHot struct {
	BaseEvent
	LeadID      uuid.UUID `json:"leadId"`
	StoreID     uuid.UUID `json:"storeId"`
	Phone       string    `json:"phone"`
	Name        string    `json:"name,omitempty"`
	LastMessage string    `json:"lastMessage"`
}

func (e LeadBecameHot) EventName() string { return "leads.lead.became_hot" }

// LeadInterestSet is published when a lead's interest subject is recorded.
// The catalog module listens to credit product interest counters.
type LeadInterestSet struct {
	BaseEvent
	LeadID   uuid.UUID `json:"leadId"`
	StoreID  uuid.UUID `json:"storeId"`
	Interest string    `json:"interest"`
}

func (e LeadInterestSet) EventName() string { return "leads.lead.interest_set" }

// LeadStatusChanged is published when a lead moves through the pipeline.
type LeadStatusChanged struct {
	BaseEvent
	LeadID    uuid.UUID `json:"leadId"`
	StoreID   uuid.UUID `json:"storeId"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
}

func (e LeadStatusChanged) EventName() string { return "leads.lead.status_changed" }
