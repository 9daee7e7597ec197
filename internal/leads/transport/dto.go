// Package transport defines the request/response DTOs for the leads module.
package transport

import (
	"time"

	"github.com/google/uuid"
)

// CreateLeadRequest creates a lead manually, without a real inbound message.
type CreateLeadRequest struct {
	Phone       string `json:"phone" binding:"required"`
	Description string `json:"description"`
	Name        string `json:"name"`
}

// SetInterestRequest records what catalog item a lead is interested in.
type SetInterestRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Interest string `json:"interest" binding:"required"`
}

// UpdateStatusRequest moves a lead through the pipeline.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// LeadResponse is the outward representation of a lead.
type LeadResponse struct {
	ID              uuid.UUID `json:"id"`
	StoreID         uuid.UUID `json:"storeId"`
	Phone           string    `json:"phone"`
	Name            *string   `json:"name,omitempty"`
	LastMessage     string    `json:"lastMessage"`
	IsHot           bool      `json:"isHot"`
	InterestSubject *string   `json:"interestSubject,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// StatsResponse is the funnel summary for a store's dashboard.
// Monetary values are integer cents.
type StatsResponse struct {
	TotalLeads     int            `json:"totalLeads"`
	ConversionRate string         `json:"conversionRate"`
	OpenValueCents int64          `json:"openValueCents"`
	WonValueCents  int64          `json:"wonValueCents"`
	HotLeads       int            `json:"hotLeads"`
	RecentLeads    []LeadResponse `json:"recentLeads"`
}
