// Package domain holds the lead aggregate and its pipeline status model.
package domain

import (
	"time"

	"github.com/google/uuid"

	"staysoft_backend/platform/apperr"
)

// Status is a lead's pipeline stage.
type Status string

const (
	StatusNew              Status = "NEW"
	StatusInProgress       Status = "IN_PROGRESS"
	StatusWaitingFinancial Status = "WAITING_FINANCIAL"
	StatusWon              Status = "WON"
	StatusLost             Status = "LOST"
)

// ParseStatus validates a pipeline stage label. Transitions are deliberately
// unrestricted (any stage may be set from any other) so owners can correct
// mis-classified outcomes; only unknown labels are rejected.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusNew, StatusInProgress, StatusWaitingFinancial, StatusWon, StatusLost:
		return Status(value), nil
	default:
		return "", apperr.Validation("unknown lead status: " + value)
	}
}

// IsOpen reports whether the stage counts toward the open pipeline.
func (s Status) IsOpen() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusWaitingFinancial:
		return true
	default:
		return false
	}
}

// Lead is one prospective customer's ongoing relationship with one store.
// (StoreID, Phone) is the business key, unique per store.
type Lead struct {
	ID              uuid.UUID
	StoreID         uuid.UUID
	Phone           string
	Name            *string
	LastMessage     string
	IsHot           bool
	InterestSubject *string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
