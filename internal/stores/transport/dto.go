// Package transport defines the request/response DTOs for the stores module.
package transport

import (
	"time"

	"github.com/google/uuid"

	catalogtransport "staysoft_backend/internal/catalog/transport"
)

// UpdateStoreRequest partially updates the store profile; absent fields keep
// their stored value.
type UpdateStoreRequest struct {
	Slug                *string `json:"slug" validate:"omitempty,min=3,max=60,lowercase"`
	StoreName           *string `json:"storeName" validate:"omitempty,min=2,max=120"`
	Description         *string `json:"description"`
	Phone               *string `json:"phone"`
	LogoURL             *string `json:"logoUrl" validate:"omitempty,url"`
	PrimaryColor        *string `json:"primaryColor" validate:"omitempty,hexcolor"`
	NotifyHotLeads      *bool   `json:"notifyHotLeads"`
	WhatsAppDeviceToken *string `json:"whatsappDeviceToken"`
}

// StoreResponse is the owner's view of the store profile.
type StoreResponse struct {
	ID                  uuid.UUID `json:"id"`
	Slug                string    `json:"slug"`
	StoreName           string    `json:"storeName"`
	Description         string    `json:"description,omitempty"`
	Phone               string    `json:"phone,omitempty"`
	LogoURL             string    `json:"logoUrl,omitempty"`
	PrimaryColor        string    `json:"primaryColor,omitempty"`
	NotifyHotLeads      bool      `json:"notifyHotLeads"`
	WhatsAppDeviceToken string    `json:"whatsappDeviceToken,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// PublicStoreResponse is the storefront view: profile plus catalog. Device
// tokens and notification settings are never exposed.
type PublicStoreResponse struct {
	Slug         string                                     `json:"slug"`
	StoreName    string                                     `json:"storeName"`
	Description  string                                     `json:"description,omitempty"`
	Phone        string                                     `json:"phone,omitempty"`
	LogoURL      string                                     `json:"logoUrl,omitempty"`
	PrimaryColor string                                     `json:"primaryColor,omitempty"`
	WhatsAppLink string                                     `json:"whatsappLink,omitempty"`
	Products     []catalogtransport.PublicProductResponse   `json:"products"`
}
