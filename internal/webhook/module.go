// Package webhook ingests inbound WhatsApp messages from the gateway and
// feeds them into the lead pipeline.
package webhook

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apphttp "staysoft_backend/internal/http"
	leadstransport "staysoft_backend/internal/leads/transport"
	storestransport "staysoft_backend/internal/stores/transport"
	"staysoft_backend/platform/apperr"
	"staysoft_backend/platform/config"
	"staysoft_backend/platform/httpkit"
	"staysoft_backend/platform/logger"
)

// SecretHeader carries the shared webhook secret.
const SecretHeader = "X-Webhook-Secret"

// LeadUpserter is the slice of the leads service the webhook needs.
type LeadUpserter interface {
	Upsert(ctx context.Context, storeID uuid.UUID, phone, message, name string) (leadstransport.LeadResponse, error)
}

// StoreResolver maps device tokens to stores.
type StoreResolver interface {
	ResolveByDeviceToken(ctx context.Context, token string) (storestransport.StoreResponse, error)
}

// InboundMessage is the gateway's message payload. Either storeId or
// deviceToken must identify the tenant.
type InboundMessage struct {
	StoreID     string `json:"storeId"`
	DeviceToken string `json:"deviceToken"`
	Phone       string `json:"phone" binding:"required"`
	Message     string `json:"message" binding:"required"`
	PushName    string `json:"pushName"`
}

// Module is the inbound webhook bounded context.
type Module struct {
	leads  LeadUpserter
	stores StoreResolver
	secret string
	log    *logger.Logger
}

// NewModule assembles the webhook module.
func NewModule(leads LeadUpserter, stores StoreResolver, cfg config.WebhookConfig, log *logger.Logger) *Module {
	return &Module{
		leads:  leads,
		stores: stores,
		secret: cfg.GetWebhookSecret(),
		log:    log,
	}
}

// Name implements http.Module.
func (m *Module) Name() string { return "webhook" }

// RegisterRoutes implements http.Module.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Webhooks.POST("/whatsapp", m.handleWhatsApp)
}

func (m *Module) handleWhatsApp(c *gin.Context) {
	if m.secret == "" || c.GetHeader(SecretHeader) != m.secret {
		httpkit.Error(c, http.StatusUnauthorized, "invalid webhook secret", nil)
		return
	}

	var payload InboundMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	storeID, err := m.resolveStore(c.Request.Context(), payload)
	if httpkit.HandleError(c, err) {
		return
	}

	m.log.WebhookEvent("whatsapp", storeID.String(), payload.Phone, true)

	lead, err := m.leads.Upsert(c.Request.Context(), storeID, payload.Phone, payload.Message, payload.PushName)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, lead)
}

func (m *Module) resolveStore(ctx context.Context, payload InboundMessage) (uuid.UUID, error) {
	if payload.StoreID != "" {
		storeID, err := uuid.Parse(payload.StoreID)
		if err != nil {
			return uuid.Nil, apperr.Validation("storeId is not a valid UUID")
		}
		return storeID, nil
	}

	if payload.DeviceToken == "" {
		return uuid.Nil, apperr.Validation("storeId or deviceToken is required")
	}

	store, err := m.stores.ResolveByDeviceToken(ctx, payload.DeviceToken)
	if err != nil {
		return uuid.Nil, err
	}
	return store.ID, nil
}
