// Package stores wires the store profile bounded context.
package stores

import (
	"github.com/jackc/pgx/v5/pgxpool"

	catalogservice "staysoft_backend/internal/catalog/service"
	apphttp "staysoft_backend/internal/http"
	"staysoft_backend/internal/stores/handler"
	"staysoft_backend/internal/stores/repository"
	"staysoft_backend/internal/stores/service"
	"staysoft_backend/platform/logger"
	"staysoft_backend/platform/validator"
)

// Module is the stores bounded context.
type Module struct {
	svc     *service.Service
	handler *handler.Handler
}

// NewModule assembles the stores module.
func NewModule(pool *pgxpool.Pool, catalog *catalogservice.Service, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, catalog, log)
	return &Module{
		svc:     svc,
		handler: handler.New(svc, validator.New()),
	}
}

// Name implements http.Module.
func (m *Module) Name() string { return "stores" }

// Service exposes the stores service for in-process consumers, such as webhook
// store resolution and hot-lead notifications.
func (m *Module) Service() *service.Service { return m.svc }

// RegisterRoutes implements http.Module.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	store := ctx.Protected.Group("/store")
	{
		store.GET("", m.handler.Get)
		store.PUT("", m.handler.Update)
	}

	public := ctx.Public.Group("/stores")
	{
		public.GET("/:slug", m.handler.GetPublic)
		public.GET("/:slug/whatsapp-qr", m.handler.WhatsAppQR)
	}
}
