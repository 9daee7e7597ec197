// Package leads wires the lead pipeline bounded context.
package leads

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	catalogservice "staysoft_backend/internal/catalog/service"
	"staysoft_backend/internal/events"
	apphttp "staysoft_backend/internal/http"
	"staysoft_backend/internal/leads/adapters"
	"staysoft_backend/internal/leads/handler"
	"staysoft_backend/internal/leads/repository"
	"staysoft_backend/internal/leads/service"
	"staysoft_backend/platform/logger"
)

// Module is the leads bounded context.
type Module struct {
	svc     *service.Service
	handler *handler.Handler
}

// NewModule assembles the leads module. cache may be nil to disable stats
// caching.
func NewModule(pool *pgxpool.Pool, catalog *catalogservice.Service, bus events.Bus, cache service.StatsCache, cacheTTL time.Duration, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, adapters.NewCatalogReader(catalog), bus, cache, cacheTTL, log)
	return &Module{
		svc:     svc,
		handler: handler.New(svc),
	}
}

// Name implements http.Module.
func (m *Module) Name() string { return "leads" }

// Service exposes the leads service for in-process consumers, such as the
// inbound webhook pipeline.
func (m *Module) Service() *service.Service { return m.svc }

// RegisterRoutes implements http.Module.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	leads := ctx.Protected.Group("/leads")
	{
		leads.POST("", m.handler.Create)
		leads.GET("", m.handler.List)
		leads.GET("/stats", m.handler.Stats)
		leads.PUT("/interest", m.handler.SetInterest)
		leads.PATCH("/:id/status", m.handler.UpdateStatus)
		leads.DELETE("/:id", m.handler.Delete)
	}
}
