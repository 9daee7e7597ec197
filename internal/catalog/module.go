// Package catalog wires the product catalog bounded context.
package catalog

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"staysoft_backend/internal/catalog/handler"
	"staysoft_backend/internal/catalog/repository"
	"staysoft_backend/internal/catalog/service"
	apphttp "staysoft_backend/internal/http"
	"staysoft_backend/platform/logger"
)

// Module is the catalog bounded context.
type Module struct {
	svc     *service.Service
	handler *handler.Handler
}

// NewModule assembles the catalog module.
func NewModule(pool *pgxpool.Pool, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	return &Module{
		svc:     svc,
		handler: handler.New(svc),
	}
}

// Name implements http.Module.
func (m *Module) Name() string { return "catalog" }

// Service exposes the catalog service for in-process consumers, such as the
// leads funnel valuation and the public storefront.
func (m *Module) Service() *service.Service { return m.svc }

// RegisterRoutes implements http.Module.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	products := ctx.Protected.Group("/products")
	{
		products.POST("", m.handler.Create)
		products.GET("", m.handler.List)
		products.GET("/:id", m.handler.Get)
		products.PUT("/:id", m.handler.Update)
		products.DELETE("/:id", m.handler.Delete)
	}
}
