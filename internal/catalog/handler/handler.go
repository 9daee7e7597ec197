// Package handler exposes catalog HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staysoft_backend/internal/catalog/service"
	"staysoft_backend/internal/catalog/transport"
	"staysoft_backend/platform/httpkit"
)

// Handler handles catalog HTTP requests.
type Handler struct {
	svc *service.Service
}

// New creates a new catalog handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /products.
func (h *Handler) Create(c *gin.Context) {
	storeID, ok := httpkit.StoreID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing store scope", nil)
		return
	}

	var req transport.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	product, err := h.svc.Create(c.Request.Context(), storeID, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, product)
}

// List handles GET /products.
func (h *Handler) List(c *gin.Context) {
	storeID, ok := httpkit.StoreID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing store scope", nil)
		return
	}

	products, err := h.svc.List(c.Request.Context(), storeID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, products)
}

// Get handles GET /products/:id.
func (h *Handler) Get(c *gin.Context) {
	storeID, ok := httpkit.StoreID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing store scope", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	product, err := h.svc.Get(c.Request.Context(), storeID, id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, product)
}

// Update handles PUT /products/:id.
func (h *Handler) Update(c *gin.Context) {
	storeID, ok := httpkit.StoreID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing store scope", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	var req transport.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	product, err := h.svc.Update(c.Request.Context(), storeID, id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, product)
}

// Delete handles DELETE /products/:id.
func (h *Handler) Delete(c *gin.Context) {
	storeID, ok := httpkit.StoreID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing store scope", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	if httpkit.HandleError(c, h.svc.Delete(c.Request.Context(), storeID, id)) {
		return
	}
	c.Status(http.StatusNoContent)
}
