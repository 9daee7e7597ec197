// Package handler exposes the leads HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staysoft_backend/internal/leads/service"
	"staysoft_backend/internal/leads/transport"
	"staysoft_backend/platform/httpkit"
)

// Handler handles leads HTTP requests.
type Handler struct {
	svc *service.Service
}

// New creates a new leads handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /leads.
func (h *Handler) Create(c *gin.Context) {
	storeID, ok := httpkit.StoreID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing store scope", nil)
		return
	}

	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	lead, err := h.svc.Create(c.Request.Context(), storeID, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, lead)
}

// List handles GET /leads.
func (h *Handler) List(c *gin.Context) {
	storeID, ok := httpkit.StoreID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing store scope", nil)
		return
	}

	leads, err := h.svc.FindAll(c.Request.Context(), storeID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, leads)
}

// Stats handles GET /leads/stats.
func (h *Handler) Stats(c *gin.Context) {
	storeID, ok := httpkit.StoreID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing store scope", nil)
		return
	}

	stats, err := h.svc.GetStats(c.Request.Context(), storeID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, stats)
}

// SetInterest handles PUT /leads/interest.
func (h *Handler) SetInterest(c *gin.Context) {
	storeID, ok := httpkit.StoreID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing store scope", nil)
		return
	}

	var req transport.SetInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	lead, err := h.svc.SetInterest(c.Request.Context(), storeID, req.Phone, req.Interest)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, lead)
}

// UpdateStatus handles PATCH /leads/:id/status.
func (h *Handler) UpdateStatus(c *gin.Context) {
	storeID, ok := httpkit.StoreID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing store scope", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid lead id", nil)
		return
	}

	var req transport.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	lead, err := h.svc.UpdateStatus(c.Request.Context(), id, storeID, req.Status)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, lead)
}

// Delete handles DELETE /leads/:id.
func (h *Handler) Delete(c *gin.Context) {
	storeID, ok := httpkit.StoreID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing store scope", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid lead id", nil)
		return
	}

	lead, err := h.svc.Remove(c.Request.Context(), id, storeID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, lead)
}
