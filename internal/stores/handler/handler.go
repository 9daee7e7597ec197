// Package handler exposes store profile and public storefront endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staysoft_backend/internal/stores/service"
	"staysoft_backend/internal/stores/transport"
	"staysoft_backend/platform/httpkit"
	"staysoft_backend/platform/validator"
)

// Handler handles store HTTP requests.
type Handler struct {
	svc      *service.Service
	validate *validator.Validator
}

// New creates a new stores handler.
func New(svc *service.Service, validate *validator.Validator) *Handler {
	return &Handler{svc: svc, validate: validate}
}

// Get handles GET /store.
func (h *Handler) Get(c *gin.Context) {
	storeID, ok := httpkit.StoreID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing store scope", nil)
		return
	}

	store, err := h.svc.Get(c.Request.Context(), storeID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, store)
}

// Update handles PUT /store.
func (h *Handler) Update(c *gin.Context) {
	storeID, ok := httpkit.StoreID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing store scope", nil)
		return
	}

	var req transport.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	store, err := h.svc.Update(c.Request.Context(), storeID, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, store)
}

// GetPublic handles GET /public/stores/:slug.
func (h *Handler) GetPublic(c *gin.Context) {
	store, err := h.svc.GetPublic(c.Request.Context(), c.Param("slug"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, store)
}

// WhatsAppQR handles GET /public/stores/:slug/whatsapp-qr.
func (h *Handler) WhatsAppQR(c *gin.Context) {
	png, err := h.svc.WhatsAppQR(c.Request.Context(), c.Param("slug"))
	if httpkit.HandleError(c, err) {
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
