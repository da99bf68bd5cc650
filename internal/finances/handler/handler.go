// Package handler exposes the finances module's HTTP endpoints.
package handler

import (
	"net/http"

	"sidebar_backend/internal/finances/service"
	"sidebar_backend/internal/finances/transport"
	"sidebar_backend/platform/httpkit"
	"sidebar_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for invoices and tasks.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new finances handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterInvoiceRoutes registers the invoice routes.
func (h *Handler) RegisterInvoiceRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListInvoices)
}

// RegisterTaskRoutes registers the task routes.
func (h *Handler) RegisterTaskRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListTasks)
}

// ListInvoices returns invoices with their derived overdue state.
func (h *Handler) ListInvoices(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	var req transport.ListInvoicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.ListInvoices(c.Request.Context(), id.GrantKey(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// ListTasks returns tasks with their derived overdue state.
func (h *Handler) ListTasks(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	var req transport.ListTasksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.ListTasks(c.Request.Context(), id.GrantKey(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
