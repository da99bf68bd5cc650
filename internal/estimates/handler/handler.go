// Package handler exposes the estimates module's HTTP endpoints.
package handler

import (
	"net/http"
	"time"

	"sidebar_backend/internal/estimates/service"
	"sidebar_backend/internal/estimates/transport"
	"sidebar_backend/platform/httpkit"
	"sidebar_backend/platform/sanitize"
	"sidebar_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for estimate generation.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new estimates handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the estimate routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.Generate)
}

// Generate builds a line-item estimate from the project parameters.
func (h *Handler) Generate(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	var req transport.GenerateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}
	req.Description = sanitize.Text(req.Description)

	result, err := h.svc.Generate(req, time.Now())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
