// Package estimates provides the estimate generation domain module.
package estimates

import (
	"sidebar_backend/internal/estimates/handler"
	"sidebar_backend/internal/estimates/service"
	apphttp "sidebar_backend/internal/http"
	"sidebar_backend/platform/validator"
)

// Module represents the estimates domain module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new estimates module with all dependencies wired.
func NewModule(val *validator.Validator) *Module {
	svc := service.New()
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "estimates"
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	estimates := ctx.Protected.Group("/estimates")
	m.handler.RegisterRoutes(estimates)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
