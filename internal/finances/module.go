// Package finances provides the invoices and tasks domain module.
package finances

import (
	"sidebar_backend/internal/finances/handler"
	"sidebar_backend/internal/finances/service"
	apphttp "sidebar_backend/internal/http"
	"sidebar_backend/platform/validator"
)

// Module represents the finances domain module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new finances module with all dependencies wired.
func NewModule(src service.FinanceSource, val *validator.Validator) *Module {
	svc := service.New(src)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "finances"
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterInvoiceRoutes(ctx.Protected.Group("/invoices"))
	m.handler.RegisterTaskRoutes(ctx.Protected.Group("/tasks"))
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
