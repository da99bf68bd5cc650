// Package contacts provides the contacts and lead scoring domain module.
package contacts

import (
	"sidebar_backend/internal/contacts/handler"
	"sidebar_backend/internal/contacts/service"
	apphttp "sidebar_backend/internal/http"
	"sidebar_backend/platform/validator"
)

// Module represents the contacts domain module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new contacts module with all dependencies wired.
func NewModule(src service.ContactSource, val *validator.Validator) *Module {
	svc := service.New(src)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "contacts"
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	contacts := ctx.Protected.Group("/contacts")
	m.handler.RegisterRoutes(contacts)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
