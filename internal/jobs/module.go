// Package jobs provides the jobs domain module.
package jobs

import (
	apphttp "sidebar_backend/internal/http"
	"sidebar_backend/internal/jobs/handler"
	"sidebar_backend/internal/jobs/service"
	"sidebar_backend/internal/snapshot"
	"sidebar_backend/platform/validator"
)

// Module represents the jobs domain module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new jobs module with all dependencies wired.
func NewModule(src service.JobSource, loader *snapshot.Loader, val *validator.Validator) *Module {
	svc := service.New(src, loader)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "jobs"
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	jobs := ctx.Protected.Group("/jobs")
	m.handler.RegisterRoutes(jobs)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
