// Package auth provides the session authentication domain module.
package auth

import (
	"sidebar_backend/internal/auth/handler"
	"sidebar_backend/internal/auth/service"
	apphttp "sidebar_backend/internal/http"
	"sidebar_backend/platform/config"
	"sidebar_backend/platform/logger"
	"sidebar_backend/platform/validator"
)

// Module represents the auth domain module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new auth module with all dependencies wired.
func NewModule(verifier service.CredentialVerifier, cfg config.SessionConfig, log *logger.Logger, val *validator.Validator) *Module {
	svc := service.New(verifier, cfg, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "auth"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes. Login gets the stricter
// auth rate limiter.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	public := ctx.V1.Group("/auth", ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(public)

	protected := ctx.Protected.Group("/auth")
	m.handler.RegisterProtectedRoutes(protected)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
