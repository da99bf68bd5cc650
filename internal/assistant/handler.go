// Package assistant builds data-grounded chat replies from the account
// snapshot using keyword-routed report templates.
package assistant

import (
	"net/http"
	"time"

	apphttp "sidebar_backend/internal/http"
	"sidebar_backend/internal/snapshot"
	"sidebar_backend/platform/httpkit"
	"sidebar_backend/platform/sanitize"
	"sidebar_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// ChatRequest is the request body for the assistant endpoint.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ChatResponse is an assistant reply.
type ChatResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Module represents the assistant domain module.
type Module struct {
	loader *snapshot.Loader
	val    *validator.Validator
}

// NewModule creates a new assistant module.
func NewModule(loader *snapshot.Loader, val *validator.Validator) *Module {
	return &Module{loader: loader, val: val}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "assistant"
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/assistant/chat", m.Chat)
}

// Chat answers a message using the current account snapshot. Snapshot reads
// degrade to empty sections rather than failing the reply, so the assistant
// stays responsive when part of the upstream account is unavailable.
func (m *Module) Chat(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := m.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}
	message := sanitize.Text(req.Message)

	snap := m.loader.LoadDegraded(c.Request.Context(), id.GrantKey())
	now := time.Now()

	httpkit.OK(c, ChatResponse{
		Role:      "assistant",
		Content:   Respond(message, snap, now),
		Timestamp: now.UTC(),
	})
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
