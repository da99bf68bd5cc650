// Package proxy forwards raw GraphQL requests to the JobTread API under the
// caller's session credentials.
package proxy

import (
	"encoding/json"
	"net/http"

	apphttp "sidebar_backend/internal/http"
	"sidebar_backend/platform/httpkit"
	"sidebar_backend/platform/jobtread"

	"github.com/gin-gonic/gin"
)

// maxQueryBytes bounds the accepted request body. Dashboard queries are a
// few KB at most.
const maxQueryBytes = 1 << 20

// Module represents the raw query passthrough module.
type Module struct {
	client *jobtread.Client
}

// NewModule creates a new proxy module.
func NewModule(client *jobtread.Client) *Module {
	return &Module{client: client}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "proxy"
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/jobtread/query", m.Query)
}

// Query forwards the request body to the upstream GraphQL API verbatim and
// returns the upstream response body verbatim. No reshaping happens here;
// the caller gets exactly what the upstream said.
func (m *Module) Query(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	body, err := readBody(c)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	result, err := m.client.Forward(c.Request.Context(), id.GrantKey(), body)
	if httpkit.HandleError(c, err) {
		return
	}

	c.Data(http.StatusOK, "application/json", result)
}

func readBody(c *gin.Context) (json.RawMessage, error) {
	var body json.RawMessage
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxQueryBytes)
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
