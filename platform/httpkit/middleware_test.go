package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type sessionConfig struct {
	secret string
	ttl    time.Duration
}

func (c sessionConfig) GetSessionSecret() string     { return c.secret }
func (c sessionConfig) GetSessionTTL() time.Duration { return c.ttl }

var testCfg = sessionConfig{secret: "test-secret", ttl: time.Hour}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func sessionClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":   "u1",
		"email": "dana@example.com",
		"name":  "Dana Reed",
		"org":   "Reed Roofing",
		"grant": "grant-key-123",
		"type":  "session",
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *Identity) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var captured Identity
	engine := gin.New()
	engine.GET("/protected", AuthRequired(testCfg), func(c *gin.Context) {
		captured = GetIdentity(c)
		c.Status(http.StatusOK)
	})
	return engine, &captured
}

func doRequest(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequiredAcceptsValidSession(t *testing.T) {
	engine, captured := newAuthTestRouter(t)
	token := signToken(t, testCfg.secret, sessionClaims())

	rec := doRequest(engine, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	id := *captured
	if !id.IsAuthenticated() {
		t.Fatal("expected an authenticated identity")
	}
	if id.UserID() != "u1" || id.GrantKey() != "grant-key-123" {
		t.Fatalf("unexpected identity: %s/%s", id.UserID(), id.GrantKey())
	}
	if id.Email() != "dana@example.com" || id.Organization() != "Reed Roofing" {
		t.Fatalf("unexpected identity details: %s/%s", id.Email(), id.Organization())
	}
}

func TestAuthRequiredRejectsMissingHeader(t *testing.T) {
	engine, _ := newAuthTestRouter(t)

	if rec := doRequest(engine, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", rec.Code)
	}
	if rec := doRequest(engine, "Basic abc123"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-bearer scheme, got %d", rec.Code)
	}
}

func TestAuthRequiredRejectsWrongSecret(t *testing.T) {
	engine, _ := newAuthTestRouter(t)
	token := signToken(t, "other-secret", sessionClaims())

	if rec := doRequest(engine, "Bearer "+token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for token signed with wrong secret, got %d", rec.Code)
	}
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	engine, _ := newAuthTestRouter(t)
	claims := sessionClaims()
	claims["exp"] = time.Now().Add(-time.Minute).Unix()
	token := signToken(t, testCfg.secret, claims)

	if rec := doRequest(engine, "Bearer "+token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}

func TestAuthRequiredRejectsNonSessionToken(t *testing.T) {
	engine, _ := newAuthTestRouter(t)
	claims := sessionClaims()
	claims["type"] = "refresh"
	token := signToken(t, testCfg.secret, claims)

	if rec := doRequest(engine, "Bearer "+token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-session token, got %d", rec.Code)
	}
}

func TestAuthRequiredRejectsMissingGrant(t *testing.T) {
	engine, _ := newAuthTestRouter(t)
	claims := sessionClaims()
	delete(claims, "grant")
	token := signToken(t, testCfg.secret, claims)

	if rec := doRequest(engine, "Bearer "+token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for token without a grant key, got %d", rec.Code)
	}
}
