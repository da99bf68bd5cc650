// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Identity represents the authenticated user's identity.
// This interface abstracts identity extraction from the web framework,
// allowing handlers to access user information without depending on Gin.
type Identity interface {
	// UserID returns the JobTread user ID from the session.
	UserID() string
	// Email returns the user's email address.
	Email() string
	// Name returns the user's display name.
	Name() string
	// Organization returns the user's organization name, if any.
	Organization() string
	// GrantKey returns the opaque JobTread credential attached to every
	// upstream request.
	GrantKey() string
	// IsAuthenticated returns true if the user is authenticated.
	IsAuthenticated() bool
}

// identity is the concrete implementation of Identity.
type identity struct {
	userID        string
	email         string
	name          string
	organization  string
	grantKey      string
	authenticated bool
}

func (i *identity) UserID() string       { return i.userID }
func (i *identity) Email() string        { return i.email }
func (i *identity) Name() string         { return i.name }
func (i *identity) Organization() string { return i.organization }
func (i *identity) GrantKey() string     { return i.grantKey }
func (i *identity) IsAuthenticated() bool {
	return i.authenticated
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	userID := c.GetString(ContextUserIDKey)
	grantKey := c.GetString(ContextGrantKeyKey)

	if userID == "" || grantKey == "" {
		return &identity{authenticated: false}
	}

	return &identity{
		userID:        userID,
		email:         c.GetString(ContextUserEmailKey),
		name:          c.GetString(ContextUserNameKey),
		organization:  c.GetString(ContextOrganizationKey),
		grantKey:      grantKey,
		authenticated: true,
	}
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the user is not authenticated, it aborts with 401 Unauthorized and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}
	return id
}
