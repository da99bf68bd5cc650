// Package transport defines the auth module's request and response shapes.
package transport

import "time"

// LoginRequest is the request body for credential login. The grant key is
// the user's JobTread API credential; it is validated upstream before a
// session is issued.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	GrantKey string `json:"grantKey" validate:"required,min=8"`
}

// UserResponse is the session user's profile.
type UserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
}

// LoginResponse is the successful login payload.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
