// Package service implements session issuance against JobTread credentials.
package service

import (
	"context"
	"time"

	"sidebar_backend/internal/auth/transport"
	"sidebar_backend/internal/domain"
	"sidebar_backend/platform/apperr"
	"sidebar_backend/platform/config"
	"sidebar_backend/platform/jobtread"
	"sidebar_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialVerifier validates a grant key by fetching the user it belongs to.
type CredentialVerifier interface {
	Me(ctx context.Context, grantKey string) (jobtread.RawUser, error)
}

// Service issues and describes sessions. There is no local user store: the
// credential of record is the JobTread grant key, and the session token is
// a signed wrapper around it.
type Service struct {
	verifier CredentialVerifier
	cfg      config.SessionConfig
	log      *logger.Logger
}

// New creates the auth service.
func New(verifier CredentialVerifier, cfg config.SessionConfig, log *logger.Logger) *Service {
	return &Service{verifier: verifier, cfg: cfg, log: log}
}

// Login validates the grant key against the JobTread API and, on success,
// returns a signed session token embedding the key. An unreachable upstream
// is reported as such, never silently accepted.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (transport.LoginResponse, error) {
	rawUser, err := s.verifier.Me(ctx, req.GrantKey)
	if err != nil {
		if apperr.Is(err, apperr.KindUnauthorized) {
			s.log.AuthEvent("login", req.Email, false, "credential rejected")
			return transport.LoginResponse{}, apperr.Unauthorized("invalid JobTread credentials")
		}
		s.log.AuthEvent("login", req.Email, false, "upstream failure")
		return transport.LoginResponse{}, err
	}
	if rawUser.ID == "" {
		s.log.AuthEvent("login", req.Email, false, "no user for credential")
		return transport.LoginResponse{}, apperr.Unauthorized("invalid JobTread credentials")
	}

	user := domain.NormalizeUser(rawUser)
	if user.Email == "" {
		user.Email = req.Email
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.GetSessionTTL())
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"org":   user.Organization,
		"grant": req.GrantKey,
		"type":  "session",
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.GetSessionSecret()))
	if err != nil {
		return transport.LoginResponse{}, apperr.Wrap(apperr.KindInternal, "failed to sign session token", err)
	}

	s.log.AuthEvent("login", user.Email, true, "")
	return transport.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: transport.UserResponse{
			ID:           user.ID,
			Email:        user.Email,
			Name:         user.Name,
			Organization: user.Organization,
		},
	}, nil
}
