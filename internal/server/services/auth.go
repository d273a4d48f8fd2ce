// Package services contains server-side business logic: admin login and
// token verification, and CRUD over the portfolio collections.
package services

import (
	"context"
	"errors"
	"regexp"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/dmitrijs2005/portfolio/internal/server/auth"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CredentialStore is the subset of credentials.Store used for login.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	CheckPassword(admin *models.Admin, candidate string) bool
	DummyCheck(candidate string)
}

// TokenIssuer is implemented by *auth.Issuer.
type TokenIssuer interface {
	Issue(id auth.Identity) (string, error)
	Verify(token string) (*auth.Identity, error)
}

// LoginResult is returned on successful login.
type LoginResult struct {
	Token string        `json:"token"`
	User  auth.Identity `json:"user"`
}

// AuthService authenticates the administrator and verifies issued tokens.
type AuthService struct {
	store  CredentialStore
	tokens TokenIssuer
	logger logging.Logger
}

func NewAuthService(store CredentialStore, tokens TokenIssuer, logger logging.Logger) *AuthService {
	return &AuthService{store: store, tokens: tokens, logger: logger.With("module", "auth_service")}
}

// Login validates input, checks the password and mints a token. Unknown
// email and wrong password both yield common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, &common.ValidationError{Message: "Email and password are required"}
	}
	if !emailPattern.MatchString(email) {
		return nil, &common.ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}

	admin, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.store.DummyCheck(password)
			s.logger.Warn(ctx, "login failed", "reason", "unknown email")
			return nil, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "credential lookup failed", "error", err)
		return nil, common.ErrInternal
	}

	if !s.store.CheckPassword(admin, password) {
		s.logger.Warn(ctx, "login failed", "reason", "password mismatch")
		return nil, common.ErrInvalidCredentials
	}

	identity := auth.Identity{ID: admin.ID, Email: admin.Email, Role: admin.Role}
	token, err := s.tokens.Issue(identity)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err)
		return nil, common.ErrInternal
	}

	s.logger.Info(ctx, "admin logged in", "user_id", admin.ID)
	return &LoginResult{Token: token, User: identity}, nil
}

// Verify returns the identity in a valid token. Expired and malformed tokens
// are both reported as common.ErrUnauthorized wrapping the cause.
func (s *AuthService) Verify(_ context.Context, token string) (*auth.Identity, error) {
	if token == "" {
		return nil, common.ErrUnauthorized
	}
	id, err := s.tokens.Verify(token)
	if err != nil {
		return nil, errors.Join(common.ErrUnauthorized, err)
	}
	return id, nil
}
