// Package services contains application services for the folio client.
// This file holds the authentication service: login against the API,
// local persistence of the session and the expiry checks built on it.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/portfolio/internal/client/client"
	"github.com/dmitrijs2005/portfolio/internal/client/models"
	"github.com/dmitrijs2005/portfolio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

const (
	msgLoginSuccess = "Login successful"
	msgLoginFailed  = "Login failed"
	msgNetworkError = "Network error. Please check your connection."
	msgSaveFailed   = "Could not save session locally"
)

// Result is the outcome of a login attempt. Rejected credentials are a
// normal result, not an error.
type Result struct {
	Success bool
	Message string
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist token and user.
//   - Logout: tell the server (best effort) and always clear local state.
//   - VerifyToken: check the stored token locally, then with the server;
//     any failure clears local state.
//   - IsAuthenticated: local check only, token present and not expired.
type AuthService interface {
	Login(ctx context.Context, email, password string) Result
	Logout(ctx context.Context) error
	VerifyToken(ctx context.Context) bool
	IsAuthenticated(ctx context.Context) bool
	Token(ctx context.Context) (string, error)
	User(ctx context.Context) (*models.User, error)
}

type authService struct {
	client client.Client
	db     *sql.DB
	logger logging.Logger
	now    func() time.Time
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(c client.Client, db *sql.DB, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &authService{client: c, db: db, logger: logger, now: time.Now}
}

func (a *authService) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

func (a *authService) Login(ctx context.Context, email, password string) Result {
	s, err := a.client.Login(ctx, email, password)
	if err != nil {
		var apiErr *client.APIError
		switch {
		case errors.As(err, &apiErr):
			return Result{Message: apiErr.Error()}
		case errors.Is(err, client.ErrUnavailable):
			a.logger.Debug(ctx, "login request failed", "error", err)
			return Result{Message: msgNetworkError}
		default:
			a.logger.Warn(ctx, "login request failed", "error", err)
			return Result{Message: msgLoginFailed}
		}
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := metadata.NewSQLiteRepository(tx)
		if err := r.Set(ctx, metadata.KeyAuthToken, []byte(s.Token)); err != nil {
			return err
		}
		return metadata.SetJSON(ctx, r, metadata.KeyAuthUser, s.User)
	})
	if err != nil {
		a.logger.Error(ctx, "failed to save session", "error", err)
		return Result{Message: msgSaveFailed}
	}

	return Result{Success: true, Message: msgLoginSuccess}
}

func (a *authService) Logout(ctx context.Context) error {
	token, err := a.Token(ctx)
	if err != nil {
		a.logger.Warn(ctx, "failed to read token", "error", err)
	}
	if token != "" {
		if err := a.client.Logout(ctx, token); err != nil {
			a.logger.Debug(ctx, "logout request failed", "error", err)
		}
	}
	return a.clear(ctx)
}

func (a *authService) VerifyToken(ctx context.Context) bool {
	token, err := a.Token(ctx)
	if err != nil || token == "" {
		return false
	}

	if !a.notExpired(token) {
		a.clearQuietly(ctx)
		return false
	}

	user, err := a.client.Verify(ctx, token)
	if err != nil {
		a.logger.Debug(ctx, "token verification failed", "error", err)
		a.clearQuietly(ctx)
		return false
	}

	if err := metadata.SetJSON(ctx, a.repo(), metadata.KeyAuthUser, user); err != nil {
		a.logger.Warn(ctx, "failed to refresh stored user", "error", err)
	}
	return true
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	token, err := a.Token(ctx)
	if err != nil || token == "" {
		return false
	}
	return a.notExpired(token)
}

// Token returns the stored token, or "" when there is none.
func (a *authService) Token(ctx context.Context) (string, error) {
	raw, err := a.repo().Get(ctx, metadata.KeyAuthToken)
	if errors.Is(err, metadata.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// User returns the stored user, or nil when there is none.
func (a *authService) User(ctx context.Context) (*models.User, error) {
	var u models.User
	err := metadata.GetJSON(ctx, a.repo(), metadata.KeyAuthUser, &u)
	if errors.Is(err, metadata.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// notExpired decodes exp without checking the signature; the server
// remains the authority.
func (a *authService) notExpired(token string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.After(a.now())
}

func (a *authService) clear(ctx context.Context) error {
	return a.repo().Delete(ctx, metadata.KeyAuthToken, metadata.KeyAuthUser)
}

func (a *authService) clearQuietly(ctx context.Context) {
	if err := a.clear(ctx); err != nil {
		a.logger.Warn(ctx, "failed to clear session", "error", err)
	}
}
