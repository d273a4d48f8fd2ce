package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/dmitrijs2005/portfolio/internal/server/auth"
	"github.com/dmitrijs2005/portfolio/internal/server/credentials"
)

func newTestAuthService(t *testing.T) (*AuthService, *auth.Issuer) {
	t.Helper()
	store := credentials.NewStore(bcrypt.MinCost)
	_, err := store.Initialize(context.Background(), "admin@example.com", "s3cret")
	require.NoError(t, err)

	issuer, err := auth.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	return NewAuthService(store, issuer, logging.Nop{}), issuer
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, issuer := newTestAuthService(t)

	res, err := svc.Login(context.Background(), "admin@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, auth.Identity{ID: credentials.AdminID, Email: "admin@example.com", Role: common.RoleAdmin}, res.User)

	id, err := issuer.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User, *id)
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc, _ := newTestAuthService(t)

	tests := []struct {
		name     string
		email    string
		password string
		msg      string
	}{
		{"missing email", "", "x", "Email and password are required"},
		{"missing password", "admin@example.com", "", "Email and password are required"},
		{"bad email", "not-an-email", "x", "Please enter a valid email address"},
		{"email with space", "ad min@example.com", "x", "Please enter a valid email address"},
		{"leading space", " admin@example.com", "x", "Please enter a valid email address"},
		{"trailing space", "admin@example.com ", "x", "Please enter a valid email address"},
		{"blank email", "   ", "x", "Please enter a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			var ve *common.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.msg, ve.Message)
		})
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "other@example.com", "s3cret")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	// lookup is case sensitive
	_, err = svc.Login(context.Background(), "Admin@example.com", "s3cret")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthService_Verify(t *testing.T) {
	svc, issuer := newTestAuthService(t)

	token, err := issuer.Issue(auth.Identity{ID: "admin-1", Email: "a@b.c", Role: "admin"})
	require.NoError(t, err)

	id, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", id.Email)

	_, err = svc.Verify(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = svc.Verify(context.Background(), "garbage")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
