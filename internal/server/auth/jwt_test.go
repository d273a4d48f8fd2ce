package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var admin = Identity{ID: "admin-1", Email: "admin@example.com", Role: common.RoleAdmin}

func newIssuer(t *testing.T, secret string, ttl time.Duration) *Issuer {
	t.Helper()
	i, err := NewIssuer(secret, ttl)
	require.NoError(t, err)
	return i
}

func TestNewIssuer_EmptySecret(t *testing.T) {
	_, err := NewIssuer("", time.Hour)
	require.ErrorIs(t, err, ErrSecretNotConfigured)
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	i := newIssuer(t, "super-secret", 7*24*time.Hour)

	tok, err := i.Issue(admin)
	require.NoError(t, err)

	got, err := i.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, admin, *got)
}

func TestIssue_ClaimsShape(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	i := newIssuer(t, "k", 7*24*time.Hour)
	i.now = func() time.Time { return fixed }

	tok, err := i.Issue(admin)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)

	assert.Equal(t, "admin-1", claims["id"])
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
	assert.EqualValues(t, fixed.Unix(), claims["iat"])
	assert.EqualValues(t, fixed.Add(7*24*time.Hour).Unix(), claims["exp"])
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	i := newIssuer(t, "secret", time.Hour)
	i.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := i.Issue(admin)
	require.NoError(t, err)

	i.now = time.Now
	_, err = i.Verify(tok)
	require.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newIssuer(t, "right-secret", time.Hour).Issue(admin)
	require.NoError(t, err)

	_, err = newIssuer(t, "wrong-secret", time.Hour).Verify(tok)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	i := newIssuer(t, "secret", time.Hour)
	tok, err := i.Issue(admin)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	other, err := i.Issue(Identity{ID: "someone", Email: "x@y.z", Role: "admin"})
	require.NoError(t, err)
	parts[1] = strings.Split(other, ".")[1]

	_, err = i.Verify(strings.Join(parts, "."))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		ID:               "admin-1",
	})
	s, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = newIssuer(t, "secret", time.Hour).Verify(s)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_MissingExpiry(t *testing.T) {
	t.Parallel()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: "admin-1"})
	s, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = newIssuer(t, "secret", time.Hour).Verify(s)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := newIssuer(t, "k", time.Hour).Verify("not.a.jwt")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
