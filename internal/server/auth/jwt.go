// Package auth issues and verifies the signed session tokens handed to the
// administrator after a successful login.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// ErrSecretNotConfigured is returned by NewIssuer for an empty secret.
var ErrSecretNotConfigured = errors.New("jwt secret is not configured")

// Identity is the subject carried by a token.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Claims are the registered claims plus the admin identity.
type Claims struct {
	jwt.RegisteredClaims
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Issuer signs and verifies HS256 tokens with a single shared secret.
// There is no revocation: a token stays valid until it expires.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrSecretNotConfigured
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL is the lifetime of newly issued tokens.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue signs a token for id with iat=now and exp=now+ttl.
func (i *Issuer) Issue(id Identity) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		ID:    id.ID,
		Email: id.Email,
		Role:  id.Role,
	})

	return token.SignedString(i.secret)
}

// Verify checks signature, algorithm and expiry and returns the identity.
// Errors are common.ErrTokenExpired or common.ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.ID == "" {
		return nil, common.ErrInvalidToken
	}

	return &Identity{ID: claims.ID, Email: claims.Email, Role: claims.Role}, nil
}
