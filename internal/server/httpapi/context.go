package httpapi

import (
	"context"

	"github.com/dmitrijs2005/portfolio/internal/server/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// WithIdentity stores the authenticated admin in ctx.
func WithIdentity(ctx context.Context, id *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom returns the admin stored by the bearer middleware, or nil.
func IdentityFrom(ctx context.Context) *auth.Identity {
	id, _ := ctx.Value(identityKey).(*auth.Identity)
	return id
}
