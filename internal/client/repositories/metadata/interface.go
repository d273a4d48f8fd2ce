// Package metadata keeps small key/value records in the client's local
// database. The CLI stores its session here.
package metadata

import (
	"context"
	"errors"
)

// Session keys.
const (
	KeyAuthToken = "auth_token"
	KeyAuthUser  = "auth_user"
)

var ErrNotFound = errors.New("metadata key not found")

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
