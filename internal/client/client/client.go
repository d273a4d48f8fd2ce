package client

import (
	"context"
	"encoding/json"
	"io"
	"net/url"

	"github.com/dmitrijs2005/portfolio/internal/client/models"
)

// Client is the portfolio API as seen by the CLI. Content payloads are
// passed through as raw JSON.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Verify(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
	Health(ctx context.Context) (*models.Health, error)

	List(ctx context.Context, collection string, query url.Values) (json.RawMessage, error)
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)
	Create(ctx context.Context, token, collection string, body json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, token, collection, id string, body json.RawMessage) (json.RawMessage, error)
	Delete(ctx context.Context, token, collection, id string) error

	UploadImage(ctx context.Context, token, folder, filename string, r io.Reader) (*models.Image, error)
	DeleteImage(ctx context.Context, token, publicID string) error
}
