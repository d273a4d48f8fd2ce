// Package httpapi is the JSON HTTP surface of the portfolio server: admin
// authentication, the content collections, image uploads and health.
package httpapi

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/dmitrijs2005/portfolio/internal/server/auth"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/dmitrijs2005/portfolio/internal/server/ratelimit"
	"github.com/dmitrijs2005/portfolio/internal/server/services"
)

// Authenticator is implemented by *services.AuthService.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	Verify(ctx context.Context, token string) (*auth.Identity, error)
}

// ImageStore is implemented by *storage.ImageStore.
type ImageStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (*models.Image, error)
	Delete(ctx context.Context, publicID string) error
}

// Pinger is implemented by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Deps are the collaborators behind the routes. Images, DB, Limiter and
// Metrics may be nil.
type Deps struct {
	Auth     Authenticator
	Catalogs *services.Catalogs
	Images   ImageStore
	DB       Pinger
	Limiter  ratelimit.Limiter
	Metrics  *Metrics
	Logger   logging.Logger
}

type Options struct {
	// Development adds error details to 500 responses.
	Development bool
	CORSOrigins []string
	// ExposeCredentials mounts GET /api/auth/credentials.
	ExposeCredentials bool
	AdminEmail        string
	AdminPassword     string
}

type handlers struct {
	Deps
	opts Options
	now  func() time.Time
}

// NewRouter assembles the API.
func NewRouter(d Deps, o Options) http.Handler {
	if d.Logger == nil {
		d.Logger = logging.Nop{}
	}
	h := &handlers{Deps: d, opts: o, now: time.Now}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
		r.Handle("/metrics", d.Metrics.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", h.health).Methods(http.MethodGet)

	a := api.PathPrefix("/auth").Subrouter()
	a.HandleFunc("/login", h.login).Methods(http.MethodPost)
	a.Handle("/verify", h.requireAuthFunc(h.verify)).Methods(http.MethodGet)
	a.Handle("/logout", h.requireAuthFunc(h.logout)).Methods(http.MethodPost)
	if o.ExposeCredentials {
		a.HandleFunc("/credentials", h.credentials).Methods(http.MethodGet)
	}

	if c := d.Catalogs; c != nil {
		registerCollection[models.Blog](api, h, "/blogs", "Blog", "Blogs", c.Blogs)
		registerCollection[models.Project](api, h, "/projects", "Project", "Projects", c.Projects)
		registerCollection[models.Education](api, h, "/education", "Education entry", "Education entries", c.Education)
		registerCollection[models.Experience](api, h, "/experience", "Experience entry", "Experience entries", c.Experience)
		registerCollection[models.Extracurricular](api, h, "/extracurricular", "Extracurricular activity", "Extracurricular activities", c.Extracurricular)
	}

	api.Handle("/upload", h.requireAuthFunc(h.uploadImage)).Methods(http.MethodPost)
	api.Handle("/upload", h.requireAuthFunc(h.deleteImage)).Methods(http.MethodDelete)

	var handler http.Handler = r
	handler = h.recoveryMiddleware(handler)
	handler = corsMiddleware(o.CORSOrigins)(handler)
	handler = loggingMiddleware(d.Logger.With("module", "http_access"))(handler)
	return handler
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeFail(w, http.StatusNotFound, "API endpoint not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeFail(w, http.StatusMethodNotAllowed, "Method not allowed")
}
