// Package server wires configuration, storage and transports into the
// portfolio API process and runs it until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/dmitrijs2005/portfolio/internal/server/auth"
	"github.com/dmitrijs2005/portfolio/internal/server/config"
	"github.com/dmitrijs2005/portfolio/internal/server/credentials"
	"github.com/dmitrijs2005/portfolio/internal/server/httpapi"
	"github.com/dmitrijs2005/portfolio/internal/server/ratelimit"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/portfolio/internal/server/services"
	"github.com/dmitrijs2005/portfolio/internal/server/storage"

	gs "github.com/dmitrijs2005/portfolio/internal/server/grpc"
)

var logOutput io.Writer = os.Stdout

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	redis   *redis.Client
	handler http.Handler
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, logOutput)
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &App{config: c, logger: logger}

	store := credentials.NewStore(credentials.DefaultCost)
	admin, err := store.Initialize(ctx, c.AdminEmail, c.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("admin init error: %w", err)
	}
	logger.Info(ctx, "Admin user initialized", "email", admin.Email)

	issuer, err := auth.NewIssuer(c.SecretKey, c.TokenValidityDuration)
	if err != nil {
		return nil, err
	}

	rm, err := app.initRepositories(ctx)
	if err != nil {
		return nil, err
	}

	deps := httpapi.Deps{
		Auth:     services.NewAuthService(store, issuer, logger),
		Catalogs: services.NewCatalogs(app.db, rm, c.RevalidateInterval),
		Limiter:  app.initLimiter(ctx),
		Metrics:  httpapi.NewMetrics(),
		Logger:   logger,
	}
	if app.db != nil {
		deps.DB = app.db
	}

	images, err := storage.NewImageStore(ctx, storage.Config{
		Bucket:        c.S3Bucket,
		Region:        c.S3Region,
		BaseEndpoint:  c.S3BaseEndpoint,
		AccessKey:     c.S3AccessKey,
		SecretKey:     c.S3SecretKey,
		PublicBaseURL: c.S3PublicBaseURL,
	})
	switch {
	case err == nil:
		deps.Images = images
	case storage.IsDisabled(err):
		logger.Info(ctx, "image uploads disabled: no bucket configured")
	default:
		app.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	app.handler = httpapi.NewRouter(deps, httpapi.Options{
		Development:       c.Environment == config.EnvDevelopment,
		CORSOrigins:       c.CORSOrigins,
		ExposeCredentials: c.CredentialsEndpointEnabled(),
		AdminEmail:        c.AdminEmail,
		AdminPassword:     c.AdminPassword,
	})

	return app, nil
}

func (app *App) initRepositories(ctx context.Context) (repomanager.RepositoryManager, error) {
	if app.config.DatabaseDSN == "" {
		app.logger.Warn(ctx, "DATABASE_DSN is empty, content is kept in memory")
		return repomanager.NewMemoryRepositoryManager(), nil
	}

	db, err := repomanager.OpenPostgres(ctx, app.config.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	app.db = db

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}
	return rm, nil
}

func (app *App) initLimiter(ctx context.Context) ratelimit.Limiter {
	cfg := ratelimit.Config{Requests: app.config.LoginRateLimit, Window: time.Minute}
	if app.config.RedisAddr == "" {
		return ratelimit.NewMemory(cfg)
	}

	app.redis = redis.NewClient(&redis.Options{Addr: app.config.RedisAddr})
	if err := app.redis.Ping(ctx).Err(); err != nil {
		app.logger.Warn(ctx, "redis unreachable, login limiter will fail open", "error", err)
	}
	return ratelimit.NewRedis(app.redis, cfg, "portfolio:login")
}

// Handler exposes the HTTP API.
func (app *App) Handler() http.Handler { return app.handler }

// Close releases the database and Redis connections.
func (app *App) Close() error {
	var errs []error
	if app.db != nil {
		errs = append(errs, app.db.Close())
	}
	if app.redis != nil {
		errs = append(errs, app.redis.Close())
	}
	if s, ok := app.logger.(*logging.ZapLogger); ok {
		_ = s.Sync()
	}
	return errors.Join(errs...)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.handler, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	var checker gs.Checker
	if app.db != nil {
		checker = app.db
	}
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, checker)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves HTTP and gRPC until ctx is cancelled, a signal arrives or a
// server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.Close(); err != nil {
		app.logger.Error(ctx, "shutdown error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
