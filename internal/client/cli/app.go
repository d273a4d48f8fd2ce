package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dmitrijs2005/portfolio/internal/client/client"
	"github.com/dmitrijs2005/portfolio/internal/client/config"
	"github.com/dmitrijs2005/portfolio/internal/client/services"
	"github.com/dmitrijs2005/portfolio/internal/client/session"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

// App holds the CLI's dependencies. They are wired in Open, after flags
// have been parsed into config.
type App struct {
	config     *config.Config
	configFile string

	in     *bufio.Reader
	inFd   int
	out    io.Writer
	errOut io.Writer

	verbose bool
	logger  logging.Logger

	db      *sql.DB
	api     client.Client
	auth    services.AuthService
	session *session.Context
	guard   *session.Guard

	openDB    func(ctx context.Context, path string) (*sql.DB, error)
	newClient func(cfg *config.Config) client.Client
}

func NewApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
		in:     bufio.NewReader(os.Stdin),
		inFd:   int(os.Stdin.Fd()),
		out:    os.Stdout,
		errOut: os.Stderr,
		logger: logging.Nop{},
		openDB: client.InitDatabase,
		newClient: func(cfg *config.Config) client.Client {
			return client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout)
		},
	}
}

// Open creates the logger, local database, API client and session.
func (a *App) Open(ctx context.Context) error {
	if a.verbose {
		l, err := logging.New(logging.BackendSlog, a.errOut)
		if err != nil {
			return err
		}
		a.logger = l.With("module", "cli")
	}

	db, err := a.openDB(ctx, a.config.DatabasePath)
	if err != nil {
		return err
	}
	a.db = db
	a.api = a.newClient(a.config)
	a.auth = services.NewAuthService(a.api, db, a.logger)
	a.session = session.New(a.auth)
	a.guard = session.NewGuard(a.session, "")

	a.session.OnChange(func(s session.Snapshot) {
		a.logger.Debug(ctx, "session state changed", "state", s.State.String())
	})
	return nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
