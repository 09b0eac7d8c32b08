// Package cli is the portal's interactive front end: a terminal rendition of
// the signup/login forms and the dashboard, timetable and results pages. It
// only calls the auth service and renders what comes back; all data rules
// live below it.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dkamau/studentportal/internal/auth"
	"github.com/dkamau/studentportal/internal/config"
	"github.com/dkamau/studentportal/internal/logging"
	"github.com/dkamau/studentportal/internal/session"
	"github.com/dkamau/studentportal/internal/storage"
	"github.com/dkamau/studentportal/internal/users"

	_ "modernc.org/sqlite"
)

type App struct {
	config      *config.Config
	authService auth.Service
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.Default()

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	store := storage.NewTxStore(db)
	svc := auth.NewService(
		users.NewStoreRepository(store, log),
		session.NewStoreManager(store, log, cfg.SessionWithEmail),
	)

	return &App{
		config:      cfg,
		authService: svc,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

// isLoggedIn consults the durable session record, the sole authority for
// login state. Errors read as logged out.
func (a *App) isLoggedIn() bool {
	current, err := a.authService.CurrentUser(context.Background())
	return err == nil && current != nil
}
