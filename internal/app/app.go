package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tasklist/internal/config"
	"github.com/thenoetrevino/tasklist/internal/database"
	"github.com/thenoetrevino/tasklist/internal/store"
	"github.com/thenoetrevino/tasklist/internal/tasklist"
)

// App owns the database handle and the task store for the life of the process.
// Surfaces (TUI, CLI) borrow the store through NewController.
type App struct {
	db     *sql.DB
	Store  *store.Store
	logger *slog.Logger
}

// Open initializes the durable medium and the store described by cfg.
// If the medium cannot be opened or read the error wraps store.ErrStoreUnavailable,
// leaving termination to the caller.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	ac := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(ac)
	}

	mode, err := store.ParseWriteMode(cfg.Store.WriteMode)
	if err != nil {
		return nil, err
	}

	db := ac.db
	if db == nil {
		db, err = database.InitDB(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrStoreUnavailable, err)
		}
	}

	s, err := store.Open(ctx, database.NewTaskRepo(db),
		store.WithWriteMode(mode),
		store.WithLogger(ac.logger),
	)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			ac.logger.Error("error closing db", "error", closeErr)
		}
		return nil, err
	}

	return &App{db: db, Store: s, logger: ac.logger}, nil
}

// NewController creates a list controller backed by the app's store
func (a *App) NewController(display tasklist.Display) *tasklist.Controller {
	return tasklist.New(a.Store, display, tasklist.WithLogger(a.logger))
}

// Background is the lifecycle hook for the application leaving the foreground.
// Buffered changes are committed so nothing is lost if the process is killed.
func (a *App) Background(ctx context.Context) error {
	if err := a.Store.Flush(ctx); err != nil {
		a.logger.Error("failed to save tasks on background", "error", err)
		return err
	}
	return nil
}

// Close flushes outstanding changes and releases the database
func (a *App) Close(ctx context.Context) error {
	flushErr := a.Background(ctx)
	closeErr := a.db.Close()
	return errors.Join(flushErr, closeErr)
}
