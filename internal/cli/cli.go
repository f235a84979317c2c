package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/thenoetrevino/tasklist/internal/app"
	"github.com/thenoetrevino/tasklist/internal/config"
	"github.com/thenoetrevino/tasklist/internal/models"
	"github.com/thenoetrevino/tasklist/internal/tasklist"
)

var errTaskRef = errors.New("no such task")

// CLI represents the CLI application context
type CLI struct {
	App  *app.App
	List *tasklist.Controller
}

// NewCLI opens the store described by cfg and loads the list
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.Open(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to open task store: %w", err)
	}

	list := application.NewController(tasklist.NopDisplay{})
	if err := list.Refresh(ctx); err != nil {
		_ = application.Close(ctx)
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	return &CLI{App: application, List: list}, nil
}

// Close flushes pending changes and releases the store
func (c *CLI) Close(ctx context.Context) error {
	return c.App.Close(ctx)
}

// Resolve finds a task by 1-based row number, full id, or unique id prefix.
// It returns the task and its 1-based position.
func (c *CLI) Resolve(ref string) (*models.Task, int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, 0, fmt.Errorf("%w: empty reference", errTaskRef)
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if task := c.List.At(n - 1); task != nil {
			return task, n, nil
		}
		return nil, 0, fmt.Errorf("%w: row %d (list has %d)", errTaskRef, n, c.List.Len())
	}

	var (
		match    *models.Task
		position int
	)
	for i, task := range c.List.Tasks() {
		if task.ID == ref {
			return task, i + 1, nil
		}
		if strings.HasPrefix(task.ID, ref) {
			if match != nil {
				return nil, 0, fmt.Errorf("%w: id prefix %q is ambiguous", errTaskRef, ref)
			}
			match, position = task, i+1
		}
	}
	if match == nil {
		return nil, 0, fmt.Errorf("%w: %q", errTaskRef, ref)
	}
	return match, position, nil
}
