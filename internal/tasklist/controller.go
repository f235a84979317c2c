// Package tasklist keeps an ordered, display-ready list of tasks in step with the store
package tasklist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/tasklist/internal/models"
)

// Store is the persistence surface the controller drives
type Store interface {
	LoadAll(ctx context.Context) ([]*models.Task, error)
	Create(ctx context.Context, title string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task, title string) (*models.Task, error)
	Delete(ctx context.Context, task *models.Task) error
}

// State of the displayed list
type State int

const (
	StateEmpty State = iota
	StateLoaded
)

func (s State) String() string {
	if s == StateLoaded {
		return "loaded"
	}
	return "empty"
}

// Option is a functional option for configuring a Controller
type Option func(*Controller)

// WithLogger sets the logger for abandoned intents
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller mirrors the store as an ordered slice and reports row-level deltas.
// It is meant to be driven from a single goroutine (the UI loop).
type Controller struct {
	store   Store
	display Display
	logger  *slog.Logger
	tasks   []*models.Task
	state   State
}

// New creates a controller. A nil display is replaced by NopDisplay.
func New(store Store, display Display, opts ...Option) *Controller {
	if display == nil {
		display = NopDisplay{}
	}
	c := &Controller{
		store:   store,
		display: display,
		logger:  slog.Default(),
		tasks:   []*models.Task{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetDisplay swaps the notification target; used when the UI is built after the controller
func (c *Controller) SetDisplay(display Display) {
	if display == nil {
		display = NopDisplay{}
	}
	c.display = display
}

// Refresh replaces the cached list with the store's enumeration and signals a full reload.
// A read failure leaves an empty list; the error is logged and returned.
func (c *Controller) Refresh(ctx context.Context) error {
	tasks, err := c.store.LoadAll(ctx)
	if err != nil {
		c.logger.Error("failed to load tasks", "error", err)
		tasks = []*models.Task{}
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}

	c.tasks = tasks
	c.state = StateLoaded
	c.display.Reload()
	return err
}

// AddTask creates a task and appends it to the end of the list
func (c *Controller) AddTask(ctx context.Context, title string) (*models.Task, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	task, err := c.store.Create(ctx, title)
	if err != nil {
		c.logger.Warn("add task abandoned", "error", err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	c.tasks = append(c.tasks, task)
	c.state = StateLoaded
	c.display.InsertRow(len(c.tasks) - 1)
	return task, nil
}

// RenameTask changes the title of task in place; position and identity are kept
func (c *Controller) RenameTask(ctx context.Context, task *models.Task, title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	idx := c.IndexOf(task)
	if idx < 0 {
		return ErrNotInList
	}

	renamed, err := c.store.Update(ctx, c.tasks[idx], title)
	if err != nil {
		c.logger.Warn("rename task abandoned", "id", task.ID, "error", err)
		return fmt.Errorf("failed to update task: %w", err)
	}

	c.tasks[idx] = renamed
	c.display.UpdateRow(idx)
	return nil
}

// RemoveTask deletes task from the store and, once that succeeds, from the list
func (c *Controller) RemoveTask(ctx context.Context, task *models.Task) error {
	idx := c.IndexOf(task)
	if idx < 0 {
		return ErrNotInList
	}

	if err := c.store.Delete(ctx, c.tasks[idx]); err != nil {
		c.logger.Warn("remove task abandoned", "id", task.ID, "error", err)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	c.tasks = append(c.tasks[:idx], c.tasks[idx+1:]...)
	c.display.RemoveRow(idx)
	return nil
}

// IndexOf returns the position of the task with the same identity, or -1
func (c *Controller) IndexOf(task *models.Task) int {
	if task == nil {
		return -1
	}
	for i, t := range c.tasks {
		if t.ID == task.ID {
			return i
		}
	}
	return -1
}

// Tasks returns a copy of the ordered list
func (c *Controller) Tasks() []*models.Task {
	out := make([]*models.Task, len(c.tasks))
	for i, t := range c.tasks {
		out[i] = t.Clone()
	}
	return out
}

// At returns the task at index, or nil when out of range
func (c *Controller) At(index int) *models.Task {
	if index < 0 || index >= len(c.tasks) {
		return nil
	}
	return c.tasks[index].Clone()
}

// Len returns the number of tasks in the list
func (c *Controller) Len() int {
	return len(c.tasks)
}

// State returns whether the list has been loaded yet
func (c *Controller) State() State {
	return c.state
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
