// Package tui is the terminal front end: it renders the task list, collects
// titles through a one-line prompt and turns suspend/quit into store flushes.
package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasklist/internal/config"
	"github.com/thenoetrevino/tasklist/internal/models"
	"github.com/thenoetrevino/tasklist/internal/tasklist"
)

// Mode is the current interaction mode
type Mode int

const (
	NormalMode Mode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	HelpMode
)

// Lifecycle receives the "moving to background" signal
type Lifecycle interface {
	Background(ctx context.Context) error
}

// Model represents the application state for the TUI
type Model struct {
	ctx       context.Context
	list      *tasklist.Controller
	lifecycle Lifecycle
	keys      config.KeyMappings
	styles    styles
	rows      *rowTracker

	mode    Mode
	input   textinput.Model
	editing *models.Task
	status  string
	help    string
	width   int
	height  int
}

// New builds the model, attaches it as the controller's display and loads the list
func New(ctx context.Context, list *tasklist.Controller, lifecycle Lifecycle, cfg *config.Config) Model {
	rows := &rowTracker{count: list.Len}
	list.SetDisplay(rows)

	ti := textinput.New()
	ti.Placeholder = "Task name"
	ti.CharLimit = tasklist.MaxTitleLength

	m := Model{
		ctx:       ctx,
		list:      list,
		lifecycle: lifecycle,
		keys:      cfg.KeyMappings,
		styles:    newStyles(cfg.ColorScheme),
		rows:      rows,
		input:     ti,
	}

	if err := list.Refresh(ctx); err != nil {
		m.status = "Could not load tasks: " + err.Error()
	}
	return m
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current interaction mode
func (m Model) Mode() Mode {
	return m.mode
}

// Cursor returns the selected row
func (m Model) Cursor() int {
	return m.rows.cursor
}

// Status returns the last error shown to the user
func (m Model) Status() string {
	return m.status
}

// selected returns the task under the cursor, or nil for an empty list
func (m Model) selected() *models.Task {
	return m.list.At(m.rows.cursor)
}
