package tui

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasklist/internal/tasklist"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch m.mode {
		case AddMode, EditMode:
			return m.handlePromptMode(msg)
		case DeleteConfirmMode:
			return m.handleDeleteConfirm(msg)
		case HelpMode:
			return m.handleHelpMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	// Cursor blink and other input-internal messages
	if m.mode == AddMode || m.mode == EditMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ============================================================================
// NORMAL MODE
// ============================================================================

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case m.keys.Quit, "ctrl+c":
		m.background()
		return m, tea.Quit

	case m.keys.Suspend:
		m.background()
		return m, tea.Suspend

	case m.keys.PrevTask, "up":
		m.rows.move(-1)

	case m.keys.NextTask, "down":
		m.rows.move(1)

	case m.keys.AddTask:
		m.mode = AddMode
		m.editing = nil
		m.input.Reset()
		return m, m.input.Focus()

	case m.keys.EditTask, "enter":
		task := m.selected()
		if task == nil {
			return m, nil
		}
		m.mode = EditMode
		m.editing = task
		m.input.SetValue(task.Title)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case m.keys.DeleteTask:
		if m.selected() != nil {
			m.mode = DeleteConfirmMode
		}

	case m.keys.ShowHelp:
		m.mode = HelpMode
		m.help = renderHelp(m.keys, m.width)
	}

	return m, nil
}

// ============================================================================
// PROMPT MODE
// ============================================================================

// handlePromptMode collects a title for a new or edited task.
// Submitting an empty prompt is treated like cancel.
func (m Model) handlePromptMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil

	case "enter":
		title := m.input.Value()
		editing := m.editing
		mode := m.mode
		m.closePrompt()

		if strings.TrimSpace(title) == "" {
			return m, nil
		}

		var err error
		if mode == AddMode {
			_, err = m.list.AddTask(m.ctx, title)
		} else {
			err = m.list.RenameTask(m.ctx, editing, title)
		}
		m.setStatus(err)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.mode = NormalMode
	m.editing = nil
	m.input.Blur()
	m.input.Reset()
}

// ============================================================================
// DELETE CONFIRMATION
// ============================================================================

func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.mode = NormalMode
	switch msg.String() {
	case "y", "Y":
		if task := m.selected(); task != nil {
			m.setStatus(m.list.RemoveTask(m.ctx, task))
		}
	}
	return m, nil
}

// ============================================================================
// HELP MODE
// ============================================================================

func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.keys.ShowHelp, m.keys.Quit, "esc", "enter":
		m.mode = NormalMode
	}
	return m, nil
}

// ============================================================================
// HELPERS
// ============================================================================

// background flushes buffered changes before the program stops or suspends
func (m *Model) background() {
	if m.lifecycle == nil {
		return
	}
	if err := m.lifecycle.Background(m.ctx); err != nil {
		m.status = "Could not save tasks: " + err.Error()
	}
}

func (m *Model) setStatus(err error) {
	switch {
	case err == nil:
		m.status = ""
	case errors.Is(err, tasklist.ErrTitleTooLong):
		m.status = "Title is too long"
	default:
		m.status = "Could not save task: " + err.Error()
	}
}
