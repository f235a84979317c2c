package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// View renders the current state of the application
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	switch m.mode {
	case AddMode:
		view.Content = m.placeDialog(m.styles.Dialog.Render(
			m.styles.Prompt.Render("New Task") + "\nWhat do you want to do?\n\n" + m.input.View(),
		))
	case EditMode:
		view.Content = m.placeDialog(m.styles.Dialog.Render(
			m.styles.Prompt.Render("Edit Task") + "\nUpdate your task\n\n" + m.input.View(),
		))
	case DeleteConfirmMode:
		title := ""
		if task := m.selected(); task != nil {
			title = task.Title
		}
		view.Content = m.placeDialog(m.styles.Danger.Render(
			fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", title),
		))
	case HelpMode:
		view.Content = m.help
	default:
		view.Content = m.viewList()
	}

	return view
}

func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("Task List"))
	b.WriteString("\n")

	tasks := m.list.Tasks()
	if len(tasks) == 0 {
		b.WriteString(m.styles.Empty.Render(fmt.Sprintf("No tasks yet. Press %s to add one.", m.keys.AddTask)))
		b.WriteString("\n")
	}
	for i, task := range tasks {
		if i == m.rows.cursor {
			b.WriteString(m.styles.Selected.Render("> " + task.Title))
		} else {
			b.WriteString(m.styles.Row.Render(task.Title))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Footer.Render(fmt.Sprintf(
		"%s add • %s edit • %s delete • %s help • %s quit",
		m.keys.AddTask, m.keys.EditTask, m.keys.DeleteTask, m.keys.ShowHelp, m.keys.Quit,
	)))

	return b.String()
}

func (m Model) placeDialog(box string) string {
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
