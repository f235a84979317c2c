package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasklist/internal/config"
)

// styles groups the lipgloss styles derived from the configured color scheme
type styles struct {
	Header   lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style
	Footer   lipgloss.Style
	Error    lipgloss.Style
	Dialog   lipgloss.Style
	Danger   lipgloss.Style
	Prompt   lipgloss.Style
}

func newStyles(colors config.ColorScheme) styles {
	return styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)).
			Background(lipgloss.Color(colors.Accent)).
			Padding(0, 1).
			MarginBottom(1),
		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Normal)).
			PaddingLeft(2),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Selected)),
		Empty: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(colors.Subtle)).
			PaddingLeft(2),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.ErrorFg)),
		// Create dialogs use the accent border, delete confirmation the error color
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.Accent)).
			Padding(1, 2).
			Width(50),
		Danger: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.ErrorFg)).
			Padding(1, 2).
			Width(50),
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Accent)),
	}
}
