package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/tasklist/internal/config"
)

// helpMarkdown builds the key reference shown in help mode
func helpMarkdown(keys config.KeyMappings) string {
	return fmt.Sprintf(`# Task List

| Key | Action |
|-----|--------|
| %s / ↑ | previous task |
| %s / ↓ | next task |
| %s | new task |
| %s / enter | edit task |
| %s | delete task |
| %s | save and suspend |
| %s | save and quit |
| %s | close help |
`, keys.PrevTask, keys.NextTask, keys.AddTask, keys.EditTask,
		keys.DeleteTask, keys.Suspend, keys.Quit, keys.ShowHelp)
}

// renderHelp renders the key reference for the given width.
// Falls back to the raw markdown if glamour cannot build a renderer.
func renderHelp(keys config.KeyMappings, width int) string {
	md := helpMarkdown(keys)
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		slog.Warn("failed to create help renderer", "error", err)
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		slog.Warn("failed to render help", "error", err)
		return md
	}
	return out
}
