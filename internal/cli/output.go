package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli/styles"
	"github.com/thenoetrevino/tasklist/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	Out   io.Writer
	Err   io.Writer
	JSON  bool
	Quiet bool
}

// newFormatter builds a formatter from the command's --json/--quiet flags
func newFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
		JSON:  jsonOutput,
		Quiet: quietMode,
	}
}

// Success outputs a successful operation result. human is printed in the
// default mode; quiet mode prints only the id when data has one.
func (f *OutputFormatter) Success(data any, human string) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			_, err := fmt.Fprintln(f.Out, idGetter.GetID())
			return err
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	_, err := lipgloss.Fprintln(f.Out, human)
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	if _, err := lipgloss.Fprintln(f.Err, styles.ErrorStyle.Render("Error:")+" "+message); err != nil {
		return err
	}
	if suggestion != "" {
		_, err := lipgloss.Fprintln(f.Err, styles.SubtitleStyle.Render("Suggestion: "+suggestion))
		return err
	}
	return nil
}

// taskJSON is the wire shape of a task in --json output
type taskJSON struct {
	ID        string    `json:"id"`
	Position  int       `json:"position"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t taskJSON) GetID() string { return t.ID }

func toTaskJSON(task *models.Task, position int) taskJSON {
	return taskJSON{
		ID:        task.ID,
		Position:  position,
		Title:     task.Title,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}
