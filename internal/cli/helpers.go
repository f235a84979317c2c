package cli

import (
	"context"
	"log/slog"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli/styles"
)

// Execute runs the root command and returns the process exit code.
// Errors not already printed by a command are written to stderr here.
func Execute(ctx context.Context, args []string) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil && !reported(err) {
		_, _ = lipgloss.Fprintln(cmd.ErrOrStderr(), styles.ErrorStyle.Render("Error:")+" "+err.Error())
	}
	return ExitCode(err)
}

// fail reports err through the formatter and tags it with its exit code
func fail(f *OutputFormatter, err error) error {
	code := ExitCode(err)

	var fmtErr error
	switch code {
	case ExitValidation:
		fmtErr = f.Error("VALIDATION_ERROR", err.Error())
	case ExitNotFound:
		fmtErr = f.ErrorWithSuggestion("TASK_NOT_FOUND", err.Error(),
			"Use 'tasklist list' to see row numbers and ids")
	default:
		fmtErr = f.Error("STORE_ERROR", err.Error())
	}
	if fmtErr != nil {
		slog.Error("error formatting error message", "error", fmtErr)
	}

	return &exitError{code: code, err: err, reported: fmtErr == nil}
}

// joinTitle turns the remaining positional arguments into a title.
// Quoting is optional: `tasklist add buy milk` and `tasklist add "buy milk"` agree.
func joinTitle(args []string) string {
	return strings.Join(args, " ")
}

// contextOf returns the command context, falling back to Background for
// commands executed without ExecuteContext.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
