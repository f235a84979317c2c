package cli

import (
	"errors"

	"github.com/thenoetrevino/tasklist/internal/store"
	"github.com/thenoetrevino/tasklist/internal/tasklist"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unreadable config, or any failure that doesn't
	// fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Wrong number of arguments or unknown flags.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	// Use for: Row numbers out of range or ids that match no task.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Empty or overlong titles.
	ExitValidation = 5
)

// exitError carries the process exit code for a failed command
type exitError struct {
	code     int
	err      error
	reported bool // already written to the user by the formatter
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// reported reports whether err was already written out by a formatter
func reported(err error) bool {
	var ee *exitError
	return errors.As(err, &ee) && ee.reported
}

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	switch {
	case errors.Is(err, tasklist.ErrEmptyTitle),
		errors.Is(err, tasklist.ErrTitleTooLong),
		errors.Is(err, store.ErrEmptyTitle):
		return ExitValidation
	case errors.Is(err, errTaskRef),
		errors.Is(err, tasklist.ErrNotInList),
		errors.Is(err, store.ErrTaskNotFound):
		return ExitNotFound
	default:
		return ExitError
	}
}
