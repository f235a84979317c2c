package tasklist

import "errors"

// Intent validation errors
var (
	ErrEmptyTitle   = errors.New("task title cannot be empty")
	ErrTitleTooLong = errors.New("task title cannot exceed 255 characters")
	ErrNotInList    = errors.New("task is not in the list")
)

// MaxTitleLength is the longest title accepted, counted in characters
const MaxTitleLength = 255
