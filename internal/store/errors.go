package store

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable is returned by Open when the durable medium cannot be read
	ErrStoreUnavailable = errors.New("task store unavailable")

	// ErrEmptyTitle rejects titles that are empty or whitespace only
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// ErrTaskNotFound indicates the identity is not known to the store
	ErrTaskNotFound = errors.New("task not found")
)

// ReadError reports that enumerating tasks from the durable medium failed
type ReadError struct {
	Op  string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("storage read failed (%s): %v", e.Op, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports that persisting a create, update, delete or flush failed
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("storage write failed (%s): %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// IsReadError reports whether err carries a ReadError
func IsReadError(err error) bool {
	var re *ReadError
	return errors.As(err, &re)
}

// IsWriteError reports whether err carries a WriteError
func IsWriteError(err error) bool {
	var we *WriteError
	return errors.As(err, &we)
}
