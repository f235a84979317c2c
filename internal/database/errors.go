package database

import "errors"

var (
	// ErrNotFound indicates an update or delete matched no record
	ErrNotFound = errors.New("record not found")

	// ErrUnsupportedDriver indicates the configured driver is not sqlite or mysql
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
