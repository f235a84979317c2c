package store

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// WriteMode controls when mutations reach the durable medium
type WriteMode int

const (
	// WriteDeferred buffers mutations until Flush
	WriteDeferred WriteMode = iota
	// WriteImmediate commits every mutation before returning
	WriteImmediate
)

func (m WriteMode) String() string {
	switch m {
	case WriteDeferred:
		return "deferred"
	case WriteImmediate:
		return "immediate"
	default:
		return fmt.Sprintf("WriteMode(%d)", int(m))
	}
}

// ParseWriteMode maps the config value to a WriteMode
func ParseWriteMode(s string) (WriteMode, error) {
	switch s {
	case "", "deferred":
		return WriteDeferred, nil
	case "immediate":
		return WriteImmediate, nil
	default:
		return WriteDeferred, fmt.Errorf("unknown write mode %q", s)
	}
}

// Option is a functional option for configuring a Store
type Option func(*Store)

// WithWriteMode selects immediate or deferred persistence
func WithWriteMode(mode WriteMode) Option {
	return func(s *Store) {
		s.mode = mode
	}
}

// WithLogger sets the logger used for storage failures
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides identity allocation
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

func defaultNow() time.Time {
	return time.Now().UTC()
}

func defaultID() string {
	return uuid.NewString()
}
