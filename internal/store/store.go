// Package store is the authoritative task collection. It mediates every read and
// write to the durable medium and owns the flush checkpoint used at lifecycle
// boundaries.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/tasklist/internal/database"
	"github.com/thenoetrevino/tasklist/internal/models"
)

// Store provides CRUD over tasks plus an explicit Flush.
// All methods are safe to call from multiple goroutines; writes are serialized.
type Store struct {
	mu      sync.Mutex
	repo    database.TaskRepository
	mode    WriteMode
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
	nextSeq int64
	known   map[string]struct{}
	pending *pending
}

// Open creates a Store over repo. The persisted records are read once to seed
// identity tracking; if that read fails the error wraps ErrStoreUnavailable.
func Open(ctx context.Context, repo database.TaskRepository, opts ...Option) (*Store, error) {
	s := &Store{
		repo:    repo,
		mode:    WriteDeferred,
		logger:  slog.Default(),
		now:     defaultNow,
		newID:   defaultID,
		nextSeq: 1,
		known:   make(map[string]struct{}),
		pending: newPending(),
	}
	for _, opt := range opts {
		opt(s)
	}

	tasks, err := repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	for _, t := range tasks {
		s.known[t.ID] = struct{}{}
		if t.Seq >= s.nextSeq {
			s.nextSeq = t.Seq + 1
		}
	}

	s.logger.Debug("task store opened", "tasks", len(tasks), "write_mode", s.mode.String())
	return s, nil
}

// Mode returns the configured write mode
func (s *Store) Mode() WriteMode {
	return s.mode
}

// LoadAll returns every task in insertion order, including buffered changes.
// On failure it returns an empty slice together with a *ReadError.
func (s *Store) LoadAll(ctx context.Context) ([]*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	persisted, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to fetch tasks", "error", err)
		return []*models.Task{}, &ReadError{Op: "load", Err: err}
	}

	return s.pending.overlay(persisted), nil
}

// Create allocates a new identity and stores a task with the given title.
// On failure nothing is buffered and no task is returned.
func (s *Store) Create(ctx context.Context, title string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	task := &models.Task{
		ID:        s.newID(),
		Title:     title,
		Seq:       s.nextSeq,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if s.mode == WriteImmediate {
		if err := s.repo.Commit(ctx, database.ChangeSet{Inserts: []*models.Task{task}}); err != nil {
			s.logger.Error("failed to save task", "title", title, "error", err)
			return nil, &WriteError{Op: "create", Err: err}
		}
	} else {
		s.pending.addInsert(task)
	}

	s.nextSeq++
	s.known[task.ID] = struct{}{}
	return task.Clone(), nil
}

// Update renames the task identified by task.ID and returns the renamed copy.
// The identity, sequence and creation time never change.
func (s *Store) Update(ctx context.Context, task *models.Task, title string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.known[task.ID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, task.ID)
	}

	renamed := task.Clone()
	renamed.Title = title
	renamed.UpdatedAt = s.now()

	if s.mode == WriteImmediate {
		if err := s.repo.Commit(ctx, database.ChangeSet{Updates: []*models.Task{renamed}}); err != nil {
			s.logger.Error("failed to update task", "id", task.ID, "error", err)
			return nil, &WriteError{Op: "update", Err: err}
		}
	} else {
		s.pending.addUpdate(renamed)
	}

	return renamed.Clone(), nil
}

// Delete removes the task identified by task.ID
func (s *Store) Delete(ctx context.Context, task *models.Task) error {
	if task == nil {
		return ErrTaskNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.known[task.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, task.ID)
	}

	if s.mode == WriteImmediate {
		if err := s.repo.Commit(ctx, database.ChangeSet{Deletes: []string{task.ID}}); err != nil {
			s.logger.Error("failed to delete task", "id", task.ID, "error", err)
			return &WriteError{Op: "delete", Err: err}
		}
	} else {
		s.pending.addDelete(task.ID)
	}

	delete(s.known, task.ID)
	return nil
}

// HasChanges reports whether buffered mutations are waiting for Flush
func (s *Store) HasChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.pending.empty()
}

// Flush commits buffered mutations in a single durable write.
// It is a no-op when nothing is buffered. On failure the buffer is kept so a
// later Flush can retry.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending.empty() {
		return nil
	}

	cs := s.pending.changeSet()
	if err := s.repo.Commit(ctx, cs); err != nil {
		s.logger.Error("failed to flush tasks", "changes", cs.Len(), "error", err)
		return &WriteError{Op: "flush", Err: err}
	}

	s.logger.Debug("flushed tasks", "inserts", len(cs.Inserts), "updates", len(cs.Updates), "deletes", len(cs.Deletes))
	s.pending = newPending()
	return nil
}
