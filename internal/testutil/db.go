package testutil

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/thenoetrevino/tasklist/internal/database"
	"github.com/thenoetrevino/tasklist/internal/models"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// :memory: databases live on a single connection
	db.SetMaxOpenConns(1)

	if err := database.Migrate(context.Background(), db, database.DriverSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// FlakyRepo wraps a real repository, counts commits and injects failures on demand
type FlakyRepo struct {
	Inner database.TaskRepository

	mu         sync.Mutex
	commits    int
	last       database.ChangeSet
	failGetAll error
	failCommit error
}

// NewFlakyRepo wraps a sqlite-backed repository on a fresh in-memory database
func NewFlakyRepo(t *testing.T) *FlakyRepo {
	t.Helper()
	return &FlakyRepo{Inner: database.NewTaskRepo(SetupTestDB(t))}
}

// GetAll delegates unless a read failure is armed
func (f *FlakyRepo) GetAll(ctx context.Context) ([]*models.Task, error) {
	f.mu.Lock()
	err := f.failGetAll
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return f.Inner.GetAll(ctx)
}

// Commit delegates unless a write failure is armed; only successful commits are counted
func (f *FlakyRepo) Commit(ctx context.Context, changes database.ChangeSet) error {
	f.mu.Lock()
	err := f.failCommit
	f.mu.Unlock()
	if err != nil {
		return err
	}
	if err := f.Inner.Commit(ctx, changes); err != nil {
		return err
	}
	f.mu.Lock()
	f.commits++
	f.last = changes
	f.mu.Unlock()
	return nil
}

// FailReads makes GetAll return err until cleared with nil
func (f *FlakyRepo) FailReads(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failGetAll = err
}

// FailWrites makes Commit return err until cleared with nil
func (f *FlakyRepo) FailWrites(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCommit = err
}

// Commits returns the number of successful durable writes
func (f *FlakyRepo) Commits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commits
}

// LastCommit returns the most recent successful change set
func (f *FlakyRepo) LastCommit() database.ChangeSet {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}
