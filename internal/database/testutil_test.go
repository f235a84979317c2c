package database

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/thenoetrevino/tasklist/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// :memory: databases live on a single connection
	db.SetMaxOpenConns(1)

	if err := runMigrations(context.Background(), db, DriverSQLite); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// newTestTask builds a task the way the store would before committing it
func newTestTask(seq int64, title string) *models.Task {
	now := time.Now().UTC()
	return &models.Task{
		ID:        fmt.Sprintf("00000000-0000-4000-8000-%012d", seq),
		Title:     title,
		Seq:       seq,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// titles extracts task titles in order
func titles(tasks []*models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}
