package database

import (
	"context"

	"github.com/thenoetrevino/tasklist/internal/models"
)

// ChangeSet groups mutations that are committed together in one transaction
type ChangeSet struct {
	Inserts []*models.Task
	Updates []*models.Task
	Deletes []string
}

// IsEmpty reports whether the change set holds no mutations
func (c ChangeSet) IsEmpty() bool {
	return c.Len() == 0
}

// Len returns the total number of mutations in the change set
func (c ChangeSet) Len() int {
	return len(c.Inserts) + len(c.Updates) + len(c.Deletes)
}

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetAll(ctx context.Context) ([]*models.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	Commit(ctx context.Context, changes ChangeSet) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}

// Compile-time verification that *TaskRepo implements TaskRepository
var _ TaskRepository = (*TaskRepo)(nil)
