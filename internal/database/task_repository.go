package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/tasklist/internal/models"
)

// TaskRepo persists tasks in the tasks table
type TaskRepo struct {
	db *sql.DB
}

// NewTaskRepo creates a repository wrapping the given database connection
func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// GetAll retrieves every task in insertion order
func (r *TaskRepo) GetAll(ctx context.Context) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, seq, created_at, updated_at
		 FROM tasks
		 ORDER BY seq`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(
			&task.ID, &task.Title, &task.Seq, &task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Commit applies deletes, inserts and updates atomically.
// An update or delete that matches no row aborts the whole commit with ErrNotFound.
func (r *TaskRepo) Commit(ctx context.Context, changes ChangeSet) error {
	if changes.IsEmpty() {
		return nil
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, id := range changes.Deletes {
			result, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
			if err != nil {
				return fmt.Errorf("failed to delete task %s: %w", id, err)
			}
			if err := requireAffected(result, id); err != nil {
				return err
			}
		}

		for _, task := range changes.Inserts {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO tasks (id, title, seq, created_at, updated_at)
				 VALUES (?, ?, ?, ?, ?)`,
				task.ID, task.Title, task.Seq, task.CreatedAt, task.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to insert task %s: %w", task.ID, err)
			}
		}

		for _, task := range changes.Updates {
			result, err := tx.ExecContext(ctx,
				`UPDATE tasks
				 SET title = ?, updated_at = ?
				 WHERE id = ?`,
				task.Title, task.UpdatedAt, task.ID,
			)
			if err != nil {
				return fmt.Errorf("failed to update task %s: %w", task.ID, err)
			}
			if err := requireAffected(result, task.ID); err != nil {
				return err
			}
		}

		return nil
	})
}
