package models

import "time"

// Task represents a single entry in the task list
type Task struct {
	ID        string
	Title     string
	Seq       int64 // insertion order, assigned by the store
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a copy of the task that can be mutated independently
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// GetID returns the task identity (used by quiet CLI output)
func (t *Task) GetID() string {
	return t.ID
}
