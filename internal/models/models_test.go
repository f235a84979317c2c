package models

import (
	"testing"
	"time"
)

func TestTask_Clone(t *testing.T) {
	orig := &Task{ID: "a", Title: "Buy milk", Seq: 3, CreatedAt: time.Unix(10, 0)}

	c := orig.Clone()
	c.Title = "Buy oat milk"

	if orig.Title != "Buy milk" {
		t.Errorf("original title mutated: %q", orig.Title)
	}
	if c.ID != orig.ID || c.Seq != orig.Seq {
		t.Errorf("clone lost identity: %+v", c)
	}
}

func TestTask_CloneNil(t *testing.T) {
	var task *Task
	if task.Clone() != nil {
		t.Error("Clone of nil task should be nil")
	}
}
