// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a single entry in the task list.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created     time.Time // Creation time
	Description string    // Free text, may be empty
	ID          int       // Creation-order identifier, never shown to the user
	Completed   bool      // Set once by CompleteTask, never reset
}

// Status returns the label shown next to the task in a listing.
func (t *Task) Status() Status {
	if t.Completed {
		return StatusCompleted
	}
	return StatusPending
}

// Complete marks the task as completed.
// Completing an already completed task is a no-op.
func (t *Task) Complete() {
	t.Completed = true
}

// Clone returns a copy of the task that can be handed out without
// exposing the stored value.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// IndexedTask is a task paired with its 1-based display index.
// The index is computed at listing time and shifts when earlier tasks are deleted.
type IndexedTask struct {
	Task  *Task
	Index int
}

// ValidIndex reports whether index is a valid 1-based display index
// for a list of the given size.
func ValidIndex(index, size int) bool {
	return index >= 1 && index <= size
}
