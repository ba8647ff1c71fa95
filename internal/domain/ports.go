package domain

import "time"

// TaskRepository manages the ordered task collection.
type TaskRepository interface {
	// List returns all tasks in insertion order.
	List() ([]*Task, error)

	// Save appends a new task or updates an existing one in place.
	Save(task *Task) error

	// Delete removes a task by ID. Later tasks keep their relative order.
	Delete(id int) error

	// NextID returns the next available task ID.
	NextID() (int, error)
}

// Logger writes diagnostic messages.
type Logger interface {
	Info(category, msg string)
	Debug(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// ConfigLoader loads application configuration.
type ConfigLoader interface {
	// Load returns the configuration, falling back to defaults when no file exists.
	Load() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
