// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"slices"
	"time"

	"github.com/runoshun/gestor-tareas/internal/domain"
)

// Ensure mocks implement the domain ports.
var (
	_ domain.Clock          = (*MockClock)(nil)
	_ domain.TaskRepository = (*MockTaskRepository)(nil)
	_ domain.Logger         = (*MockLogger)(nil)
	_ domain.ConfigLoader   = (*MockConfigLoader)(nil)
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
// It keeps tasks in insertion order and returns stored pointers as is.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks     []*domain.Task
	SaveErr   error
	ListErr   error
	DeleteErr error
	NextIDErr error
	NextIDN   int
}

// NewMockTaskRepository creates a new, empty MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		NextIDN: 1,
	}
}

// NewMockTaskRepositoryWith creates a MockTaskRepository holding one pending task per description.
func NewMockTaskRepositoryWith(descs ...string) *MockTaskRepository {
	m := NewMockTaskRepository()
	for _, d := range descs {
		m.Tasks = append(m.Tasks, &domain.Task{ID: m.NextIDN, Description: d})
		m.NextIDN++
	}
	return m
}

// List returns all tasks in insertion order.
func (m *MockTaskRepository) List() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.Tasks), nil
}

// Save appends or replaces a task.
func (m *MockTaskRepository) Save(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	for i, t := range m.Tasks {
		if t.ID == task.ID {
			m.Tasks[i] = task
			return nil
		}
	}
	m.Tasks = append(m.Tasks, task)
	return nil
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(id int) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Tasks = slices.DeleteFunc(m.Tasks, func(t *domain.Task) bool {
		return t.ID == id
	})
	return nil
}

// NextID returns the next task ID.
func (m *MockTaskRepository) NextID() (int, error) {
	if m.NextIDErr != nil {
		return 0, m.NextIDErr
	}
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// Descriptions returns the descriptions of all tasks in order.
func (m *MockTaskRepository) Descriptions() []string {
	out := make([]string, len(m.Tasks))
	for i, t := range m.Tasks {
		out[i] = t.Description
	}
	return out
}

// LogEntry is a single message captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// String formats the entry for assertion messages.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Level, e.Category, e.Msg)
}

// MockLogger is a test double for domain.Logger that records every message.
type MockLogger struct {
	Entries []LogEntry
}

// Info records an info message.
func (m *MockLogger) Info(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "INFO", Category: category, Msg: msg})
}

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "DEBUG", Category: category, Msg: msg})
}

// Warn records a warning message.
func (m *MockLogger) Warn(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "WARN", Category: category, Msg: msg})
}

// Error records an error message.
func (m *MockLogger) Error(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "ERROR", Category: category, Msg: msg})
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}
