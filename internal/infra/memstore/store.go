// Package memstore provides an in-memory implementation of TaskRepository.
// Tasks live only for the lifetime of the process.
package memstore

import (
	"slices"
	"sync"

	"github.com/runoshun/gestor-tareas/internal/domain"
)

// Ensure Store implements domain.TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

// storeData holds the ordered task sequence and the ID counter.
type storeData struct {
	tasks      []*domain.Task
	nextTaskID int
}

// Store implements domain.TaskRepository using an ordered slice.
// Tasks are kept in insertion order.
type Store struct {
	data storeData
	mu   sync.RWMutex
}

// New creates an empty Store. The first ID handed out is 1.
func New() *Store {
	return &Store{
		data: storeData{nextTaskID: 1},
	}
}

// List returns all tasks in insertion order.
func (s *Store) List() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func(data *storeData) error {
		tasks = make([]*domain.Task, len(data.tasks))
		for i, t := range data.tasks {
			tasks[i] = t.Clone()
		}
		return nil
	})
	return tasks, err
}

// Save creates or updates a task.
// An unknown ID is appended at the end of the sequence.
func (s *Store) Save(task *domain.Task) error {
	return s.withLockWrite(func(data *storeData) error {
		if i := data.indexOf(task.ID); i >= 0 {
			data.tasks[i] = task.Clone()
			return nil
		}
		data.tasks = append(data.tasks, task.Clone())
		if task.ID >= data.nextTaskID {
			data.nextTaskID = task.ID + 1
		}
		return nil
	})
}

// Delete removes a task by ID. Deleting a missing ID is a no-op.
func (s *Store) Delete(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		if i := data.indexOf(id); i >= 0 {
			data.tasks = slices.Delete(data.tasks, i, i+1)
		}
		return nil
	})
}

// NextID returns the next available task ID.
func (s *Store) NextID() (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.nextTaskID
		data.nextTaskID++
		return nil
	})
	return id, err
}

// indexOf returns the slice position of the task with the given ID, or -1.
func (d *storeData) indexOf(id int) int {
	return slices.IndexFunc(d.tasks, func(t *domain.Task) bool {
		return t.ID == id
	})
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.data)
}

// withLockWrite executes fn with an exclusive (write) lock.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}
