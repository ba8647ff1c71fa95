package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/gestor-tareas/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct{}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []domain.IndexedTask // Tasks in insertion order with 1-based display indices
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{
		tasks: tasks,
	}
}

// Execute returns a snapshot of all tasks numbered from 1.
// An empty list is reported as domain.ErrNoTasks rather than an empty result.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, domain.ErrNoTasks
	}

	indexed := make([]domain.IndexedTask, len(tasks))
	for i, t := range tasks {
		indexed[i] = domain.IndexedTask{
			Index: i + 1,
			Task:  t,
		}
	}
	return &ListTasksOutput{Tasks: indexed}, nil
}
