// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/gestor-tareas/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Description string // Task description (may be empty)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	TaskID int // The ID of the created task
}

// AddTask is the use case for appending a new task to the list.
type AddTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute appends a pending task with the given description.
// Any description is accepted, including the empty string.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	id, err := uc.tasks.NextID()
	if err != nil {
		return nil, fmt.Errorf("generate task ID: %w", err)
	}

	task := &domain.Task{
		ID:          id,
		Description: in.Description,
		Created:     uc.clock.Now(),
	}
	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("created task #%d: %q", id, in.Description))
	}

	return &AddTaskOutput{TaskID: id}, nil
}
