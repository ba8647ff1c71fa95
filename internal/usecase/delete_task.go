package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/gestor-tareas/internal/domain"
	"github.com/runoshun/gestor-tareas/internal/usecase/shared"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	Index int // 1-based display index
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task *domain.Task // The removed task
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes the task at the given display index.
// Tasks after it move up one position.
// An index outside [1, size] returns domain.ErrInvalidIndex and leaves the store unchanged.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	task, err := shared.ResolveIndex(uc.tasks, in.Index)
	if err != nil {
		return nil, err
	}

	if err := uc.tasks.Delete(task.ID); err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("deleted task #%d", task.ID))
	}

	return &DeleteTaskOutput{Task: task}, nil
}
