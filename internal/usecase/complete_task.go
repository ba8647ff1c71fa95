package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/gestor-tareas/internal/domain"
	"github.com/runoshun/gestor-tareas/internal/usecase/shared"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	Index int // 1-based display index
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task *domain.Task // The completed task
}

// CompleteTask is the use case for marking a task as completed.
type CompleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute marks the task at the given display index as completed.
// Completing an already completed task succeeds and changes nothing.
// An index outside [1, size] returns domain.ErrInvalidIndex and leaves the store unchanged.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	task, err := shared.ResolveIndex(uc.tasks, in.Index)
	if err != nil {
		return nil, err
	}

	if task.Completed {
		return &CompleteTaskOutput{Task: task}, nil
	}

	task.Complete()
	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("completed task #%d", task.ID))
	}

	return &CompleteTaskOutput{Task: task}, nil
}
