// Package shared holds helpers used by more than one use case.
package shared

import (
	"fmt"

	"github.com/runoshun/gestor-tareas/internal/domain"
)

// ResolveIndex maps a 1-based display index to the stored task at that position.
// It returns an error wrapping domain.ErrInvalidIndex when index is outside [1, size].
// This centralizes the common pattern of:
//
//	tasks, err := repo.List()
//	if err != nil { return nil, fmt.Errorf("list tasks: %w", err) }
//	if index < 1 || index > len(tasks) { return nil, domain.ErrInvalidIndex }
func ResolveIndex(repo domain.TaskRepository, index int) (*domain.Task, error) {
	tasks, err := repo.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if !domain.ValidIndex(index, len(tasks)) {
		return nil, fmt.Errorf("task number %d of %d: %w", index, len(tasks), domain.ErrInvalidIndex)
	}
	return tasks[index-1], nil
}
