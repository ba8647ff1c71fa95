// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"

	"github.com/runoshun/gestor-tareas/internal/domain"
	"github.com/runoshun/gestor-tareas/internal/infra/logging"
	"github.com/runoshun/gestor-tareas/internal/infra/memstore"
	"github.com/runoshun/gestor-tareas/internal/usecase"
)

// Config holds the resolved runtime settings.
type Config struct {
	LogFile  string   // Path to the log file (empty = logging disabled)
	LogLevel string   // Minimum log level
	Warnings []string // Problems found while loading the config file
	Color    bool     // Color status labels on a terminal
}

// newConfig creates a new Config from the loaded application config.
func newConfig(cfg *domain.Config) Config {
	return Config{
		LogFile:  cfg.Log.File,
		LogLevel: cfg.Log.Level,
		Warnings: cfg.Warnings,
		Color:    cfg.Display.Color,
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks  domain.TaskRepository
	Clock  domain.Clock
	Logger domain.Logger

	closer io.Closer

	// Configuration
	Config Config
}

// New creates a new Container. The task store starts empty; the logger is
// configured from whatever the loader returns.
func New(loader domain.ConfigLoader) (*Container, error) {
	appConfig, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := newConfig(appConfig)

	logger := logging.New(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))
	logger.Info("app", "session started")

	return &Container{
		Tasks:  memstore.New(),
		Clock:  domain.RealClock{},
		Logger: logger,
		closer: logger,
		Config: cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:  tasks,
		Clock:  clock,
		Logger: logger,
		Config: cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	c.Logger.Info("app", "session ended")
	return c.closer.Close()
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}
