package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/gestor-tareas/internal/app"
	"github.com/runoshun/gestor-tareas/internal/domain"
	"github.com/runoshun/gestor-tareas/internal/usecase"
)

// State is the state of the menu loop.
type State int

// Menu loop states.
const (
	StateRunning State = iota
	StateTerminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Menu is the interactive task menu. It owns the loop state and runs one
// command to completion before reading the next.
// Fields are ordered to minimize memory padding.
type Menu struct {
	out      io.Writer
	logger   domain.Logger
	in       *lineReader
	add      *usecase.AddTask
	list     *usecase.ListTasks
	complete *usecase.CompleteTask
	remove   *usecase.DeleteTask
	styles   statusStyles
	state    State
}

// NewMenu creates a menu reading commands from in and writing to out.
func NewMenu(c *app.Container, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		out:      out,
		logger:   c.Logger,
		in:       newLineReader(in),
		add:      c.AddTaskUseCase(),
		list:     c.ListTasksUseCase(),
		complete: c.CompleteTaskUseCase(),
		remove:   c.DeleteTaskUseCase(),
		styles:   newStatusStyles(out, c.Config.Color),
		state:    StateRunning,
	}
}

// State returns the current loop state.
func (m *Menu) State() State {
	return m.state
}

// Run shows the menu and executes commands until the user exits or input ends.
// Invalid options and task numbers are reported to the user and do not stop the loop.
// Only store failures and read errors are returned.
func (m *Menu) Run(ctx context.Context) error {
	for m.state == StateRunning {
		if err := ctx.Err(); err != nil {
			m.state = StateTerminated
			return err
		}

		m.showMenu()
		line, err := m.in.ReadLine()
		if err != nil {
			return m.stopOnInput(err)
		}

		if err := m.Dispatch(ctx, line); err != nil {
			return m.stopOnInput(err)
		}
	}
	return nil
}

// stopOnInput terminates the loop. End of input is a normal way out.
func (m *Menu) stopOnInput(err error) error {
	m.state = StateTerminated
	if errors.Is(err, io.EOF) {
		m.debug("end of input")
		return nil
	}
	return err
}

// Dispatch executes the command given by one line of input.
func (m *Menu) Dispatch(ctx context.Context, line string) error {
	cmd, err := domain.ParseMenuCommand(line)
	if err != nil {
		m.debug(err.Error())
		m.print(msgBadMenu)
		return nil
	}

	switch cmd {
	case domain.CommandAdd:
		return m.addTask(ctx)
	case domain.CommandComplete:
		return m.completeTask(ctx)
	case domain.CommandDelete:
		return m.deleteTask(ctx)
	case domain.CommandList:
		_, err := m.showTasks(ctx)
		return err
	case domain.CommandExit:
		m.print(msgExit)
		m.state = StateTerminated
	}
	return nil
}

func (m *Menu) showMenu() {
	var b strings.Builder
	b.WriteString(menuHeader)
	for _, cmd := range domain.MenuCommands() {
		fmt.Fprintf(&b, "%d. %s\n", cmd, cmd.Label())
	}
	b.WriteString(menuPrompt)
	m.print(b.String())
}

func (m *Menu) addTask(ctx context.Context) error {
	m.print(promptDescription)
	desc, err := m.in.ReadLine()
	if err != nil {
		return err
	}

	if _, err := m.add.Execute(ctx, usecase.AddTaskInput{Description: desc}); err != nil {
		return err
	}
	m.print(msgAdded)
	return nil
}

// showTasks prints the task list, or the no-tasks message when the store is empty.
// It reports whether any task was shown.
func (m *Menu) showTasks(ctx context.Context) (bool, error) {
	out, err := m.list.Execute(ctx, usecase.ListTasksInput{})
	if errors.Is(err, domain.ErrNoTasks) {
		m.print(msgNoTasks)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	writeTaskList(m.out, out.Tasks, m.styles)
	return true, nil
}

func (m *Menu) completeTask(ctx context.Context) error {
	index, ok, err := m.promptIndex(ctx, promptComplete)
	if err != nil || !ok {
		return err
	}

	_, err = m.complete.Execute(ctx, usecase.CompleteTaskInput{Index: index})
	if errors.Is(err, domain.ErrInvalidIndex) {
		m.debug(err.Error())
		m.print(msgBadIndex)
		return nil
	}
	if err != nil {
		return err
	}
	m.print(msgCompleted)
	return nil
}

func (m *Menu) deleteTask(ctx context.Context) error {
	index, ok, err := m.promptIndex(ctx, promptDelete)
	if err != nil || !ok {
		return err
	}

	_, err = m.remove.Execute(ctx, usecase.DeleteTaskInput{Index: index})
	if errors.Is(err, domain.ErrInvalidIndex) {
		m.debug(err.Error())
		m.print(msgBadIndex)
		return nil
	}
	if err != nil {
		return err
	}
	m.print(msgDeleted)
	return nil
}

// promptIndex shows the task list for reference and reads a task number.
// ok is false when there is nothing to select or the input was not a number;
// the user has already been told in both cases.
func (m *Menu) promptIndex(ctx context.Context, prompt string) (index int, ok bool, err error) {
	shown, err := m.showTasks(ctx)
	if err != nil || !shown {
		return 0, false, err
	}

	m.print(prompt)
	line, err := m.in.ReadLine()
	if err != nil {
		return 0, false, err
	}

	index, err = domain.ParseIndex(line)
	if err != nil {
		m.debug(err.Error())
		m.print(msgBadIndex)
		return 0, false, nil
	}
	return index, true, nil
}

func (m *Menu) print(s string) {
	_, _ = io.WriteString(m.out, s)
}

func (m *Menu) debug(msg string) {
	if m.logger != nil {
		m.logger.Debug("menu", msg)
	}
}
