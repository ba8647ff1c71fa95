package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MenuCommand is a numeric option of the main menu.
type MenuCommand int

// Menu options, numbered as shown to the user.
const (
	CommandAdd MenuCommand = iota + 1
	CommandComplete
	CommandDelete
	CommandList
	CommandExit
)

// menuLabels holds the menu text for each command, in display order.
var menuLabels = []struct {
	label string
	cmd   MenuCommand
}{
	{"Agregar Tarea", CommandAdd},
	{"Marcar Tarea como Completada", CommandComplete},
	{"Eliminar Tarea", CommandDelete},
	{"Mostrar Tareas", CommandList},
	{"Salir", CommandExit},
}

// MenuCommands returns all menu commands in display order.
func MenuCommands() []MenuCommand {
	cmds := make([]MenuCommand, len(menuLabels))
	for i, m := range menuLabels {
		cmds[i] = m.cmd
	}
	return cmds
}

// Label returns the menu text for the command.
func (c MenuCommand) Label() string {
	for _, m := range menuLabels {
		if m.cmd == c {
			return m.label
		}
	}
	return ""
}

// IsValid reports whether c is one of the menu commands.
func (c MenuCommand) IsValid() bool {
	return c >= CommandAdd && c <= CommandExit
}

// ParseMenuCommand parses a line of user input into a menu command.
// Surrounding whitespace is ignored. Non-numeric input and numbers outside
// the menu return ErrInvalidMenuChoice.
func ParseMenuCommand(s string) (MenuCommand, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidMenuChoice)
	}
	cmd := MenuCommand(n)
	if !cmd.IsValid() {
		return 0, fmt.Errorf("option %d: %w", n, ErrInvalidMenuChoice)
	}
	return cmd, nil
}

// ParseIndex parses a line of user input into a display index.
// Non-numeric input returns ErrInvalidIndex. Range checking is left to the caller,
// which knows the current list size.
func ParseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidIndex)
	}
	return n, nil
}
