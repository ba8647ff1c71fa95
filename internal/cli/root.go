// Package cli provides the command-line interface for gestor-tareas.
package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/gestor-tareas/internal/app"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for gestor-tareas.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tareas",
		Short: "Interactive in-memory task list",
		Long: `tareas runs an interactive menu for keeping a list of tasks:
add a task, mark it completed, delete it, or show the whole list.

Tasks live in memory only and are discarded when the program exits.
Optional settings are read from $XDG_CONFIG_HOME/gestor-tareas/config.toml
(or config.yaml).`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return nil
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return errors.New("application not initialized")
			}
			menu := NewMenu(c, cmd.InOrStdin(), cmd.OutOrStdout())
			return menu.Run(cmd.Context())
		},
	}

	return root
}
