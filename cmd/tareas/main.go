// Package main is the entry point for the tareas CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/gestor-tareas/internal/app"
	"github.com/runoshun/gestor-tareas/internal/cli"
	"github.com/runoshun/gestor-tareas/internal/infra/config"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Create dependency injection container
	container, err := app.New(config.NewLoader())
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
