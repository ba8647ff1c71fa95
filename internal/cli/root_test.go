package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/runoshun/gestor-tareas/internal/app"
	"github.com/runoshun/gestor-tareas/internal/infra/memstore"
	"github.com/runoshun/gestor-tareas/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(cfg app.Config, input string) (*bytes.Buffer, *bytes.Buffer, func() error) {
	c := app.NewWithDeps(cfg, memstore.New(), &testutil.MockClock{}, nil)
	root := NewRootCommand(c, "test-version")

	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(input))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{})
	return &stdout, &stderr, root.Execute
}

func TestNewRootCommand_NoArgs_RunsMenu(t *testing.T) {
	stdout, stderr, execute := newTestRoot(app.Config{}, "1\nBuy milk\n4\n5\n")

	require.NoError(t, execute())

	assert.Contains(t, stdout.String(), "1. Buy milk [Pendiente]")
	assert.True(t, strings.HasSuffix(stdout.String(), msgExit))
	assert.Empty(t, stderr.String())
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	cfg := app.Config{Warnings: []string{"unknown section: storage"}}
	stdout, stderr, execute := newTestRoot(cfg, "5\n")

	require.NoError(t, execute())

	assert.Equal(t, "Warning: unknown section: storage\n", stderr.String())
	assert.NotContains(t, stdout.String(), "Warning")
}

func TestNewRootCommand_RejectsArgs(t *testing.T) {
	c := app.NewWithDeps(app.Config{}, memstore.New(), &testutil.MockClock{}, nil)
	root := NewRootCommand(c, "test-version")
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"add", "Buy milk"})

	err := root.Execute()

	assert.Error(t, err)
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "1.2.3")
}

func TestNewRootCommand_NilContainer(t *testing.T) {
	root := NewRootCommand(nil, "test-version")
	root.SetIn(strings.NewReader("5\n"))
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}
