package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/gestor-tareas/internal/domain"
)

// Colors used for status labels when color output is enabled.
var statusColors = struct {
	Pending   lipgloss.Color
	Completed lipgloss.Color
}{
	Pending:   lipgloss.Color("#FDCB6E"), // Yellow
	Completed: lipgloss.Color("#00B894"), // Green
}

// statusStyles renders task status labels.
// With color disabled, labels are written verbatim.
type statusStyles struct {
	pending   lipgloss.Style
	completed lipgloss.Style
	enabled   bool
}

// newStatusStyles builds styles bound to out. The renderer detects the color
// profile of out, so a non-terminal writer gets plain text even when color is on.
func newStatusStyles(out io.Writer, color bool) statusStyles {
	if !color {
		return statusStyles{}
	}
	r := lipgloss.NewRenderer(out)
	return statusStyles{
		pending:   r.NewStyle().Foreground(statusColors.Pending),
		completed: r.NewStyle().Foreground(statusColors.Completed).Bold(true),
		enabled:   true,
	}
}

// Render returns the label for status.
func (s statusStyles) Render(status domain.Status) string {
	if !s.enabled {
		return status.String()
	}
	if status.IsCompleted() {
		return s.completed.Render(status.String())
	}
	return s.pending.Render(status.String())
}

// writeTaskList writes the header and one line per task:
//
//	<index>. <description> [<status>]
func writeTaskList(w io.Writer, tasks []domain.IndexedTask, styles statusStyles) {
	_, _ = io.WriteString(w, listHeader)
	for _, it := range tasks {
		_, _ = fmt.Fprintf(w, "%d. %s [%s]\n", it.Index, it.Task.Description, styles.Render(it.Task.Status()))
	}
}
