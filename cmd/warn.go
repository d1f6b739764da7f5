package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")) // yellow

// warnf prints "warning: <msg>" to w, with a styled prefix when w is a
// terminal.
func warnf(w io.Writer, format string, args ...any) {
	prefix := "warning"
	if isTerminal(w) {
		prefix = warningStyle.Render(prefix)
	}
	fmt.Fprintf(w, "%s: %s\n", prefix, fmt.Sprintf(format, args...))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
