// Package shell replaces the running process with the user's shell.
package shell

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/timvw/gh-ghq-cd/internal/logging"
)

var log = logging.NewLogger("shell")

// DefaultShell is used when neither config nor $SHELL name a shell.
const DefaultShell = "/bin/sh"

// Execer hands the terminal over to a shell. On unix a successful Exec
// never returns.
type Execer interface {
	Exec(shell string) error
}

// Resolve picks the shell to start: the configured one, then $SHELL, then
// DefaultShell.
func Resolve(configured string, getenv func(string) string) string {
	if configured != "" {
		return configured
	}
	if sh := getenv("SHELL"); sh != "" {
		return sh
	}
	return DefaultShell
}

// System starts shells with the platform's process replacement.
type System struct{}

var _ Execer = System{}

func (System) Exec(shell string) error {
	path, err := lookPath(shell)
	if err != nil {
		return fmt.Errorf("exec %s: %w", shell, err)
	}
	wd, _ := os.Getwd()
	log.WithField("dir", wd).Debugf("exec %s", path)
	if err := replace(path, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}

// lookPath resolves bare shell names on $PATH. Paths are used as given.
func lookPath(shell string) (string, error) {
	if filepath.IsAbs(shell) || filepath.Base(shell) != shell {
		return shell, nil
	}
	return exec.LookPath(shell)
}
