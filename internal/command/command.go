// Package command runs external programs and probes the search path for them.
//
// Every component that talks to an external tool (ghq, fzf, tmux, zellij)
// goes through a Runner so tests can substitute a recording fake.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/timvw/gh-ghq-cd/internal/logging"
)

var log = logging.NewLogger("command")

var (
	// ErrCommandNotFound is returned by Checker.Check when a tool is not on $PATH.
	ErrCommandNotFound = errors.New("command not found")
	// ErrCommandFailed matches every *FailedError via errors.Is.
	ErrCommandFailed = errors.New("command failed")
)

// FailedError describes an external program that could not be spawned or
// exited non-zero.
type FailedError struct {
	Program  string
	Args     []string
	ExitCode int // -1 when the process could not be started
	Stderr   string
	Err      error
}

func (e *FailedError) Error() string {
	msg := fmt.Sprintf("%s failed", e.Program)
	if len(e.Args) > 0 {
		msg = fmt.Sprintf("%s %s failed", e.Program, strings.Join(e.Args, " "))
	}
	if e.ExitCode >= 0 {
		msg += fmt.Sprintf(" (exit status %d)", e.ExitCode)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	} else if e.Err != nil && e.ExitCode < 0 {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FailedError) Unwrap() error { return e.Err }

// Is reports ErrCommandFailed as a match so callers need not know the type.
func (e *FailedError) Is(target error) bool { return target == ErrCommandFailed }

// Runner runs external programs and returns their standard output.
type Runner interface {
	// Run runs program with args and returns stdout.
	Run(ctx context.Context, program string, args ...string) (string, error)
	// RunInput is Run with stdin connected to r. Stderr stays attached to
	// the terminal so interactive filters can draw their UI.
	RunInput(ctx context.Context, r io.Reader, program string, args ...string) (string, error)
}

// Checker reports whether a program can be found on the search path.
type Checker interface {
	Check(program string) error
}

// System runs real processes.
type System struct{}

// Compile-time interface verification
var (
	_ Runner  = System{}
	_ Checker = System{}
)

// Run executes program and captures stdout. Stderr is captured for the error
// message.
func (System) Run(ctx context.Context, program string, args ...string) (string, error) {
	log.WithField("args", args).Debugf("run %s", program)
	cmd := exec.CommandContext(ctx, program, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", failure(program, args, err, stderr.String())
	}
	return string(out), nil
}

// RunInput executes program with r as stdin.
func (System) RunInput(ctx context.Context, r io.Reader, program string, args ...string) (string, error) {
	log.WithField("args", args).Debugf("run %s (with stdin)", program)
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stdin = r
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return "", failure(program, args, err, "")
	}
	return string(out), nil
}

// Check looks program up on $PATH without running it.
func (System) Check(program string) error {
	if _, err := exec.LookPath(program); err != nil {
		return fmt.Errorf("%s not found on the system: %w", program, ErrCommandNotFound)
	}
	return nil
}

func failure(program string, args []string, err error, stderr string) error {
	fe := &FailedError{Program: program, Args: args, ExitCode: -1, Stderr: stderr, Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		fe.ExitCode = exitErr.ExitCode()
		if fe.Stderr == "" {
			fe.Stderr = string(exitErr.Stderr)
		}
	}
	return fe
}

// ExitCode returns the exit status carried by err, or -1 when err is not a
// *FailedError from a process that ran.
func ExitCode(err error) int {
	var fe *FailedError
	if errors.As(err, &fe) {
		return fe.ExitCode
	}
	return -1
}

// Lines splits program output on newlines, dropping blank lines and
// trailing carriage returns. Order is preserved.
func Lines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
