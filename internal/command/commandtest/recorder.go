// Package commandtest provides a recording command.Runner for tests.
package commandtest

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/timvw/gh-ghq-cd/internal/command"
)

// Call is one recorded invocation.
type Call struct {
	Program string
	Args    []string
	Stdin   string
}

// String renders the call as a shell-like line, e.g. "tmux select-pane -T r".
func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}

// Response is what the Recorder returns for a matching call.
type Response struct {
	Out string
	Err error
}

// Recorder records every call and answers from Responses, keyed by the
// call's String() form. Unknown calls succeed with empty output.
type Recorder struct {
	mu        sync.Mutex
	Calls     []Call
	Responses map[string]Response
	// Missing lists programs that Check reports as absent.
	Missing map[string]bool
	Checked []string
}

var (
	_ command.Runner  = (*Recorder)(nil)
	_ command.Checker = (*Recorder)(nil)
)

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{Responses: map[string]Response{}, Missing: map[string]bool{}}
}

// On registers a response for the call line.
func (r *Recorder) On(line string, out string, err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Responses[line] = Response{Out: out, Err: err}
	return r
}

func (r *Recorder) Run(ctx context.Context, program string, args ...string) (string, error) {
	return r.record(Call{Program: program, Args: append([]string(nil), args...)})
}

func (r *Recorder) RunInput(ctx context.Context, in io.Reader, program string, args ...string) (string, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return r.record(Call{Program: program, Args: append([]string(nil), args...), Stdin: string(data)})
}

func (r *Recorder) Check(program string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Checked = append(r.Checked, program)
	if r.Missing[program] {
		return &notFound{program: program}
	}
	return nil
}

// Lines returns the String() form of every recorded call.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = c.String()
	}
	return lines
}

func (r *Recorder) record(c Call) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, c)
	resp := r.Responses[c.String()]
	return resp.Out, resp.Err
}

type notFound struct{ program string }

func (e *notFound) Error() string { return e.program + " not found on the system" }

func (e *notFound) Unwrap() error { return command.ErrCommandNotFound }
