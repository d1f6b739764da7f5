// Package app wires the repository selection to its outcome: a new
// multiplexer window or pane, or a shell in the chosen directory.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/timvw/gh-ghq-cd/internal/command"
	"github.com/timvw/gh-ghq-cd/internal/logging"
	"github.com/timvw/gh-ghq-cd/internal/model"
	"github.com/timvw/gh-ghq-cd/internal/mux"
	"github.com/timvw/gh-ghq-cd/internal/shell"
)

var log = logging.NewLogger("app")

// ErrInvalidFlagCombination is returned for option sets that are rejected
// before any external command runs.
var ErrInvalidFlagCombination = errors.New("invalid flag combination")

// Environment is the process state the orchestrator reads and changes.
type Environment interface {
	Getenv(key string) string
	Chdir(dir string) error
}

// SystemEnvironment is the real process environment.
type SystemEnvironment struct{}

func (SystemEnvironment) Getenv(key string) string { return os.Getenv(key) }
func (SystemEnvironment) Chdir(dir string) error   { return os.Chdir(dir) }

// RepositorySelector picks one repository, returning "" when nothing was
// chosen.
type RepositorySelector interface {
	SelectRepository(ctx context.Context) (string, error)
}

// Options are the per-invocation choices made on the command line.
type Options struct {
	Mode model.Mode
	// Command is typed into the new window or pane when set.
	Command string
}

// Validate rejects a command combined with a two-pane layout: there would
// be no single pane to type it into.
func (o Options) Validate() error {
	if o.Command != "" && o.Mode.Split() {
		return fmt.Errorf("%w: -c/--command cannot be used with multiple panes (-p 2)", ErrInvalidFlagCombination)
	}
	return nil
}

// App holds the collaborators of one invocation. Session presence and the
// shell are resolved once by the caller.
type App struct {
	Env      Environment
	Checker  command.Checker
	Selector RepositorySelector
	Mux      mux.Multiplexer
	Shell    shell.Execer

	// ShellPath is the shell started in CurrentPane mode.
	ShellPath string
	// InSession reports whether Mux drives a live multiplexer session.
	InSession bool
	// Required lists programs that must be on the search path before
	// selection starts.
	Required []string

	// BeforeExec runs right before the shell replaces the process.
	BeforeExec func()
	// Warnf reports user-facing warnings. Defaults to the app logger.
	Warnf func(format string, args ...any)
}

// Run validates opts, checks the required tools, lets the user select a
// repository and opens it. An empty selection is a successful no-op.
func (a *App) Run(ctx context.Context, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	for _, program := range a.Required {
		if err := a.Checker.Check(program); err != nil {
			return err
		}
	}

	selected, err := a.Selector.SelectRepository(ctx)
	if err != nil {
		return err
	}
	if selected == "" {
		log.Debug("nothing selected")
		return nil
	}
	return a.HandleSelection(ctx, selected, opts)
}

// HandleSelection opens selected according to the effective mode. Outside
// a multiplexer session every mode opens in the current pane.
func (a *App) HandleSelection(ctx context.Context, selected string, opts Options) error {
	cfg := mux.NewWindowConfig(selected)
	if err := cfg.Validate(); err != nil {
		return err
	}

	mode := opts.Mode.Effective(a.InSession)
	if mode != opts.Mode {
		log.Debugf("not inside a multiplexer session, %s opens in the current pane", opts.Mode)
	}
	log.WithField("mode", mode.String()).Debugf("opening %s", selected)

	switch mode.Kind {
	case model.NewWindow:
		if err := a.Mux.NewWindow(ctx, cfg, mode.PaneCount, mode.Horizontal); err != nil {
			return err
		}
		return a.sendCommand(ctx, opts.Command)
	case model.NewPane:
		if err := a.Mux.NewPane(ctx, cfg, mode.PaneCount, mode.Horizontal); err != nil {
			return err
		}
		return a.sendCommand(ctx, opts.Command)
	default:
		return a.openHere(ctx, cfg, opts.Command)
	}
}

func (a *App) sendCommand(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	return a.Mux.SendKeys(ctx, text)
}

// openHere renames the window, changes directory and replaces the process
// with the shell, in that order. Renaming is cosmetic and never fatal.
func (a *App) openHere(ctx context.Context, cfg mux.WindowConfig, text string) error {
	if text != "" {
		a.warnf("-c/--command is ignored when opening in the current pane")
	}
	if a.InSession {
		if err := a.Mux.RenameWindow(ctx, cfg.Name); err != nil {
			log.WithError(err).Warnf("could not rename window to %q", cfg.Name)
		}
	}
	if err := a.Env.Chdir(cfg.StartDir); err != nil {
		return fmt.Errorf("failed to cd to %s: %w", cfg.StartDir, err)
	}
	if a.BeforeExec != nil {
		a.BeforeExec()
	}
	return a.Shell.Exec(a.ShellPath)
}

func (a *App) warnf(format string, args ...any) {
	if a.Warnf != nil {
		a.Warnf(format, args...)
		return
	}
	log.Warnf(format, args...)
}
