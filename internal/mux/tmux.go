package mux

import (
	"context"
	"fmt"

	"github.com/timvw/gh-ghq-cd/internal/command"
	telem "github.com/timvw/gh-ghq-cd/internal/otel"
)

// Tmux implements the Multiplexer interface for tmux.
type Tmux struct {
	Runner  command.Runner
	Metrics *telem.Metrics
}

var _ Multiplexer = (*Tmux)(nil)

// NewTmux creates a new tmux multiplexer.
func NewTmux(r command.Runner, metrics *telem.Metrics) *Tmux {
	return &Tmux{Runner: r, Metrics: metrics}
}

// Name returns "tmux".
func (t *Tmux) Name() string {
	return "tmux"
}

// NewWindow creates the window and, for two panes, splits it:
//
//	vertical (default): -v, top/bottom
//	horizontal:         -h, left/right
//
// Both panes are titled, focus returns to the first and sizes are equalized.
func (t *Tmux) NewWindow(ctx context.Context, cfg WindowConfig, paneCount int, horizontal bool) error {
	dir, err := cfg.startDir()
	if err != nil {
		return err
	}
	record(ctx, t.Metrics, t.Name(), "new_window", map[string]any{"name": cfg.Name, "panes": paneCount, "horizontal": horizontal})

	if err := t.run(ctx, "new-window", "-n", cfg.Name, "-c", dir); err != nil {
		return err
	}
	if paneCount < 2 {
		return nil
	}

	split := "-v"
	if horizontal {
		split = "-h"
	}
	if err := t.run(ctx, "split-window", split, "-c", dir); err != nil {
		return err
	}
	if err := t.titleBoth(ctx, cfg.Name, horizontal); err != nil {
		return err
	}
	return t.run(ctx, "select-layout", "-E")
}

// RenameWindow renames the active window.
func (t *Tmux) RenameWindow(ctx context.Context, name string) error {
	record(ctx, t.Metrics, t.Name(), "rename_window", map[string]any{"name": name})
	return t.run(ctx, "rename-window", name)
}

// NewPane splits the current window with a full-size split so the new pane
// spans the whole window edge:
//
//	vertical (default): -hf, new column on the right
//	horizontal:         -vf, new row at the bottom
//
// For two panes the new region is split once more, perpendicular to the
// first split.
func (t *Tmux) NewPane(ctx context.Context, cfg WindowConfig, paneCount int, horizontal bool) error {
	dir, err := cfg.startDir()
	if err != nil {
		return err
	}
	record(ctx, t.Metrics, t.Name(), "new_pane", map[string]any{"name": cfg.Name, "panes": paneCount, "horizontal": horizontal})

	primary := "-hf"
	if horizontal {
		primary = "-vf"
	}
	if err := t.run(ctx, "split-window", primary, "-c", dir); err != nil {
		return err
	}
	if err := t.run(ctx, "select-pane", "-T", cfg.Name); err != nil {
		return err
	}

	if paneCount >= 2 {
		secondary := "-v"
		if horizontal {
			secondary = "-h"
		}
		if err := t.run(ctx, "split-window", secondary, "-c", dir); err != nil {
			return err
		}
		if err := t.titleBoth(ctx, cfg.Name, horizontal); err != nil {
			return err
		}
	}

	return t.run(ctx, "select-layout", "-E")
}

// SendKeys types text in literal mode, so key names such as "Enter" inside
// text are not interpreted, then submits it with Enter.
func (t *Tmux) SendKeys(ctx context.Context, text string) error {
	record(ctx, t.Metrics, t.Name(), "send_keys", map[string]any{"text": text})
	if err := t.run(ctx, "send-keys", "-l", text); err != nil {
		return fmt.Errorf("send literal keys: %w", err)
	}
	return t.run(ctx, "send-keys", "Enter")
}

// titleBoth titles the two panes of a fresh split, visiting the first
// (up/left) pane, then the second (down/right), and returns focus to the
// first.
func (t *Tmux) titleBoth(ctx context.Context, name string, horizontal bool) error {
	first, second := "-U", "-D"
	if horizontal {
		first, second = "-L", "-R"
	}
	steps := [][]string{
		{"select-pane", first},
		{"select-pane", "-T", name},
		{"select-pane", second},
		{"select-pane", "-T", name},
		{"select-pane", first},
	}
	for _, args := range steps {
		if err := t.run(ctx, args...); err != nil {
			return err
		}
	}
	return nil
}

// run executes a tmux command.
func (t *Tmux) run(ctx context.Context, args ...string) error {
	if _, err := t.Runner.Run(ctx, "tmux", args...); err != nil {
		return fmt.Errorf("tmux %s: %w", args[0], err)
	}
	return nil
}
