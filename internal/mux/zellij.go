package mux

import (
	"context"
	"fmt"

	"github.com/timvw/gh-ghq-cd/internal/command"
	telem "github.com/timvw/gh-ghq-cd/internal/otel"
)

// Zellij implements the Multiplexer interface for zellij. Tabs play the
// role of tmux windows. Zellij tiles panes evenly by itself, so there is no
// equivalent of tmux's select-layout step.
type Zellij struct {
	Runner  command.Runner
	Metrics *telem.Metrics
}

var _ Multiplexer = (*Zellij)(nil)

// NewZellij creates a new zellij multiplexer.
func NewZellij(r command.Runner, metrics *telem.Metrics) *Zellij {
	return &Zellij{Runner: r, Metrics: metrics}
}

// Name returns "zellij".
func (z *Zellij) Name() string {
	return "zellij"
}

// NewWindow opens a tab and names its pane; for two panes it adds a second
// pane below (vertical) or to the right (horizontal) and moves focus back.
func (z *Zellij) NewWindow(ctx context.Context, cfg WindowConfig, paneCount int, horizontal bool) error {
	dir, err := cfg.startDir()
	if err != nil {
		return err
	}
	record(ctx, z.Metrics, z.Name(), "new_window", map[string]any{"name": cfg.Name, "panes": paneCount, "horizontal": horizontal})

	if err := z.action(ctx, "new-tab", "--name", cfg.Name, "--cwd", dir); err != nil {
		return err
	}
	if err := z.action(ctx, "rename-pane", cfg.Name); err != nil {
		return err
	}
	if paneCount < 2 {
		return nil
	}

	direction := "down"
	if horizontal {
		direction = "right"
	}
	return z.splitAndReturn(ctx, cfg.Name, dir, direction, horizontal)
}

// RenameWindow renames the active tab.
func (z *Zellij) RenameWindow(ctx context.Context, name string) error {
	record(ctx, z.Metrics, z.Name(), "rename_window", map[string]any{"name": name})
	return z.action(ctx, "rename-tab", name)
}

// NewPane mirrors Tmux.NewPane: the primary pane opens to the right
// (vertical) or below (horizontal); a second pane splits it perpendicular.
func (z *Zellij) NewPane(ctx context.Context, cfg WindowConfig, paneCount int, horizontal bool) error {
	dir, err := cfg.startDir()
	if err != nil {
		return err
	}
	record(ctx, z.Metrics, z.Name(), "new_pane", map[string]any{"name": cfg.Name, "panes": paneCount, "horizontal": horizontal})

	primary := "right"
	if horizontal {
		primary = "down"
	}
	if err := z.action(ctx, "new-pane", "--direction", primary, "--cwd", dir); err != nil {
		return err
	}
	if err := z.action(ctx, "rename-pane", cfg.Name); err != nil {
		return err
	}
	if paneCount < 2 {
		return nil
	}

	secondary := "down"
	if horizontal {
		secondary = "right"
	}
	return z.splitAndReturn(ctx, cfg.Name, dir, secondary, horizontal)
}

// SendKeys writes text into the focused pane, then a newline (byte 10).
func (z *Zellij) SendKeys(ctx context.Context, text string) error {
	record(ctx, z.Metrics, z.Name(), "send_keys", map[string]any{"text": text})
	if err := z.action(ctx, "write-chars", text); err != nil {
		return err
	}
	return z.action(ctx, "write", "10")
}

// splitAndReturn opens a second pane in direction, titles it and moves
// focus back to the first pane.
func (z *Zellij) splitAndReturn(ctx context.Context, name, dir, direction string, horizontal bool) error {
	if err := z.action(ctx, "new-pane", "--direction", direction, "--cwd", dir); err != nil {
		return err
	}
	if err := z.action(ctx, "rename-pane", name); err != nil {
		return err
	}
	back := "up"
	if horizontal {
		back = "left"
	}
	return z.action(ctx, "move-focus", back)
}

// action executes a zellij action.
func (z *Zellij) action(ctx context.Context, args ...string) error {
	full := append([]string{"action"}, args...)
	if _, err := z.Runner.Run(ctx, "zellij", full...); err != nil {
		return fmt.Errorf("zellij action %s: %w", args[0], err)
	}
	return nil
}
