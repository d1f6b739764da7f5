// Package mux provides an abstraction over terminal multiplexers (tmux, zellij).
//
// This package is pure transport. Each backend turns a layout request into
// the control commands its multiplexer understands; none of them keeps state
// between calls.
package mux

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/timvw/gh-ghq-cd/internal/logging"
	telem "github.com/timvw/gh-ghq-cd/internal/otel"
)

var log = logging.NewLogger("mux")

// ErrInvalidPath is returned when a start directory is not valid UTF-8 text.
var ErrInvalidPath = errors.New("repository path contains invalid UTF-8")

// WindowConfig names a window or pane and the directory it starts in.
type WindowConfig struct {
	Name     string
	StartDir string
}

// NewWindowConfig derives the window name from the last path segment of dir.
func NewWindowConfig(dir string) WindowConfig {
	return WindowConfig{Name: filepath.Base(dir), StartDir: dir}
}

// Validate reports ErrInvalidPath when StartDir is not valid UTF-8.
func (cfg WindowConfig) Validate() error {
	if !utf8.ValidString(cfg.StartDir) {
		return fmt.Errorf("%q: %w", cfg.StartDir, ErrInvalidPath)
	}
	return nil
}

// startDir returns cfg.StartDir once it has been checked to be valid text.
func (cfg WindowConfig) startDir() (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return cfg.StartDir, nil
}

// Multiplexer abstracts terminal multiplexer operations.
// Implementations exist for tmux, zellij and a no-op stand-in used outside
// a multiplexer session.
type Multiplexer interface {
	// Name returns the multiplexer name (e.g., "tmux", "zellij", "none").
	Name() string

	// NewWindow opens a window titled cfg.Name rooted at cfg.StartDir. With
	// paneCount >= 2 the window is split once and both panes get the title.
	NewWindow(ctx context.Context, cfg WindowConfig, paneCount int, horizontal bool) error

	// RenameWindow renames the active window.
	RenameWindow(ctx context.Context, name string) error

	// NewPane carves a new pane out of the current window. With
	// paneCount >= 2 the new region is split once more, perpendicular to
	// the first split.
	NewPane(ctx context.Context, cfg WindowConfig, paneCount int, horizontal bool) error

	// SendKeys types text into the active pane followed by Enter.
	SendKeys(ctx context.Context, text string) error
}

// record logs and counts one backend operation.
func record(ctx context.Context, metrics *telem.Metrics, backend, op string, fields map[string]any) {
	log.WithFields(fields).Debugf("%s %s", backend, op)
	metrics.RecordMuxOperation(ctx, backend, op)
}
