// Package model holds the value types shared between the selector, the
// multiplexer layer and the command line.
package model

import "fmt"

// Item is one candidate in a selection session.
type Item struct {
	// Display is the filterable label, the path relative to its ghq root.
	Display string
	// Value is the full repository path returned when the item is chosen.
	Value string
}

// ModeKind selects where the chosen repository is opened.
type ModeKind int

const (
	// CurrentPane changes directory and replaces the process with a shell.
	CurrentPane ModeKind = iota
	// NewWindow opens a new multiplexer window, optionally split.
	NewWindow
	// NewPane splits the current multiplexer window.
	NewPane
)

func (k ModeKind) String() string {
	switch k {
	case CurrentPane:
		return "current-pane"
	case NewWindow:
		return "new-window"
	case NewPane:
		return "new-pane"
	default:
		return fmt.Sprintf("ModeKind(%d)", int(k))
	}
}

// MaxPanes is the largest pane count a layout produces.
const MaxPanes = 2

// Mode is derived once from the command-line flags. The zero value is
// CurrentPane.
type Mode struct {
	Kind ModeKind
	// PaneCount is 0 (no split) or 1..MaxPanes.
	PaneCount int
	// Horizontal selects a left/right split instead of top/bottom.
	Horizontal bool
}

// ModeFromFlags maps the CLI flag combination to a Mode. newPane is 0 when
// -p was not given.
//
//	-w            NewWindow{0}
//	-w -p N       NewWindow{N}
//	-p N          NewPane{N}
//	(none)        CurrentPane
func ModeFromFlags(newWindow bool, newPane int, horizontal bool) Mode {
	switch {
	case newPane > 0 && newWindow:
		return Mode{Kind: NewWindow, PaneCount: newPane, Horizontal: horizontal}
	case newPane > 0:
		return Mode{Kind: NewPane, PaneCount: newPane, Horizontal: horizontal}
	case newWindow:
		return Mode{Kind: NewWindow}
	default:
		return Mode{}
	}
}

// Effective returns the mode that is honored. Outside a multiplexer
// session every mode collapses to CurrentPane.
func (m Mode) Effective(inSession bool) Mode {
	if !inSession {
		return Mode{}
	}
	return m
}

// Split reports whether the layout has more than one pane.
func (m Mode) Split() bool {
	return m.PaneCount >= MaxPanes
}

func (m Mode) String() string {
	if m.Kind == CurrentPane {
		return m.Kind.String()
	}
	orientation := "vertical"
	if m.Horizontal {
		orientation = "horizontal"
	}
	return fmt.Sprintf("%s(panes=%d, %s)", m.Kind, m.PaneCount, orientation)
}
