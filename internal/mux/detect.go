package mux

import (
	"fmt"

	"github.com/timvw/gh-ghq-cd/internal/command"
	telem "github.com/timvw/gh-ghq-cd/internal/otel"
)

// Session environment variables set by each multiplexer inside its panes.
const (
	EnvTmux   = "TMUX"
	EnvZellij = "ZELLIJ"
)

// Detect returns the name of the multiplexer session the process runs in,
// or "" when it is not inside one. tmux wins when both are set.
func Detect(getenv func(string) string) string {
	if getenv(EnvTmux) != "" {
		return "tmux"
	}
	if getenv(EnvZellij) != "" {
		return "zellij"
	}
	return ""
}

// FromName creates a Multiplexer by name:
//
//	"" or "auto"  whichever session Detect finds, else Noop
//	"tmux"        Tmux when inside tmux, else Noop
//	"zellij"      Zellij when inside zellij, else Noop
//	"none"        Noop
//
// A backend is never returned outside its own session, so callers can use
// Name() != "none" as the in-session test.
func FromName(name string, getenv func(string) string, r command.Runner, metrics *telem.Metrics) (Multiplexer, error) {
	active := Detect(getenv)
	switch name {
	case "", "auto":
		name = active
	case "tmux", "zellij":
		if getenv(envFor(name)) == "" {
			log.Debugf("not inside %s, multiplexer disabled", name)
			return Noop{}, nil
		}
	case "none":
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown multiplexer: %q (supported: auto, tmux, zellij, none)", name)
	}

	switch name {
	case "tmux":
		return NewTmux(r, metrics), nil
	case "zellij":
		return NewZellij(r, metrics), nil
	default:
		return Noop{}, nil
	}
}

// InSession reports whether m drives a real multiplexer session.
func InSession(m Multiplexer) bool {
	_, noop := m.(Noop)
	return m != nil && !noop
}

func envFor(name string) string {
	if name == "zellij" {
		return EnvZellij
	}
	return EnvTmux
}
