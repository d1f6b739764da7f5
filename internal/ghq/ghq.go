// Package ghq lists the repositories managed by ghq.
package ghq

import (
	"context"
	"fmt"

	"github.com/timvw/gh-ghq-cd/internal/command"
)

// DefaultBinary is the ghq executable looked up on $PATH.
const DefaultBinary = "ghq"

// Client reads root directories and repository paths from ghq.
type Client struct {
	Runner command.Runner
	Binary string
}

// New returns a Client running binary (DefaultBinary when empty).
func New(r command.Runner, binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{Runner: r, Binary: binary}
}

// Roots returns every configured ghq root in the order ghq reports them.
func (c *Client) Roots(ctx context.Context) ([]string, error) {
	out, err := c.Runner.Run(ctx, c.Binary, "root", "--all")
	if err != nil {
		return nil, fmt.Errorf("ghq root: %w", err)
	}
	return command.Lines(out), nil
}

// ListFullPath returns the absolute path of every tracked repository,
// in ghq's order.
func (c *Client) ListFullPath(ctx context.Context) ([]string, error) {
	out, err := c.Runner.Run(ctx, c.Binary, "list", "--full-path")
	if err != nil {
		return nil, fmt.Errorf("ghq list: %w", err)
	}
	return command.Lines(out), nil
}
