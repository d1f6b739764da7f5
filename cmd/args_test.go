package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name       string
		in         []string
		want       []string
		deprecated bool
	}{
		{name: "empty", in: []string{}, want: []string{}},
		{name: "nw rewritten", in: []string{"-nw"}, want: []string{"--new-window"}, deprecated: true},
		{name: "pane count separate", in: []string{"-p", "2", "-H"}, want: []string{"--new-pane=2", "-H"}},
		{name: "long pane count separate", in: []string{"--new-pane", "1"}, want: []string{"--new-pane=1"}},
		{name: "bare pane followed by flag", in: []string{"-p", "-V"}, want: []string{"-p", "-V"}},
		{name: "attached pane count", in: []string{"-p2"}, want: []string{"--new-pane=2"}},
		{name: "clustered pane count separate", in: []string{"-wp", "2"}, want: []string{"-w", "--new-pane=2"}},
		{name: "clustered pane count attached", in: []string{"-wHp2"}, want: []string{"-wH", "--new-pane=2"}},
		{name: "clustered bare pane", in: []string{"-wp", "-V"}, want: []string{"-wp", "-V"}},
		{name: "pane equals form untouched", in: []string{"-p=2"}, want: []string{"-p=2"}},
		{name: "clustered command value untouched", in: []string{"-wc", "-p2"}, want: []string{"-wc", "-p2"}},
		{name: "command value untouched", in: []string{"-c", "-nw", "-p", "2"}, want: []string{"-c", "-nw", "--new-pane=2"}},
		{name: "after double dash untouched", in: []string{"--", "-nw"}, want: []string{"--", "-nw"}},
		{name: "window and pane", in: []string{"-nw", "-p", "2"}, want: []string{"--new-window", "--new-pane=2"}, deprecated: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, deprecated := normalizeArgs(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.deprecated, deprecated)
		})
	}
}

// parseLayout runs the root flag set over the normalized args.
func parseLayout(t *testing.T, args []string) {
	t.Helper()
	flagNewWindow, flagNewPane, flagHorizontal, flagCommand = false, 0, false, ""
	t.Cleanup(func() {
		flagNewWindow, flagNewPane, flagHorizontal, flagCommand = false, 0, false, ""
	})
	norm, _ := normalizeArgs(args)
	require.NoError(t, rootCmd.Flags().Parse(norm))
	assert.Empty(t, rootCmd.Flags().Args(), "no positional arguments may remain")
}

func TestNormalizeArgs_PaneCountParses(t *testing.T) {
	tests := []struct {
		name       string
		in         []string
		newWindow  bool
		newPane    int
		horizontal bool
	}{
		{name: "separate", in: []string{"-p", "2"}, newPane: 2},
		{name: "attached", in: []string{"-p2"}, newPane: 2},
		{name: "equals", in: []string{"-p=2"}, newPane: 2},
		{name: "long separate", in: []string{"--new-pane", "2"}, newPane: 2},
		{name: "bare", in: []string{"-p"}, newPane: 1},
		{name: "bare before flag", in: []string{"-p", "-H"}, newPane: 1, horizontal: true},
		{name: "clustered separate", in: []string{"-wp", "2"}, newWindow: true, newPane: 2},
		{name: "clustered attached", in: []string{"-wp2", "-H"}, newWindow: true, newPane: 2, horizontal: true},
		{name: "clustered bare", in: []string{"-wp"}, newWindow: true, newPane: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseLayout(t, tt.in)
			assert.Equal(t, tt.newWindow, flagNewWindow)
			assert.Equal(t, tt.newPane, flagNewPane)
			assert.Equal(t, tt.horizontal, flagHorizontal)
		})
	}
}

func TestNormalizeArgs_CommandValueParses(t *testing.T) {
	parseLayout(t, []string{"-wc", "-p2", "-p", "2"})
	assert.True(t, flagNewWindow)
	assert.Equal(t, "-p2", flagCommand)
	assert.Equal(t, 2, flagNewPane)
}
