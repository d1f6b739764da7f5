package mux

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timvw/gh-ghq-cd/internal/command/commandtest"
)

func TestZellij_NewWindow(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		horizontal bool
		want       []string
	}{
		{
			name: "single pane",
			want: []string{
				"zellij action new-tab --name r --cwd " + repoDir,
				"zellij action rename-pane r",
			},
		},
		{
			name:  "two panes vertical",
			count: 2,
			want: []string{
				"zellij action new-tab --name r --cwd " + repoDir,
				"zellij action rename-pane r",
				"zellij action new-pane --direction down --cwd " + repoDir,
				"zellij action rename-pane r",
				"zellij action move-focus up",
			},
		},
		{
			name:       "two panes horizontal",
			count:      2,
			horizontal: true,
			want: []string{
				"zellij action new-tab --name r --cwd " + repoDir,
				"zellij action rename-pane r",
				"zellij action new-pane --direction right --cwd " + repoDir,
				"zellij action rename-pane r",
				"zellij action move-focus left",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := commandtest.New()
			err := NewZellij(rec, nil).NewWindow(context.Background(), NewWindowConfig(repoDir), tt.count, tt.horizontal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Lines())
		})
	}
}

func TestZellij_NewPane(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		horizontal bool
		want       []string
	}{
		{
			name:  "single vertical",
			count: 1,
			want: []string{
				"zellij action new-pane --direction right --cwd " + repoDir,
				"zellij action rename-pane r",
			},
		},
		{
			name:       "single horizontal",
			count:      1,
			horizontal: true,
			want: []string{
				"zellij action new-pane --direction down --cwd " + repoDir,
				"zellij action rename-pane r",
			},
		},
		{
			name:  "two panes vertical",
			count: 2,
			want: []string{
				"zellij action new-pane --direction right --cwd " + repoDir,
				"zellij action rename-pane r",
				"zellij action new-pane --direction down --cwd " + repoDir,
				"zellij action rename-pane r",
				"zellij action move-focus up",
			},
		},
		{
			name:       "two panes horizontal",
			count:      2,
			horizontal: true,
			want: []string{
				"zellij action new-pane --direction down --cwd " + repoDir,
				"zellij action rename-pane r",
				"zellij action new-pane --direction right --cwd " + repoDir,
				"zellij action rename-pane r",
				"zellij action move-focus left",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := commandtest.New()
			err := NewZellij(rec, nil).NewPane(context.Background(), NewWindowConfig(repoDir), tt.count, tt.horizontal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Lines())
		})
	}
}

func TestZellij_RenameAndSendKeys(t *testing.T) {
	rec := commandtest.New()
	z := NewZellij(rec, nil)
	ctx := context.Background()

	require.NoError(t, z.RenameWindow(ctx, "r"))
	require.NoError(t, z.SendKeys(ctx, "claude"))
	assert.Equal(t, []string{
		"zellij action rename-tab r",
		"zellij action write-chars claude",
		"zellij action write 10",
	}, rec.Lines())
}

func TestZellij_InvalidPath(t *testing.T) {
	rec := commandtest.New()
	cfg := WindowConfig{Name: "bad", StartDir: "\xc3\x28"}
	assert.ErrorIs(t, NewZellij(rec, nil).NewWindow(context.Background(), cfg, 0, false), ErrInvalidPath)
	assert.ErrorIs(t, NewZellij(rec, nil).NewPane(context.Background(), cfg, 2, false), ErrInvalidPath)
	assert.Empty(t, rec.Calls)
}
