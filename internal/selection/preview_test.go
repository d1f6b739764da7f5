package selection

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReadme(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ReadmeFile), []byte(content), 0o644))
	return dir
}

func TestRender_Readme(t *testing.T) {
	dir := writeReadme(t, "hello from the readme\n")
	p := NewPreviewer("notty", nil)

	out := p.Render(context.Background(), dir, 60)
	assert.Contains(t, out, "hello from the readme")
}

func TestRender_MissingReadme(t *testing.T) {
	p := NewPreviewer("notty", nil)
	assert.Equal(t, NoReadme, p.Render(context.Background(), t.TempDir(), 60))
}

func TestRender_NoSelection(t *testing.T) {
	p := NewPreviewer("notty", nil)
	assert.Equal(t, NoSelected, p.Render(context.Background(), "", 60))
}

func TestRender_UsesCache(t *testing.T) {
	dir := writeReadme(t, "cached\n")
	p := NewPreviewer("notty", nil)
	ctx := context.Background()

	first := p.Render(ctx, dir, 40)
	second := p.Render(ctx, dir, 40)
	assert.Equal(t, first, second)

	stats := p.Cache.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestRender_WidthChangeRerenders(t *testing.T) {
	dir := writeReadme(t, "cached\n")
	p := NewPreviewer("notty", nil)
	ctx := context.Background()

	p.Render(ctx, dir, 40)
	p.Render(ctx, dir, 80)

	stats := p.Cache.Stats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, 1, stats.Entries)
}

func TestRender_ContentChangeRerenders(t *testing.T) {
	dir := writeReadme(t, "before\n")
	p := NewPreviewer("notty", nil)
	ctx := context.Background()

	assert.Contains(t, p.Render(ctx, dir, 40), "before")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ReadmeFile), []byte("after\n"), 0o644))
	assert.Contains(t, p.Render(ctx, dir, 40), "after")
}
