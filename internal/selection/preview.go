package selection

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"

	telem "github.com/timvw/gh-ghq-cd/internal/otel"
)

// Preview fallbacks.
const (
	NoReadme   = "No README.md"
	NoSelected = "No item selected"
)

// ReadmeFile is the file rendered in the preview panel.
const ReadmeFile = "README.md"

// Previewer renders a repository's README for the preview panel.
type Previewer struct {
	// Style is a glamour standard style name ("dark", "light", "notty").
	Style   string
	Cache   *PreviewCache
	Metrics *telem.Metrics
}

// NewPreviewer returns a Previewer with its own cache.
func NewPreviewer(style string, metrics *telem.Metrics) *Previewer {
	return &Previewer{Style: style, Cache: NewPreviewCache(), Metrics: metrics}
}

// Render returns the rendered README of the repository at path, wrapped to
// width columns. A missing or unreadable README yields NoReadme.
func (p *Previewer) Render(ctx context.Context, path string, width int) string {
	if path == "" {
		return NoSelected
	}
	data, err := os.ReadFile(filepath.Join(path, ReadmeFile))
	if err != nil {
		return NoReadme
	}
	content := string(data)

	if rendered, ok := p.Cache.Lookup(path, content, width); ok {
		p.Metrics.RecordCacheHit(ctx)
		return rendered
	}
	p.Metrics.RecordCacheMiss(ctx)

	rendered := p.render(content, width)
	p.Cache.Store(path, content, width, rendered)
	return rendered
}

// render falls back to the raw markdown when glamour cannot render it.
func (p *Previewer) render(content string, width int) string {
	style := p.Style
	if style == "" {
		style = "dark"
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		log.WithError(err).Debug("glamour renderer")
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		log.WithError(err).Debug("glamour render")
		return content
	}
	return strings.TrimRight(out, "\n")
}
