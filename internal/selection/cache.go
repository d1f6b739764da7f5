package selection

import (
	"crypto/sha256"
	"fmt"
	"sync"
)

// PreviewCache keeps rendered README previews for one selection session so
// moving the cursor back and forth does not re-render markdown.
//
// Entries are keyed by repository path and are only valid for the same
// README content and the same render width.
type PreviewCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry // keyed by repository path
	hits    int64
	misses  int64
}

type cacheEntry struct {
	contentHash string
	width       int
	rendered    string
}

// NewPreviewCache creates an empty cache.
func NewPreviewCache() *PreviewCache {
	return &PreviewCache{entries: make(map[string]*cacheEntry)}
}

// Lookup returns the rendered preview for path if it was stored for the
// same content and width.
func (c *PreviewCache) Lookup(path, content string, width int) (string, bool) {
	if c == nil {
		return "", false
	}
	hash := hashContent(content)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[path]
	if !ok || entry.contentHash != hash || entry.width != width {
		c.misses++
		return "", false
	}
	c.hits++
	return entry.rendered, true
}

// Store saves the rendered preview for path.
func (c *PreviewCache) Store(path, content string, width int, rendered string) {
	if c == nil {
		return
	}
	hash := hashContent(content)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = &cacheEntry{
		contentHash: hash,
		width:       width,
		rendered:    rendered,
	}
}

// CacheStats summarizes cache use.
type CacheStats struct {
	Entries int
	Hits    int64
	Misses  int64
}

// Stats returns cache statistics. A nil cache reports zeros.
func (c *PreviewCache) Stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
}

// hashContent returns a hex-encoded SHA256 hash of the content.
func hashContent(content string) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x", h)
}
