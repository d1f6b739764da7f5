package selection

import (
	"strings"

	"github.com/timvw/gh-ghq-cd/internal/model"
)

// BuildItems pairs every repository path with its display label: the path
// relative to the longest root that prefixes it (the earlier root on a tie),
// with leading separators removed. A path under no root is displayed
// verbatim.
func BuildItems(roots, repos []string) []model.Item {
	items := make([]model.Item, 0, len(repos))
	for _, full := range repos {
		items = append(items, model.Item{Display: displayPath(roots, full), Value: full})
	}
	return items
}

func displayPath(roots []string, full string) string {
	best := ""
	for _, root := range roots {
		if len(root) > len(best) && strings.HasPrefix(full, root) {
			best = root
		}
	}
	if best == "" {
		return full
	}
	if label := strings.TrimLeft(full[len(best):], "/"); label != "" {
		return label
	}
	return full
}
