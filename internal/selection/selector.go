// Package selection turns the repositories known to ghq into one
// interactively chosen path.
//
// Candidates are shown by their root-relative label; the full path is only
// ever the bound return value and is never part of the filterable text.
package selection

import (
	"context"

	"github.com/timvw/gh-ghq-cd/internal/logging"
	"github.com/timvw/gh-ghq-cd/internal/model"
	telem "github.com/timvw/gh-ghq-cd/internal/otel"
)

var log = logging.NewLogger("selection")

// Lister provides root directories and repository paths.
type Lister interface {
	Roots(ctx context.Context) ([]string, error)
	ListFullPath(ctx context.Context) ([]string, error)
}

// Finder lets the user pick one item. It returns the chosen item's Value,
// or "" when the user aborts. Aborting is not an error.
type Finder interface {
	Find(ctx context.Context, items []model.Item) (string, error)
}

// Selection outcomes recorded in metrics.
const (
	OutcomeSelected = "selected"
	OutcomeAborted  = "aborted"
	OutcomeEmpty    = "empty"
)

// Selector drives one selection session.
type Selector struct {
	Lister  Lister
	Finder  Finder
	Metrics *telem.Metrics
}

// SelectRepository returns the chosen full path, or "" when there is
// nothing to choose from or the user aborted. The finder is not started
// for an empty repository list.
func (s *Selector) SelectRepository(ctx context.Context) (string, error) {
	roots, err := s.Lister.Roots(ctx)
	if err != nil {
		return "", err
	}
	repos, err := s.Lister.ListFullPath(ctx)
	if err != nil {
		return "", err
	}

	items := BuildItems(roots, repos)
	if len(items) == 0 {
		log.Debug("no repositories found")
		s.Metrics.RecordSelection(ctx, OutcomeEmpty)
		return "", nil
	}

	selected, err := s.Finder.Find(ctx, items)
	if err != nil {
		return "", err
	}
	if selected == "" {
		s.Metrics.RecordSelection(ctx, OutcomeAborted)
	} else {
		s.Metrics.RecordSelection(ctx, OutcomeSelected)
	}
	log.WithField("selected", selected).Debugf("selection finished over %d candidates", len(items))
	return selected, nil
}
