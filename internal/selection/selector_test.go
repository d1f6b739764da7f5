package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timvw/gh-ghq-cd/internal/command"
	"github.com/timvw/gh-ghq-cd/internal/command/commandtest"
	"github.com/timvw/gh-ghq-cd/internal/ghq"
	"github.com/timvw/gh-ghq-cd/internal/model"
)

// stubFinder returns a fixed value and remembers what it was shown.
type stubFinder struct {
	value string
	err   error
	calls int
	items []model.Item
}

func (f *stubFinder) Find(_ context.Context, items []model.Item) (string, error) {
	f.calls++
	f.items = items
	return f.value, f.err
}

func newLister(roots, list string) *commandtest.Recorder {
	return commandtest.New().
		On("ghq root --all", roots, nil).
		On("ghq list --full-path", list, nil)
}

func TestSelectRepository_ReturnsFinderValue(t *testing.T) {
	rec := newLister("/home/u/ghq\n", "/home/u/ghq/github.com/a/b\n/home/u/ghq/github.com/c/d\n")
	finder := &stubFinder{value: "/home/u/ghq/github.com/c/d"}
	s := &Selector{Lister: ghq.New(rec, ""), Finder: finder}

	got, err := s.SelectRepository(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/home/u/ghq/github.com/c/d", got)
	assert.Equal(t, []model.Item{
		{Display: "github.com/a/b", Value: "/home/u/ghq/github.com/a/b"},
		{Display: "github.com/c/d", Value: "/home/u/ghq/github.com/c/d"},
	}, finder.items)
}

func TestSelectRepository_EmptyListSkipsFinder(t *testing.T) {
	rec := newLister("/home/u/ghq\n", "")
	finder := &stubFinder{value: "never"}
	s := &Selector{Lister: ghq.New(rec, ""), Finder: finder}

	got, err := s.SelectRepository(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, finder.calls)
}

func TestSelectRepository_Abort(t *testing.T) {
	rec := newLister("/r\n", "/r/a\n")
	s := &Selector{Lister: ghq.New(rec, ""), Finder: &stubFinder{}}

	got, err := s.SelectRepository(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectRepository_ListerFailure(t *testing.T) {
	fail := &command.FailedError{Program: "ghq", Args: []string{"root", "--all"}, ExitCode: 1}
	rec := commandtest.New().On("ghq root --all", "", fail)
	finder := &stubFinder{}
	s := &Selector{Lister: ghq.New(rec, ""), Finder: finder}

	_, err := s.SelectRepository(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, command.ErrCommandFailed)
	assert.Zero(t, finder.calls)
}

func TestSelectRepository_FinderFailure(t *testing.T) {
	rec := newLister("/r\n", "/r/a\n")
	boom := errors.New("boom")
	s := &Selector{Lister: ghq.New(rec, ""), Finder: &stubFinder{err: boom}}

	_, err := s.SelectRepository(context.Background())
	assert.ErrorIs(t, err, boom)
}
