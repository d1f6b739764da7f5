package selection

import (
	"context"
	"fmt"
	"strings"

	"github.com/timvw/gh-ghq-cd/internal/command"
	"github.com/timvw/gh-ghq-cd/internal/model"
)

// DefaultFzfBinary is the fzf executable looked up on $PATH.
const DefaultFzfBinary = "fzf"

// fzf exit codes that mean "nothing selected".
const (
	fzfNoMatch   = 1
	fzfInterrupt = 130
)

// FzfFinder delegates selection to an external fzf process. Each candidate
// is written as one "display<TAB>value" line; only the first field is shown
// and matched.
type FzfFinder struct {
	Runner command.Runner
	Binary string
	// Self is the executable fzf calls back for previews
	// ("<Self> preview <path>"). Empty disables the preview.
	Self string
}

// Args returns the fzf arguments.
func (f *FzfFinder) Args() []string {
	args := []string{"--delimiter", "\t", "--with-nth", "1", "--layout", "reverse"}
	if f.Self != "" {
		args = append(args, "--preview", shellQuote(f.Self)+" preview {2}")
	}
	return args
}

func (f *FzfFinder) Find(ctx context.Context, items []model.Item) (string, error) {
	binary := f.Binary
	if binary == "" {
		binary = DefaultFzfBinary
	}
	out, err := f.Runner.RunInput(ctx, strings.NewReader(EncodeItems(items)), binary, f.Args()...)
	if err != nil {
		switch command.ExitCode(err) {
		case fzfNoMatch, fzfInterrupt:
			return "", nil
		}
		return "", fmt.Errorf("fzf: %w", err)
	}
	return ParseSelection(out), nil
}

// EncodeItems renders items in the tab-delimited finder wire format, one
// line per item.
func EncodeItems(items []model.Item) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.Display)
		b.WriteByte('\t')
		b.WriteString(it.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseSelection returns the value field of the first selected line. A
// line without a tab is taken as the value itself.
func ParseSelection(out string) string {
	lines := command.Lines(out)
	if len(lines) == 0 {
		return ""
	}
	line := lines[0]
	if _, value, ok := strings.Cut(line, "\t"); ok {
		return value
	}
	return line
}

// shellQuote single-quotes s for the sh -c fzf runs previews with.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
