package selection

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/timvw/gh-ghq-cd/internal/model"
)

// Rows above the list: query line and counter line.
const headerRows = 2

// labels exposes item display labels to the fuzzy matcher, so the full
// path never takes part in matching.
type labels []model.Item

func (l labels) String(i int) string { return l[i].Display }
func (l labels) Len() int            { return len(l) }

// messages
type previewMsg struct {
	key     string
	content string
}

// TUIFinder is the builtin finder: a fuzzy-filtered list with the query on
// top and a README preview on the right.
type TUIFinder struct {
	Previewer *Previewer
	Theme     Theme
}

// finderModel implements tea.Model
type finderModel struct {
	ctx       context.Context
	items     []model.Item
	previewer *Previewer
	styles    styles

	query   textinput.Model
	matches fuzzy.Matches
	cursor  int // index into matches
	offset  int // first visible row

	preview    viewport.Model
	previewKey string // path and width the viewport content was requested for

	// dimensions
	width     int
	height    int
	listWidth int

	selected string
	done     bool
}

func (f *TUIFinder) Find(ctx context.Context, items []model.Item) (string, error) {
	m := newFinderModel(ctx, items, f.Previewer, f.Theme)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if f.Previewer != nil {
		logCacheStats(f.Previewer.Cache.Stats())
	}
	if err != nil {
		return "", fmt.Errorf("finder: %w", err)
	}
	fm, ok := final.(*finderModel)
	if !ok {
		return "", nil
	}
	return fm.selected, nil
}

func logCacheStats(s CacheStats) {
	log.WithField("entries", s.Entries).
		WithField("hits", s.Hits).
		WithField("misses", s.Misses).
		Debug("preview cache")
}

func newFinderModel(ctx context.Context, items []model.Item, previewer *Previewer, theme Theme) *finderModel {
	st := newStyles(theme)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = st.prompt
	ti.Placeholder = "filter repositories"
	ti.Focus()

	m := &finderModel{
		ctx:       ctx,
		items:     items,
		previewer: previewer,
		styles:    st,
		query:     ti,
		preview:   viewport.New(0, 0),
	}
	m.filter()
	return m
}

func (m *finderModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *finderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.requestPreview()

	case previewMsg:
		if msg.key == m.previewKey {
			m.preview.SetContent(msg.content)
			m.preview.GotoTop()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

func (m *finderModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.selected = ""
		m.done = true
		return m, tea.Quit

	case "enter":
		m.selected = m.current()
		m.done = true
		return m, tea.Quit

	case "up", "ctrl+p", "ctrl+k":
		m.move(-1)
		return m, m.requestPreview()

	case "down", "ctrl+n", "ctrl+j":
		m.move(1)
		return m, m.requestPreview()

	case "pgup":
		m.preview.SetYOffset(m.preview.YOffset - m.scrollStep())
		return m, nil

	case "pgdown":
		m.preview.SetYOffset(m.preview.YOffset + m.scrollStep())
		return m, nil
	}

	before := m.query.Value()
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	if m.query.Value() != before {
		m.filter()
		return m, tea.Batch(cmd, m.requestPreview())
	}
	return m, cmd
}

// filter re-ranks the items against the current query. An empty query
// keeps every item in ghq order.
func (m *finderModel) filter() {
	q := m.query.Value()
	if q == "" {
		m.matches = make(fuzzy.Matches, len(m.items))
		for i, it := range m.items {
			m.matches[i] = fuzzy.Match{Str: it.Display, Index: i}
		}
	} else {
		m.matches = fuzzy.FindFrom(q, labels(m.items))
	}
	m.cursor = 0
	m.offset = 0
}

func (m *finderModel) move(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.matches)-1, m.cursor+delta))
	rows := m.listRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if rows > 0 && m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// current returns the value of the highlighted item, or "" when nothing
// matches.
func (m *finderModel) current() string {
	if m.cursor < 0 || m.cursor >= len(m.matches) {
		return ""
	}
	return m.items[m.matches[m.cursor].Index].Value
}

func (m *finderModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.listWidth = width * 2 / 5
	m.query.Width = max(1, m.listWidth-lipgloss.Width(m.query.Prompt)-1)
	m.preview.Width = max(0, width-m.listWidth-1)
	m.preview.Height = m.listRows()
	m.move(0)
}

func (m *finderModel) listRows() int {
	return max(0, m.height-headerRows)
}

func (m *finderModel) scrollStep() int {
	return max(1, m.preview.Height/2)
}

// requestPreview renders the highlighted item's README off the update loop.
// Returns nil when the viewport already holds (or awaits) that preview.
func (m *finderModel) requestPreview() tea.Cmd {
	if m.previewer == nil || m.width == 0 {
		return nil
	}
	path := m.current()
	width := m.preview.Width
	key := fmt.Sprintf("%s\x00%d", path, width)
	if key == m.previewKey {
		return nil
	}
	m.previewKey = key

	ctx, previewer := m.ctx, m.previewer
	return func() tea.Msg {
		return previewMsg{key: key, content: previewer.Render(ctx, path, width)}
	}
}

func (m *finderModel) View() string {
	if m.done || m.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.query.View())
	b.WriteString("\n")
	b.WriteString(m.styles.dim.Render(fmt.Sprintf("  %d/%d", len(m.matches), len(m.items))))
	b.WriteString("\n")

	rows := m.listRows()
	list := make([]string, rows)
	for i := range rows {
		list[i] = padRight("", m.listWidth)
		idx := m.offset + i
		if idx < len(m.matches) {
			list[i] = m.renderRow(idx)
		}
	}

	sep := m.styles.border.Render(strings.TrimSuffix(strings.Repeat("│\n", max(1, rows)), "\n"))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(list, "\n"), sep, m.preview.View()))
	return b.String()
}

func (m *finderModel) renderRow(idx int) string {
	match := m.matches[idx]
	label := truncate(match.Str, m.listWidth-2)

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, i := range match.MatchedIndexes {
		matched[i] = true
	}

	base := m.styles.text
	marker := "  "
	if idx == m.cursor {
		base = m.styles.selected
		marker = m.styles.cursor.Render("▌ ")
	}

	var b strings.Builder
	for i, r := range label {
		if matched[i] {
			b.WriteString(m.styles.match.Inherit(base).Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return padRight(marker+b.String(), m.listWidth)
}

// truncate cuts a string to at most maxLen runes.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if maxLen <= 0 {
		return ""
	}
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// padRight pads a string with spaces to reach the desired visible width.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
