package selection

import "github.com/charmbracelet/lipgloss"

// Theme defines all colors used by the builtin finder.
// Use DarkTheme() or LightTheme() to get a pre-built theme,
// or construct a custom Theme.
type Theme struct {
	Name string // glamour standard style used for README previews

	Primary        lipgloss.Color // prompt, cursor
	Secondary      lipgloss.Color // highlighted row text
	Accent         lipgloss.Color // matched characters
	Text           lipgloss.Color // primary text
	TextMuted      lipgloss.Color // counters, hints
	BackgroundElem lipgloss.Color // highlighted row background
	Border         lipgloss.Color // preview separator
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Name:           "dark",
		Primary:        lipgloss.Color("#fab283"),
		Secondary:      lipgloss.Color("#5c9cf5"),
		Accent:         lipgloss.Color("#9d7cd8"),
		Text:           lipgloss.Color("#eeeeee"),
		TextMuted:      lipgloss.Color("#808080"),
		BackgroundElem: lipgloss.Color("#1e1e1e"),
		Border:         lipgloss.Color("#484848"),
	}
}

// LightTheme returns a light theme for bright terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Name:           "light",
		Primary:        lipgloss.Color("#b35c00"),
		Secondary:      lipgloss.Color("#0550ae"),
		Accent:         lipgloss.Color("#6639ba"),
		Text:           lipgloss.Color("#1f2328"),
		TextMuted:      lipgloss.Color("#656d76"),
		BackgroundElem: lipgloss.Color("#f6f8fa"),
		Border:         lipgloss.Color("#d0d7de"),
	}
}

// ThemeByName returns a theme by name. Defaults to dark.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}

// styles holds all lipgloss styles derived from a Theme.
// Constructed once from a Theme and stored in finderModel.
type styles struct {
	prompt   lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	match    lipgloss.Style
	text     lipgloss.Style
	dim      lipgloss.Style
	border   lipgloss.Style
}

// newStyles builds all styles from a theme.
func newStyles(t Theme) styles {
	return styles{
		prompt:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Background(t.BackgroundElem),
		selected: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Background(t.BackgroundElem),
		match:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		text:     lipgloss.NewStyle().Foreground(t.Text),
		dim:      lipgloss.NewStyle().Foreground(t.TextMuted),
		border:   lipgloss.NewStyle().Foreground(t.Border),
	}
}
