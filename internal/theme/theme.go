package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// DefaultName is the theme used when none, or an unknown one, is configured.
const DefaultName = "default"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Banner                *lipgloss.Style
	Header                *lipgloss.Style
	Loading               *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Footer                *lipgloss.Style
	Label                 *lipgloss.Style
	Link                  *lipgloss.Style
	Body                  *lipgloss.Style
	InputPrompt           *lipgloss.Style
	Hint                  *lipgloss.Style

	// Markdown names the glamour standard style for post bodies.
	Markdown string
}

type palette struct {
	accent, text, muted, dim, highlight, selectedBg, errColor, link string
	markdown                                                       string
}

var palettes = map[string]palette{
	DefaultName: {
		accent: "202", text: "249", muted: "245", dim: "238", highlight: "255",
		selectedBg: "238", errColor: "196", link: "39", markdown: "dark",
	},
	"dracula": {
		accent: "#bd93f9", text: "#f8f8f2", muted: "#6272a4", dim: "#44475a", highlight: "#ffffff",
		selectedBg: "#44475a", errColor: "#ff5555", link: "#8be9fd", markdown: "dracula",
	},
	"gruvbox": {
		accent: "#fe8019", text: "#ebdbb2", muted: "#a89984", dim: "#504945", highlight: "#fbf1c7",
		selectedBg: "#3c3836", errColor: "#fb4934", link: "#83a598", markdown: "dark",
	},
	"light": {
		accent: "166", text: "236", muted: "243", dim: "250", highlight: "232",
		selectedBg: "254", errColor: "160", link: "25", markdown: "light",
	},
}

// Names lists the built-in themes.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named theme. ok is false for unknown names.
func Lookup(name string) (*Styles, bool) {
	p, ok := palettes[name]
	if !ok {
		return nil, false
	}
	return build(p), true
}

// Resolve returns the named theme, falling back to the default. The
// resolved name is returned alongside.
func Resolve(name string) (*Styles, string) {
	if styles, ok := Lookup(name); ok {
		return styles, name
	}
	return Default(), DefaultName
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return build(palettes[DefaultName])
}

func build(p palette) *Styles {
	c := func(s string) lipgloss.Color { return lipgloss.Color(s) }
	return &Styles{
		Banner:                ptr(lipgloss.NewStyle().Foreground(c(p.accent)).Bold(true)),
		Header:                ptr(lipgloss.NewStyle().Foreground(c(p.accent)).Bold(true)),
		Loading:               ptr(lipgloss.NewStyle().Foreground(c(p.link)).Italic(true)),
		Item:                  ptr(lipgloss.NewStyle().Foreground(c(p.text))),
		ItemIndicator:         ptr(lipgloss.NewStyle().Foreground(c(p.dim))),
		SelectedItemIndicator: ptr(lipgloss.NewStyle().Foreground(c(p.accent)).Background(c(p.selectedBg))),
		SelectedItem:          ptr(lipgloss.NewStyle().Foreground(c(p.highlight)).Background(c(p.selectedBg)).Bold(true)),
		Error:                 ptr(lipgloss.NewStyle().Foreground(c(p.errColor)).Bold(true)),
		Info:                  ptr(lipgloss.NewStyle().Foreground(c(p.muted))),
		Footer:                ptr(lipgloss.NewStyle().Foreground(c(p.muted))),
		Label:                 ptr(lipgloss.NewStyle().Foreground(c(p.muted)).Bold(true)),
		Link:                  ptr(lipgloss.NewStyle().Foreground(c(p.link)).Underline(true)),
		Body:                  ptr(lipgloss.NewStyle().Foreground(c(p.text))),
		InputPrompt:           ptr(lipgloss.NewStyle().Foreground(c(p.accent)).Bold(true)),
		Hint:                  ptr(lipgloss.NewStyle().Foreground(c(p.muted)).Italic(true)),
		Markdown:              p.markdown,
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
