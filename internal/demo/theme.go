package demo

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles the demo widgets draw with.
type Theme struct {
	Name      string
	Title     lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
	Button    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	StatusBar lipgloss.Style
}

func newTheme(name, primary, accent, muted, surface string) *Theme {
	return &Theme{
		Name:      name,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(primary)),
		Body:      lipgloss.NewStyle(),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		Button:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(surface)).Background(lipgloss.Color(primary)),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		ActiveTab: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color(accent)),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color(surface)).Background(lipgloss.Color(muted)),
	}
}

var themes = map[string]*Theme{
	"dark":  newTheme("dark", "#7D56F4", "#04B575", "#626262", "#FAFAFA"),
	"light": newTheme("light", "#5A3FC0", "#0A7F55", "#A0A0A0", "#1A1A1A"),
	"mono": {
		Name:      "mono",
		Title:     lipgloss.NewStyle().Bold(true),
		Body:      lipgloss.NewStyle(),
		Muted:     lipgloss.NewStyle().Faint(true),
		Highlight: lipgloss.NewStyle().Bold(true),
		Button:    lipgloss.NewStyle().Reverse(true),
		Tab:       lipgloss.NewStyle(),
		ActiveTab: lipgloss.NewStyle().Underline(true),
		StatusBar: lipgloss.NewStyle().Reverse(true),
	},
}

// ThemeNames returns the available theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns the theme called name.
func ThemeByName(name string) (*Theme, error) {
	t, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %v)", name, ThemeNames())
	}
	return t, nil
}

// plainHelp returns a help model that renders without escape codes, so its
// output can be placed into a screen.Buffer cell by cell.
func plainHelp() help.Model {
	h := help.New()
	plain := lipgloss.NewStyle()
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	return h
}
