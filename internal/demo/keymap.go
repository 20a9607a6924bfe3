package demo

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the demo key bindings.
type KeyMap struct {
	// Global bindings (work on every page)
	Quit     key.Binding
	Help     key.Binding
	NextPage key.Binding
	PrevPage key.Binding

	// Counter page bindings
	Increment key.Binding
	Decrement key.Binding
	Reset     key.Binding
}

// DefaultKeyMap returns the default keyboard shortcuts
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "previous page"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "up", "k"),
			key.WithHelp("+/↑", "increment"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "down", "j"),
			key.WithHelp("-/↓", "decrement"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
	}
}

// pageKeys returns the bindings that do something on page.
func (k KeyMap) pageKeys(page PageID) []key.Binding {
	switch page {
	case CounterPageID:
		return []key.Binding{k.Increment, k.Decrement, k.Reset}
	default:
		return nil
	}
}

// ForPage returns a help.KeyMap listing the global bindings and those of page.
func (k KeyMap) ForPage(page PageID) help.KeyMap {
	return pageHelp{keys: k, page: page}
}

type pageHelp struct {
	keys KeyMap
	page PageID
}

func (h pageHelp) ShortHelp() []key.Binding {
	return append([]key.Binding{h.keys.Quit, h.keys.NextPage, h.keys.Help}, h.keys.pageKeys(h.page)...)
}

func (h pageHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.keys.Quit, h.keys.Help, h.keys.NextPage, h.keys.PrevPage},
		h.keys.pageKeys(h.page),
	}
}
