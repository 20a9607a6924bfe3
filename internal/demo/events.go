package demo

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Event is a marker interface for the events dispatched to demo widgets.
// It uses an unexported method so that only types from this package (by embedding event)
// can satisfy the interface.
type Event interface {
	isEvent()
}

// event is embedded in every demo event type to satisfy the Event interface.
type event struct{}

func (event) isEvent() {}

// Tick is emitted at a fixed rate by EmitTicks.
type Tick struct {
	event
}

// Key is a key press forwarded from the terminal.
type Key struct {
	event
	Msg tea.KeyMsg
}

// Click is a mouse press. It is dispatched only to widgets drawn under the pointer.
type Click struct {
	event
	X, Y int
}

// Navigate asks the app to show another page.
type Navigate struct {
	event
	Page PageID
}

// Resize reports a new terminal size.
type Resize struct {
	event
	Width, Height int
}

var (
	_ Event = Tick{}
	_ Event = Key{}
	_ Event = Click{}
	_ Event = Navigate{}
	_ Event = Resize{}
)

// Translate maps bubbletea messages to demo events for broadcast dispatch.
func Translate(msg tea.Msg) (Event, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return Key{Msg: msg}, true
	case tea.WindowSizeMsg:
		return Resize{Width: msg.Width, Height: msg.Height}, true
	}
	return nil, false
}

// TranslateClick maps left mouse presses to Click events.
func TranslateClick(msg tea.MouseMsg) (Event, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil, false
	}
	return Click{X: msg.X, Y: msg.Y}, true
}
