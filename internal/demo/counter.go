package demo

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/rescp17/tuievents/pkg/eventctl"
	"github.com/rescp17/tuievents/pkg/layout"
	"github.com/rescp17/tuievents/pkg/screen"
)

const buttonWidth = 5

// CounterPage changes the counter on key presses and counts clicks on itself.
// Its buttons are separate widgets drawn inside its area.
type CounterPage struct {
	theme *Theme
	keys  KeyMap
}

func (CounterPage) UniqueKey() eventctl.Identity { return "Counter" }

func (c CounterPage) OnEvent(ctx Context, s *State, _ *layout.Rect) error {
	switch e := ctx.Event.(type) {
	case Key:
		switch {
		case key.Matches(e.Msg, c.keys.Increment):
			s.Counter++
		case key.Matches(e.Msg, c.keys.Decrement):
			s.Counter--
		case key.Matches(e.Msg, c.keys.Reset):
			s.Counter = 0
			s.Logf("counter reset")
		}
	case Click:
		s.Clicks++
	}
	return nil
}

// buttonAreas returns where the increment and decrement buttons go inside area.
func (CounterPage) buttonAreas(area layout.Rect) (layout.Rect, layout.Rect) {
	row := area.Y + 4
	inc := layout.NewRect(area.X, row, buttonWidth, 1).Intersection(area)
	dec := layout.NewRect(area.X+buttonWidth+1, row, buttonWidth, 1).Intersection(area)
	return inc, dec
}

func (c CounterPage) Render(area layout.Rect, buf *screen.Buffer, s *State) {
	buf.SetLine(area, area.Y, "Counter", c.theme.Title)
	buf.SetLine(area, area.Y+2, fmt.Sprintf("Value: %d", s.Counter), c.theme.Highlight)
	buf.SetLine(area, area.Y+3, fmt.Sprintf("Clicks on this page: %d", s.Clicks), c.theme.Muted)
	buf.SetLine(area, area.Y+6, "Click the buttons or use +/- and r.", c.theme.Muted)
}

// IncrementButton adds one to the counter when clicked.
type IncrementButton struct {
	theme *Theme
}

func (IncrementButton) UniqueKey() eventctl.Identity { return "IncrementButton" }

func (IncrementButton) OnEvent(ctx Context, s *State, _ *layout.Rect) error {
	if _, ok := ctx.Event.(Click); ok {
		s.Counter++
		s.Logf("clicked +")
	}
	return nil
}

func (b IncrementButton) Render(area layout.Rect, buf *screen.Buffer) {
	buf.SetStringIn(area, area.X, area.Y, screen.Center("+", buttonWidth), b.theme.Button)
}

// DecrementButton subtracts one from the counter when clicked.
type DecrementButton struct {
	theme *Theme
}

func (DecrementButton) UniqueKey() eventctl.Identity { return "DecrementButton" }

func (DecrementButton) OnEvent(ctx Context, s *State, _ *layout.Rect) error {
	if _, ok := ctx.Event.(Click); ok {
		s.Counter--
		s.Logf("clicked -")
	}
	return nil
}

func (b DecrementButton) Render(area layout.Rect, buf *screen.Buffer) {
	buf.SetStringIn(area, area.X, area.Y, screen.Center("-", buttonWidth), b.theme.Button)
}
