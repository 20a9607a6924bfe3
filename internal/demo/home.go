package demo

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/rescp17/tuievents/pkg/eventctl"
	"github.com/rescp17/tuievents/pkg/layout"
	"github.com/rescp17/tuievents/pkg/screen"
)

// HomePage counts ticks while it is on screen and shows recent activity.
type HomePage struct {
	theme *Theme
}

func (HomePage) UniqueKey() eventctl.Identity { return "Home" }

func (HomePage) OnEvent(ctx Context, s *State, _ *layout.Rect) error {
	if _, ok := ctx.Event.(Tick); ok {
		s.Ticks++
	}
	return nil
}

func (h HomePage) Render(area layout.Rect, buf *screen.Buffer, s *State) {
	frames := spinner.Dot.Frames
	frame := frames[s.Ticks%len(frames)]

	buf.SetLine(area, area.Y, "Welcome", h.theme.Title)
	buf.SetLine(area, area.Y+1, fmt.Sprintf("%s ticks: %d", frame, s.Ticks), h.theme.Body)

	buf.SetLine(area, area.Y+3, "Recent activity:", h.theme.Muted)
	for i, line := range s.Log {
		buf.SetLine(area, area.Y+4+i, "  "+line, h.theme.Body)
	}
}
