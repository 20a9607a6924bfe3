package demo

import (
	"fmt"
	"strings"

	"github.com/rescp17/tuievents/pkg/eventctl"
	"github.com/rescp17/tuievents/pkg/layout"
	"github.com/rescp17/tuievents/pkg/screen"
)

// StatusBar shows a summary of the state and the key help. Clicking it
// toggles the full help. Narrow terminals get the summary only.
type StatusBar struct {
	theme *Theme
	keys  KeyMap
}

func (StatusBar) UniqueKey() eventctl.Identity { return "StatusBar" }

func (StatusBar) OnEvent(ctx Context, s *State, _ *layout.Rect) error {
	if _, ok := ctx.Event.(Click); ok {
		s.ShowHelp = !s.ShowHelp
	}
	return nil
}

func (b StatusBar) Render(area layout.Rect, buf *screen.Buffer, s *State) {
	if area.Empty() {
		return
	}
	summary := fmt.Sprintf(" %s │ ticks %d │ counter %d ", s.Page, s.Ticks, s.Counter)
	if layout.BreakpointFor(area.Width).Compact() {
		buf.SetLine(area, area.Y, summary, b.theme.StatusBar)
		return
	}

	h := plainHelp()
	h.Width = area.Width
	keys := b.keys.ForPage(s.Page)

	if !s.ShowHelp {
		buf.SetLine(area, area.Y, summary+" "+h.ShortHelpView(keys.ShortHelp()), b.theme.StatusBar)
		return
	}

	buf.SetLine(area, area.Y, summary, b.theme.StatusBar)
	for i, line := range strings.Split(h.FullHelpView(keys.FullHelp()), "\n") {
		if i+1 >= area.Height {
			break
		}
		buf.SetLine(area, area.Y+1+i, " "+line, b.theme.Muted)
	}
}
