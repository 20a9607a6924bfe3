package demo

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rescp17/tuievents/pkg/eventctl"
	"github.com/rescp17/tuievents/pkg/layout"
	"github.com/rescp17/tuievents/pkg/screen"
)

// Tabs is the page selector drawn on the first row. Clicking a tab navigates to it.
type Tabs struct {
	theme *Theme
}

// tabLabel returns the label of p; compact labels keep only the first letter.
func tabLabel(p PageID, compact bool) string {
	name := p.String()
	if compact {
		name = runewidth.Truncate(name, 1, "")
	}
	return " " + name + " "
}

// tabAt returns the page whose label covers column x of area.
func tabAt(area layout.Rect, x int) (PageID, bool) {
	compact := layout.BreakpointFor(area.Width).Compact()
	col := area.X
	for p := PageID(0); p < pageCount; p++ {
		w := runewidth.StringWidth(tabLabel(p, compact))
		if x >= col && x < col+w {
			return p, true
		}
		col += w + 1
	}
	return 0, false
}

func (Tabs) UniqueKey() eventctl.Identity { return "Tabs" }

func (Tabs) OnEvent(ctx Context, s *State, area *layout.Rect) error {
	click, ok := ctx.Event.(Click)
	if !ok || area == nil {
		return nil
	}
	p, ok := tabAt(*area, click.X)
	if !ok || p == s.Page {
		return nil
	}
	return ctx.Dispatch(Navigate{Page: p})
}

func (t Tabs) Render(area layout.Rect, buf *screen.Buffer, s *State) {
	compact := layout.BreakpointFor(area.Width).Compact()
	col := area.X
	for p := PageID(0); p < pageCount; p++ {
		style := t.theme.Tab
		if p == s.Page {
			style = t.theme.ActiveTab
		}
		col += buf.SetStringIn(area, col, area.Y, tabLabel(p, compact), style)
		col += buf.SetStringIn(area, col, area.Y, "│", t.theme.Muted)
	}
	buf.SetStringIn(area, col, area.Y, screen.PadRight("", area.Right()-col), lipgloss.NewStyle())
}
