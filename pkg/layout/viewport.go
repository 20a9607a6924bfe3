package layout

import tea "github.com/charmbracelet/bubbletea"

// Breakpoint represents different screen size breakpoints
type Breakpoint int

const (
	BreakpointXSmall Breakpoint = iota // < 40 cols
	BreakpointSmall                    // 40-79 cols
	BreakpointMedium                   // 80-119 cols
	BreakpointLarge                    // >= 120 cols
)

// String returns a string representation of Breakpoint
func (b Breakpoint) String() string {
	switch b {
	case BreakpointXSmall:
		return "xsmall"
	case BreakpointSmall:
		return "small"
	case BreakpointMedium:
		return "medium"
	case BreakpointLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Viewport tracks the terminal size reported by bubbletea.
type Viewport struct {
	Width      int
	Height     int
	breakpoint Breakpoint
}

// NewViewport creates a viewport with the default terminal size.
func NewViewport() *Viewport {
	v := &Viewport{}
	v.SetSize(80, 24)
	return v
}

// Update updates the viewport based on a window size message.
// It reports whether the message changed the size.
func (v *Viewport) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width == v.Width && msg.Height == v.Height {
			return false
		}
		v.SetSize(msg.Width, msg.Height)
		return true
	}
	return false
}

// SetSize sets the viewport size and updates the breakpoint accordingly
func (v *Viewport) SetSize(width, height int) {
	v.Width = max(width, 0)
	v.Height = max(height, 0)
	v.breakpoint = BreakpointFor(v.Width)
}

// BreakpointFor returns the breakpoint of a region width columns wide.
func BreakpointFor(width int) Breakpoint {
	switch {
	case width < 40:
		return BreakpointXSmall
	case width < 80:
		return BreakpointSmall
	case width < 120:
		return BreakpointMedium
	default:
		return BreakpointLarge
	}
}

// Compact reports whether the breakpoint is too narrow for decorations.
func (b Breakpoint) Compact() bool {
	return b == BreakpointXSmall
}

// Breakpoint returns the current breakpoint
func (v *Viewport) Breakpoint() Breakpoint {
	return v.breakpoint
}

// Compact reports whether the viewport is too narrow for decorations.
func (v *Viewport) Compact() bool {
	return v.breakpoint.Compact()
}

// Rect returns the full viewport as a region anchored at the origin.
func (v *Viewport) Rect() Rect {
	return Rect{Width: v.Width, Height: v.Height}
}
