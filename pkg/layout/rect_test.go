package layout

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestRect_Intersects(t *testing.T) {
	base := NewRect(2, 2, 4, 3) // columns 2..5, rows 2..4

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"Identical", base, true},
		{"Inside", Cell(3, 3), true},
		{"Top-left corner", Cell(2, 2), true},
		{"Bottom-right corner", Cell(5, 4), true},
		{"Just right", Cell(6, 3), false},
		{"Just below", Cell(3, 5), false},
		{"Overlapping edge", NewRect(0, 0, 3, 3), true},
		{"Touching but not overlapping", NewRect(0, 0, 2, 2), false},
		{"Enclosing", NewRect(0, 0, 20, 20), true},
		{"Empty", NewRect(3, 3, 0, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base.Intersects(tt.other))
			assert.Equal(t, tt.expected, tt.other.Intersects(base), "intersection must be symmetric")
		})
	}
}

func TestRect_Intersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 7, 10, 10)

	assert.Equal(t, NewRect(5, 7, 5, 3), a.Intersection(b))
	assert.Equal(t, Rect{}, a.Intersection(NewRect(20, 20, 1, 1)))
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(1, 1, 2, 2)

	assert.True(t, r.Contains(1, 1))
	assert.True(t, r.Contains(2, 2))
	assert.False(t, r.Contains(3, 2))
	assert.False(t, r.Contains(0, 1))
}

func TestRect_Splits(t *testing.T) {
	r := NewRect(0, 0, 80, 24)

	header, rest := r.SplitTop(3)
	assert.Equal(t, NewRect(0, 0, 80, 3), header)
	assert.Equal(t, NewRect(0, 3, 80, 21), rest)

	body, footer := rest.SplitBottom(1)
	assert.Equal(t, NewRect(0, 3, 80, 20), body)
	assert.Equal(t, NewRect(0, 23, 80, 1), footer)

	side, content := body.SplitLeft(100)
	assert.Equal(t, 80, side.Width, "split should clamp to the available width")
	assert.True(t, content.Empty())
}

func TestRect_NewRectClampsNegativeSize(t *testing.T) {
	r := NewRect(1, 1, -3, -1)
	assert.True(t, r.Empty())
	assert.Equal(t, 0, r.Area())
	assert.Equal(t, NewRect(3, 3, 0, 0), NewRect(2, 2, 1, 1).Inset(1))
}

func TestViewport_Update(t *testing.T) {
	v := NewViewport()
	assert.Equal(t, BreakpointMedium, v.Breakpoint())

	// When: a smaller window size arrives
	changed := v.Update(tea.WindowSizeMsg{Width: 30, Height: 10})

	// Then: the breakpoint follows the width
	assert.True(t, changed)
	assert.Equal(t, BreakpointXSmall, v.Breakpoint())
	assert.True(t, v.Compact())
	assert.Equal(t, NewRect(0, 0, 30, 10), v.Rect())

	// When: the same size arrives again nothing changes
	assert.False(t, v.Update(tea.WindowSizeMsg{Width: 30, Height: 10}))
	assert.False(t, v.Update(tea.KeyMsg{}))
}

func TestBreakpointFor(t *testing.T) {
	tests := []struct {
		width   int
		want    Breakpoint
		compact bool
	}{
		{0, BreakpointXSmall, true},
		{39, BreakpointXSmall, true},
		{40, BreakpointSmall, false},
		{79, BreakpointSmall, false},
		{80, BreakpointMedium, false},
		{120, BreakpointLarge, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d columns", tt.width), func(t *testing.T) {
			got := BreakpointFor(tt.width)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.compact, got.Compact())
		})
	}
}
