// Package screen provides the cell buffer widgets draw into.
//
// A Buffer covers a fixed rectangular area. Text is placed by display width
// (runewidth), so wide runes occupy two cells; anything that falls outside the
// buffer or the target region is clipped.
package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rescp17/tuievents/pkg/layout"
)

type cell struct {
	r     rune
	style int // index+1 into Buffer.styles, 0 means unstyled
	cont  bool
}

// Buffer is a grid of cells covering Area.
type Buffer struct {
	area   layout.Rect
	cells  []cell
	styles []lipgloss.Style
}

// NewBuffer creates a blank buffer covering area.
func NewBuffer(area layout.Rect) *Buffer {
	b := &Buffer{area: layout.NewRect(area.X, area.Y, area.Width, area.Height)}
	b.cells = make([]cell, b.area.Area())
	b.Clear()
	return b
}

// Area returns the region covered by the buffer.
func (b *Buffer) Area() layout.Rect {
	return b.area
}

// Clear resets every cell to an unstyled space.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = cell{r: ' '}
	}
	b.styles = b.styles[:0]
}

// Rune returns the rune at (x, y), or 0 when the position is outside the buffer
// or covered by the right half of a wide rune.
func (b *Buffer) Rune(x, y int) rune {
	i, ok := b.index(x, y)
	if !ok || b.cells[i].cont {
		return 0
	}
	return b.cells[i].r
}

// SetString writes s starting at (x, y), clipped to the buffer.
// It returns the number of columns written.
func (b *Buffer) SetString(x, y int, s string, style lipgloss.Style) int {
	return b.SetStringIn(b.area, x, y, s, style)
}

// SetStringIn writes s starting at (x, y), clipped to the intersection of clip
// and the buffer. It returns the number of columns written.
func (b *Buffer) SetStringIn(clip layout.Rect, x, y int, s string, style lipgloss.Style) int {
	clip = clip.Intersection(b.area)
	if !clip.Contains(clip.X, y) || x >= clip.Right() {
		return 0
	}

	b.styles = append(b.styles, style)
	id := len(b.styles)

	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > clip.Right() {
			break
		}
		if col >= clip.X {
			b.put(col, y, cell{r: r, style: id})
			if w == 2 {
				b.put(col+1, y, cell{style: id, cont: true})
			}
		}
		col += w
	}
	return max(col-max(x, clip.X), 0)
}

// SetLine writes s on row y of area, truncated with an ellipsis when it does not fit
// and padded with spaces to the full width otherwise.
func (b *Buffer) SetLine(area layout.Rect, y int, s string, style lipgloss.Style) {
	b.SetStringIn(area, area.X, y, PadRight(s, area.Width), style)
}

// Fill sets every cell of area to r.
func (b *Buffer) Fill(area layout.Rect, r rune, style lipgloss.Style) {
	area = area.Intersection(b.area)
	if area.Empty() {
		return
	}
	line := strings.Repeat(string(r), area.Width/max(runewidth.RuneWidth(r), 1))
	for y := area.Y; y < area.Bottom(); y++ {
		b.SetStringIn(area, area.X, y, line, style)
	}
}

// Lines returns the buffer content row by row without styling.
func (b *Buffer) Lines() []string {
	lines := make([]string, 0, b.area.Height)
	for y := 0; y < b.area.Height; y++ {
		var sb strings.Builder
		for _, c := range b.row(y) {
			if !c.cont {
				sb.WriteRune(c.r)
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// String renders the buffer with its styles applied, one line per row.
func (b *Buffer) String() string {
	lines := make([]string, 0, b.area.Height)
	for y := 0; y < b.area.Height; y++ {
		var sb strings.Builder
		var run strings.Builder
		current := 0
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == 0 {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(b.styles[current-1].Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range b.row(y) {
			if c.cont {
				continue
			}
			if c.style != current {
				flush()
				current = c.style
			}
			run.WriteRune(c.r)
		}
		flush()
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func (b *Buffer) row(y int) []cell {
	start := y * b.area.Width
	return b.cells[start : start+b.area.Width]
}

func (b *Buffer) index(x, y int) (int, bool) {
	if !b.area.Contains(x, y) {
		return 0, false
	}
	return (y-b.area.Y)*b.area.Width + (x - b.area.X), true
}

func (b *Buffer) put(x, y int, c cell) {
	i, ok := b.index(x, y)
	if !ok {
		return
	}
	old := b.cells[i]
	// Overwriting half of a wide rune blanks the other half.
	if old.cont && !c.cont && x > b.area.X {
		b.cells[i-1] = cell{r: ' '}
	}
	if !old.cont && x+1 < b.area.Right() && b.cells[i+1].cont {
		b.cells[i+1] = cell{r: ' '}
	}
	b.cells[i] = c
}
