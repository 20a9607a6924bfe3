package layout

import "fmt"

// Rect is a rectangular region of the terminal, measured in cells.
// X and Y are the top-left corner; Width and Height may be zero.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a Rect, clamping negative sizes to zero.
func NewRect(x, y, width, height int) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Cell returns the 1x1 region at (x, y). Mouse positions are expressed this way.
func Cell(x, y int) Rect {
	return Rect{X: x, Y: y, Width: 1, Height: 1}
}

// Right returns the first column to the right of the rect.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row below the rect.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns the number of cells covered by the rect.
func (r Rect) Area() int { return r.Width * r.Height }

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the cell (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether the two rects share at least one cell.
// An empty rect intersects nothing.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Intersection returns the overlapping part of r and o, or the zero Rect.
func (r Rect) Intersection(o Rect) Rect {
	if !r.Intersects(o) {
		return Rect{}
	}
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	return Rect{X: x, Y: y, Width: min(r.Right(), o.Right()) - x, Height: min(r.Bottom(), o.Bottom()) - y}
}

// Inset shrinks the rect by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return NewRect(r.X+n, r.Y+n, r.Width-2*n, r.Height-2*n)
}

// SplitTop cuts the first n rows off the rect. The second result is what remains.
func (r Rect) SplitTop(n int) (Rect, Rect) {
	n = clamp(n, 0, r.Height)
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: n},
		Rect{X: r.X, Y: r.Y + n, Width: r.Width, Height: r.Height - n}
}

// SplitBottom cuts the last n rows off the rect. The first result is what remains.
func (r Rect) SplitBottom(n int) (Rect, Rect) {
	n = clamp(n, 0, r.Height)
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height - n},
		Rect{X: r.X, Y: r.Bottom() - n, Width: r.Width, Height: n}
}

// SplitLeft cuts the first n columns off the rect.
func (r Rect) SplitLeft(n int) (Rect, Rect) {
	n = clamp(n, 0, r.Width)
	return Rect{X: r.X, Y: r.Y, Width: n, Height: r.Height},
		Rect{X: r.X + n, Y: r.Y, Width: r.Width - n, Height: r.Height}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
