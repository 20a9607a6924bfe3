package screen

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// PadRight pads or truncates a string to a fixed display width.
func PadRight(str string, width int) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(str)
	if w > width {
		return runewidth.Truncate(str, width, "...")
	}
	return str + strings.Repeat(" ", width-w)
}

// Center pads str on both sides so it sits in the middle of width columns.
func Center(str string, width int) string {
	w := runewidth.StringWidth(str)
	if w >= width {
		return PadRight(str, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + str + strings.Repeat(" ", width-w-left)
}
