package screen

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rescp17/tuievents/pkg/layout"
)

func TestBuffer_SetStringClipsToBuffer(t *testing.T) {
	buf := NewBuffer(layout.NewRect(0, 0, 5, 2))

	n := buf.SetString(2, 0, "hello", lipgloss.NewStyle())

	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"  hel", "     "}, buf.Lines())
	assert.Equal(t, 0, buf.SetString(0, 5, "out of range", lipgloss.NewStyle()))
}

func TestBuffer_SetStringInClipsToRegion(t *testing.T) {
	buf := NewBuffer(layout.NewRect(0, 0, 8, 1))
	clip := layout.NewRect(2, 0, 3, 1)

	n := buf.SetStringIn(clip, 0, 0, "abcdefgh", lipgloss.NewStyle())

	// Given a clip starting at column 2, the leading runes are skipped rather than shifted
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"  cde   "}, buf.Lines())
}

func TestBuffer_WideRunes(t *testing.T) {
	buf := NewBuffer(layout.NewRect(0, 0, 5, 1))

	buf.SetString(0, 0, "你好世", lipgloss.NewStyle())

	// The third wide rune does not fit in the last column
	assert.Equal(t, []string{"你好 "}, buf.Lines())
	assert.Equal(t, '你', buf.Rune(0, 0))
	assert.Equal(t, rune(0), buf.Rune(1, 0), "right half of a wide rune has no rune of its own")

	// Overwriting the right half of a wide rune blanks its left half
	buf.SetString(1, 0, "x", lipgloss.NewStyle())
	assert.Equal(t, []string{" x好 "}, buf.Lines())
}

func TestBuffer_NonZeroOrigin(t *testing.T) {
	buf := NewBuffer(layout.NewRect(10, 5, 3, 2))

	buf.SetString(10, 6, "abc", lipgloss.NewStyle())

	assert.Equal(t, []string{"   ", "abc"}, buf.Lines())
	assert.Equal(t, 'b', buf.Rune(11, 6))
	assert.Equal(t, rune(0), buf.Rune(0, 0))
}

func TestBuffer_FillAndClear(t *testing.T) {
	buf := NewBuffer(layout.NewRect(0, 0, 4, 3))

	buf.Fill(layout.NewRect(1, 1, 10, 10), '#', lipgloss.NewStyle())
	assert.Equal(t, []string{"    ", " ###", " ###"}, buf.Lines())

	buf.Clear()
	assert.Equal(t, []string{"    ", "    ", "    "}, buf.Lines())
}

func TestBuffer_SetLinePadsAndTruncates(t *testing.T) {
	buf := NewBuffer(layout.NewRect(0, 0, 6, 2))

	buf.SetLine(layout.NewRect(0, 0, 6, 2), 0, "abc", lipgloss.NewStyle())
	buf.SetLine(layout.NewRect(0, 0, 6, 2), 1, "a long line", lipgloss.NewStyle())

	assert.Equal(t, []string{"abc   ", "a l..."}, buf.Lines())
}

func TestBuffer_StringWithoutStyles(t *testing.T) {
	buf := NewBuffer(layout.NewRect(0, 0, 3, 2))
	buf.SetString(0, 0, "ab", lipgloss.NewStyle())
	buf.SetString(0, 1, "cd", lipgloss.NewStyle())

	// An empty lipgloss style renders text unchanged
	require.Equal(t, "ab \ncd ", buf.String())
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		width    int
		expected string
	}{
		{"Empty string", "", 5, "     "},
		{"Short string", "abc", 10, "abc       "},
		{"Exact width", "hello", 5, "hello"},
		{"String too long", "this is a very long string", 10, "this is..."},
		{"Zero width", "hello", 0, ""},
		{"Width 4", "hello", 4, "h..."},
		{"Chinese characters", "你好", 8, "你好    "},
		{"Mixed characters", "hello世界", 12, "hello世界   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PadRight(tt.str, tt.width))
		})
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab  ", Center("ab", 6))
	assert.Equal(t, " ab  ", Center("ab", 5))
	assert.Equal(t, "abc", Center("abc", 3))
}
