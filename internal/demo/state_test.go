package demo

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestPageID_Cycle(t *testing.T) {
	assert.Equal(t, CounterPageID, HomePageID.Next())
	assert.Equal(t, HomePageID, CounterPageID.Next())
	assert.Equal(t, CounterPageID, HomePageID.Prev())
	assert.Equal(t, "Unknown", PageID(42).String())
}

func TestState_LogfKeepsRecentEntries(t *testing.T) {
	s := NewState()

	for i := 0; i < maxLogEntries+3; i++ {
		s.Logf("entry %d", i)
	}

	assert.Len(t, s.Log, maxLogEntries)
	assert.Equal(t, "entry 3", s.Log[0])
	assert.Equal(t, fmt.Sprintf("entry %d", maxLogEntries+2), s.Log[maxLogEntries-1])
}

func TestTranslate(t *testing.T) {
	ev, ok := Translate(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, ok)
	assert.Equal(t, Key{Msg: tea.KeyMsg{Type: tea.KeyEnter}}, ev)

	ev, ok = Translate(tea.WindowSizeMsg{Width: 10, Height: 5})
	assert.True(t, ok)
	assert.Equal(t, Resize{Width: 10, Height: 5}, ev)

	_, ok = Translate(tea.FocusMsg{})
	assert.False(t, ok)
}

func TestTranslateClick(t *testing.T) {
	ev, ok := TranslateClick(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, ok)
	assert.Equal(t, Click{X: 3, Y: 4}, ev)

	_, ok = TranslateClick(tea.MouseMsg{Action: tea.MouseActionMotion})
	assert.False(t, ok)
	_, ok = TranslateClick(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.False(t, ok)
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, []string{"dark", "light", "mono"}, ThemeNames())

	theme, err := ThemeByName("light")
	assert.NoError(t, err)
	assert.Equal(t, "light", theme.Name)

	_, err = ThemeByName("neon")
	assert.Error(t, err)
}
