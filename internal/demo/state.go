package demo

import (
	"fmt"
	"time"
)

// PageID names a page of the demo.
type PageID int

const (
	HomePageID PageID = iota
	CounterPageID
	pageCount
)

// String returns a string representation of PageID
func (p PageID) String() string {
	switch p {
	case HomePageID:
		return "Home"
	case CounterPageID:
		return "Counter"
	default:
		return "Unknown"
	}
}

// Next returns the page after p, wrapping around.
func (p PageID) Next() PageID {
	return (p + 1) % pageCount
}

// Prev returns the page before p, wrapping around.
func (p PageID) Prev() PageID {
	return (p + pageCount - 1) % pageCount
}

// maxLogEntries bounds State.Log.
const maxLogEntries = 5

// State is the shared application state mutated by the demo handlers.
type State struct {
	Page       PageID
	Ticks      int
	Counter    int
	Clicks     int
	ShowHelp   bool
	ShouldQuit bool
	Width      int
	Height     int
	Started    time.Time

	// Log holds the most recent activity, oldest first.
	Log []string
}

// NewState creates the initial state.
func NewState() State {
	return State{
		Page:    HomePageID,
		Started: time.Now(),
	}
}

// Logf appends a line to the activity log, dropping the oldest lines.
func (s *State) Logf(format string, args ...any) {
	s.Log = append(s.Log, fmt.Sprintf(format, args...))
	if len(s.Log) > maxLogEntries {
		s.Log = append([]string(nil), s.Log[len(s.Log)-maxLogEntries:]...)
	}
}
