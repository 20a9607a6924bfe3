// Package ui runs an eventctl application inside a bubbletea program.
//
// The Model is both collaborators the controller needs: it turns bubbletea
// messages and queued controller events into dispatches, and it renders the
// root widget into a screen.Buffer for View.
package ui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rescp17/tuievents/pkg/eventctl"
	"github.com/rescp17/tuievents/pkg/layout"
	"github.com/rescp17/tuievents/pkg/screen"
)

// Root is the top-level widget. It receives a copy of the shared state.
type Root[S any] interface {
	Render(area layout.Rect, buf *screen.Buffer, state *S)
}

// Options configures how bubbletea messages become application events.
type Options[S, E any] struct {
	// Translate maps a message to an event for a broadcast dispatch.
	// Returning false drops the message.
	Translate func(msg tea.Msg) (E, bool)

	// Click maps a mouse message to an event dispatched to the widgets
	// under the pointer. Returning false drops the message.
	Click func(msg tea.MouseMsg) (E, bool)

	// Quit reports whether the program should exit, checked after every dispatch.
	Quit func(state S) bool
}

// eventMsg carries an event received from the controller queue.
type eventMsg[E any] struct {
	event E
	err   error
}

// Model is a tea.Model driving a controller and a root widget.
type Model[S, E any] struct {
	controller *eventctl.Controller[S, E]
	root       Root[S]
	opts       Options[S, E]
	viewport   *layout.Viewport

	ctx    context.Context
	cancel context.CancelFunc

	err      error
	quitting bool
}

// NewModel creates a model for controller and root.
func NewModel[S, E any](controller *eventctl.Controller[S, E], root Root[S], opts Options[S, E]) *Model[S, E] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Model[S, E]{
		controller: controller,
		root:       root,
		opts:       opts,
		viewport:   layout.NewViewport(),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Err returns the error that stopped the program, if any.
func (m *Model[S, E]) Err() error {
	return m.err
}

func (m *Model[S, E]) Init() tea.Cmd {
	return m.listenForEvents()
}

// listenForEvents is a command that waits for the next event queued on the controller.
func (m *Model[S, E]) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		event, err := m.controller.Next(m.ctx)
		return eventMsg[E]{event: event, err: err}
	}
}

func (m *Model[S, E]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg[E]:
		if msg.err != nil {
			if errors.Is(msg.err, eventctl.ErrClosed) || errors.Is(msg.err, context.Canceled) {
				return m, m.quit(nil)
			}
			return m, m.quit(msg.err)
		}
		if cmd := m.afterDispatch(m.controller.Dispatch(msg.event)); cmd != nil {
			return m, cmd
		}
		return m, m.listenForEvents()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, m.quit(nil)
		}

	case tea.WindowSizeMsg:
		if m.viewport.Update(msg) {
			slog.Debug("Viewport resized", "width", m.viewport.Width, "height", m.viewport.Height, "breakpoint", m.viewport.Breakpoint())
		}

	case tea.MouseMsg:
		if m.opts.Click == nil {
			return m, nil
		}
		event, ok := m.opts.Click(msg)
		if !ok {
			return m, nil
		}
		return m, m.afterDispatch(m.controller.DispatchInRegion(event, layout.Cell(msg.X, msg.Y)))
	}

	if m.opts.Translate == nil {
		return m, nil
	}
	event, ok := m.opts.Translate(msg)
	if !ok {
		return m, nil
	}
	return m, m.afterDispatch(m.controller.Dispatch(event))
}

// afterDispatch returns tea.Quit when the dispatch failed or the state asks to quit.
func (m *Model[S, E]) afterDispatch(err error) tea.Cmd {
	if err != nil {
		slog.Error("Dispatch failed", "error", err)
		return m.quit(err)
	}
	if m.opts.Quit != nil && m.opts.Quit(m.controller.State()) {
		return m.quit(nil)
	}
	return nil
}

func (m *Model[S, E]) quit(err error) tea.Cmd {
	if err != nil && m.err == nil {
		m.err = err
	}
	m.quitting = true
	m.cancel()
	return tea.Quit
}

func (m *Model[S, E]) View() string {
	if m.quitting {
		return ""
	}
	area := m.viewport.Rect()
	buf := screen.NewBuffer(area)
	state := m.controller.State()
	m.root.Render(area, buf, &state)
	return buf.String()
}

// Run runs m in a bubbletea program until it quits, and returns the error
// that stopped it.
func Run[S, E any](m *Model[S, E], opts ...tea.ProgramOption) error {
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return err
	}
	return m.Err()
}
