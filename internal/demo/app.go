// Package demo is a small application built on eventctl: a tabbed UI with a
// tick-counting home page and a counter page with clickable buttons.
package demo

import (
	"errors"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"

	"github.com/rescp17/tuievents/pkg/eventctl"
	"github.com/rescp17/tuievents/pkg/layout"
	"github.com/rescp17/tuievents/pkg/screen"
)

type (
	Controller = eventctl.Controller[State, Event]
	Context    = eventctl.EventContext[State, Event]
)

// NewController creates a controller owning a fresh State.
func NewController(config *eventctl.Config) (*Controller, error) {
	return eventctl.NewWithConfig[State, Event](NewState(), config)
}

// page is the widget tree of the active page. Closing it unregisters every
// widget on it.
type page struct {
	id      PageID
	render  func(area layout.Rect, buf *screen.Buffer, s *State)
	closers []io.Closer
}

func (p *page) Close() error {
	var errs []error
	for i := len(p.closers) - 1; i >= 0; i-- {
		errs = append(errs, p.closers[i].Close())
	}
	p.closers = nil
	return errors.Join(errs...)
}

func openPage(c *Controller, id PageID, theme *Theme, keys KeyMap) (*page, error) {
	p := &page{id: id}
	switch id {
	case CounterPageID:
		counter, err := eventctl.NewInteractiveStatefulWidget[State, Event, State](c, CounterPage{theme: theme, keys: keys})
		if err != nil {
			return nil, err
		}
		p.closers = append(p.closers, counter)

		inc, err := eventctl.NewInteractiveWidget(c, IncrementButton{theme: theme})
		if err != nil {
			_ = p.Close()
			return nil, err
		}
		p.closers = append(p.closers, inc)

		dec, err := eventctl.NewInteractiveWidget(c, DecrementButton{theme: theme})
		if err != nil {
			_ = p.Close()
			return nil, err
		}
		p.closers = append(p.closers, dec)

		p.render = func(area layout.Rect, buf *screen.Buffer, s *State) {
			counter.Render(area, buf, s)
			incArea, decArea := counter.Widget().buttonAreas(area)
			inc.Render(incArea, buf)
			dec.Render(decArea, buf)
		}
	default:
		home, err := eventctl.NewInteractiveStatefulWidget[State, Event, State](c, HomePage{theme: theme})
		if err != nil {
			return nil, err
		}
		p.closers = append(p.closers, home)
		p.render = home.Render
	}
	return p, nil
}

// App is the root widget. It owns the tab bar, the status bar and the active
// page, and swaps pages when a Navigate event arrives.
type App struct {
	theme  *Theme
	keys   KeyMap
	tabs   *eventctl.InteractiveStatefulWidget[State, Event, State, Tabs]
	status *eventctl.InteractiveStatefulWidget[State, Event, State, StatusBar]
	page   *page
}

// UniqueKey returns the identity of the App behavior-class.
func (*App) UniqueKey() eventctl.Identity { return "App" }

// OnEvent handles the global key bindings and page navigation.
func (a *App) OnEvent(ctx Context, s *State, _ *layout.Rect) error {
	switch e := ctx.Event.(type) {
	case Key:
		switch {
		case key.Matches(e.Msg, a.keys.Quit):
			s.ShouldQuit = true
			s.Logf("quit requested")
		case key.Matches(e.Msg, a.keys.Help):
			s.ShowHelp = !s.ShowHelp
		case key.Matches(e.Msg, a.keys.NextPage):
			return ctx.Dispatch(Navigate{Page: s.Page.Next()})
		case key.Matches(e.Msg, a.keys.PrevPage):
			return ctx.Dispatch(Navigate{Page: s.Page.Prev()})
		}
	case Navigate:
		changed, err := a.open(ctx.Controller, e.Page)
		if err != nil {
			return err
		}
		if changed {
			s.Page = e.Page
			s.Logf("opened %s page", e.Page)
		}
	case Resize:
		s.Width, s.Height = e.Width, e.Height
	}
	return nil
}

// open replaces the active page with page id. It reports whether the page changed.
func (a *App) open(c *Controller, id PageID) (bool, error) {
	if a.page != nil && a.page.id == id {
		return false, nil
	}
	if a.page != nil {
		if err := a.page.Close(); err != nil {
			return false, err
		}
		a.page = nil
	}
	p, err := openPage(c, id, a.theme, a.keys)
	if err != nil {
		return false, err
	}
	a.page = p
	slog.Debug("Page opened", "page", id.String(), "identities", c.Identities())
	return true, nil
}

// Render draws the tab bar, the active page and the status bar. Narrow
// terminals get no page margin and no full help.
func (a *App) Render(area layout.Rect, buf *screen.Buffer, s *State) {
	compact := layout.BreakpointFor(area.Width).Compact()
	header, rest := area.SplitTop(1)
	footerHeight := 1
	if s.ShowHelp && !compact {
		footerHeight = 3
	}
	body, footer := rest.SplitBottom(footerHeight)
	if !compact {
		body = body.Inset(1)
	}

	a.tabs.Render(header, buf, s)
	if a.page != nil {
		a.page.render(body, buf, s)
	}
	a.status.Render(footer, buf, s)
}

// Close closes every widget the app owns.
func (a *App) Close() error {
	var errs []error
	if a.page != nil {
		errs = append(errs, a.page.Close())
		a.page = nil
	}
	errs = append(errs, a.status.Close(), a.tabs.Close())
	return errors.Join(errs...)
}

// Mounted is the demo widget tree attached to a controller.
type Mounted struct {
	app  *App
	root *eventctl.InteractiveStatefulWidget[State, Event, State, *App]
}

// Mount builds the demo widget tree on c, starting on the home page.
func Mount(c *Controller, theme *Theme, keys KeyMap) (*Mounted, error) {
	app := &App{theme: theme, keys: keys}

	tabs, err := eventctl.NewInteractiveStatefulWidget[State, Event, State](c, Tabs{theme: theme})
	if err != nil {
		return nil, err
	}
	app.tabs = tabs

	status, err := eventctl.NewInteractiveStatefulWidget[State, Event, State](c, StatusBar{theme: theme, keys: keys})
	if err != nil {
		_ = tabs.Close()
		return nil, err
	}
	app.status = status

	if _, err := app.open(c, c.State().Page); err != nil {
		_ = app.Close()
		return nil, err
	}

	root, err := eventctl.NewInteractiveStatefulWidget[State, Event, State](c, app)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	return &Mounted{app: app, root: root}, nil
}

// Render draws the whole demo.
func (m *Mounted) Render(area layout.Rect, buf *screen.Buffer, s *State) {
	m.root.Render(area, buf, s)
}

// Close unregisters every demo widget.
func (m *Mounted) Close() error {
	return errors.Join(m.root.Close(), m.app.Close())
}
