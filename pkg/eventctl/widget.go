package eventctl

import (
	"github.com/google/uuid"

	"github.com/rescp17/tuievents/pkg/layout"
	"github.com/rescp17/tuievents/pkg/screen"
)

// subscription is the part shared by both wrapper kinds: it holds the
// registration of one widget instance and releases it exactly once.
type subscription[S, E any] struct {
	id         uuid.UUID
	identity   Identity
	controller *Controller[S, E]
	closed     bool
}

func subscribe[S, E any](c *Controller[S, E], w EventfulWidget[S, E]) (subscription[S, E], error) {
	identity := w.UniqueKey()
	if err := c.Register(identity, w); err != nil {
		return subscription[S, E]{}, err
	}
	s := subscription[S, E]{
		id:         uuid.New(),
		identity:   identity,
		controller: c,
	}
	c.logger.Debug("Interactive widget created", "identity", identity, "id", s.id)
	return s, nil
}

func (s *subscription[S, E]) rendered(area layout.Rect) {
	if !s.closed {
		s.controller.ReportArea(s.identity, area)
	}
}

func (s *subscription[S, E]) close() {
	if s.closed {
		return
	}
	s.closed = true
	s.controller.Unregister(s.identity)
	s.controller.logger.Debug("Interactive widget closed", "identity", s.identity, "id", s.id)
}

// InteractiveWidget wraps a widget and keeps its handler registered for as
// long as the wrapper is open. Render forwards to the widget and reports the
// area to the controller so region-scoped dispatch can reach it.
//
// Close must be called when the widget leaves the screen; use defer or With
// so it runs on every exit path.
type InteractiveWidget[S, E any, W RenderableWidget[S, E]] struct {
	widget W
	sub    subscription[S, E]
}

// NewInteractiveWidget registers widget with c and wraps it.
func NewInteractiveWidget[S, E any, W RenderableWidget[S, E]](c *Controller[S, E], widget W) (*InteractiveWidget[S, E, W], error) {
	sub, err := subscribe[S, E](c, widget)
	if err != nil {
		return nil, err
	}
	return &InteractiveWidget[S, E, W]{widget: widget, sub: sub}, nil
}

// Render draws the wrapped widget and records area as its last rendered region.
func (w *InteractiveWidget[S, E, W]) Render(area layout.Rect, buf *screen.Buffer) {
	w.widget.Render(area, buf)
	w.sub.rendered(area)
}

// Close unregisters the widget. Calling Close more than once has no effect.
func (w *InteractiveWidget[S, E, W]) Close() error {
	w.sub.close()
	return nil
}

// Widget returns the wrapped widget.
func (w *InteractiveWidget[S, E, W]) Widget() W { return w.widget }

// Identity returns the identity the widget is registered under.
func (w *InteractiveWidget[S, E, W]) Identity() Identity { return w.sub.identity }

// ID returns the instance id of this wrapper.
func (w *InteractiveWidget[S, E, W]) ID() uuid.UUID { return w.sub.id }

// Closed reports whether Close has been called.
func (w *InteractiveWidget[S, E, W]) Closed() bool { return w.sub.closed }

// InteractiveStatefulWidget is InteractiveWidget for widgets that render with
// extra state of type T.
type InteractiveStatefulWidget[S, E, T any, W StatefulWidget[S, E, T]] struct {
	widget W
	sub    subscription[S, E]
}

// NewInteractiveStatefulWidget registers widget with c and wraps it.
func NewInteractiveStatefulWidget[S, E, T any, W StatefulWidget[S, E, T]](c *Controller[S, E], widget W) (*InteractiveStatefulWidget[S, E, T, W], error) {
	sub, err := subscribe[S, E](c, widget)
	if err != nil {
		return nil, err
	}
	return &InteractiveStatefulWidget[S, E, T, W]{widget: widget, sub: sub}, nil
}

// Render draws the wrapped widget and records area as its last rendered region.
func (w *InteractiveStatefulWidget[S, E, T, W]) Render(area layout.Rect, buf *screen.Buffer, state *T) {
	w.widget.Render(area, buf, state)
	w.sub.rendered(area)
}

// Close unregisters the widget. Calling Close more than once has no effect.
func (w *InteractiveStatefulWidget[S, E, T, W]) Close() error {
	w.sub.close()
	return nil
}

// Widget returns the wrapped widget.
func (w *InteractiveStatefulWidget[S, E, T, W]) Widget() W { return w.widget }

// Identity returns the identity the widget is registered under.
func (w *InteractiveStatefulWidget[S, E, T, W]) Identity() Identity { return w.sub.identity }

// ID returns the instance id of this wrapper.
func (w *InteractiveStatefulWidget[S, E, T, W]) ID() uuid.UUID { return w.sub.id }

// Closed reports whether Close has been called.
func (w *InteractiveStatefulWidget[S, E, T, W]) Closed() bool { return w.sub.closed }

// With wraps widget for the duration of fn and closes the wrapper when fn
// returns or panics.
func With[S, E any, W RenderableWidget[S, E]](c *Controller[S, E], widget W, fn func(*InteractiveWidget[S, E, W]) error) error {
	w, err := NewInteractiveWidget(c, widget)
	if err != nil {
		return err
	}
	defer w.Close()
	return fn(w)
}
