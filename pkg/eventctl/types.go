package eventctl

import (
	"github.com/rescp17/tuievents/pkg/layout"
	"github.com/rescp17/tuievents/pkg/screen"
)

// Identity names a widget behavior-class. It is the registry key: every widget
// of the class shares it, and so does the single handler registered for it.
type Identity string

func (id Identity) String() string {
	return string(id)
}

// EventContext is handed to a handler for one invocation. It must not be kept
// after the handler returns.
type EventContext[S, E any] struct {
	// Event is the event being dispatched.
	Event E

	// Region is the region passed to DispatchInRegion, or nil for a broadcast.
	Region *layout.Rect

	// Controller is the dispatching controller, for follow-up events.
	Controller *Controller[S, E]
}

// Dispatch emits a follow-up event through the same controller. The follow-up
// is delivered completely before the current handler continues.
func (ctx EventContext[S, E]) Dispatch(event E) error {
	return ctx.Controller.Dispatch(event)
}

// Handler reacts to events on behalf of a behavior-class.
//
// area is the region the widget was last rendered into. It is set only for
// region-scoped dispatch, and is nil for broadcasts.
type Handler[S, E any] interface {
	OnEvent(ctx EventContext[S, E], state *S, area *layout.Rect) error
}

// HandlerFunc adapts a function to the Handler interface. Go functions have
// no comparable identity, so every HandlerFunc passed to Register belongs to
// one behavior-class. Use Controller.RegisterFunc to name the class of a
// function and have mismatches under one Identity rejected.
type HandlerFunc[S, E any] func(ctx EventContext[S, E], state *S, area *layout.Rect) error

// OnEvent calls f(ctx, state, area).
func (f HandlerFunc[S, E]) OnEvent(ctx EventContext[S, E], state *S, area *layout.Rect) error {
	return f(ctx, state, area)
}

// EventfulWidget is implemented by application widgets that handle events.
// UniqueKey must return the same Identity for every value of the type.
// OnEvent is invoked on whichever instance registered the Identity first, so
// widgets that can have several live instances keep their event state in S.
type EventfulWidget[S, E any] interface {
	Handler[S, E]
	UniqueKey() Identity
}

// Renderer draws a widget into area of buf.
type Renderer interface {
	Render(area layout.Rect, buf *screen.Buffer)
}

// StatefulRenderer draws a widget that needs extra render state.
type StatefulRenderer[T any] interface {
	Render(area layout.Rect, buf *screen.Buffer, state *T)
}

// RenderableWidget is an eventful widget with a plain Renderer.
type RenderableWidget[S, E any] interface {
	EventfulWidget[S, E]
	Renderer
}

// StatefulWidget is an eventful widget with a StatefulRenderer.
type StatefulWidget[S, E, T any] interface {
	EventfulWidget[S, E]
	StatefulRenderer[T]
}
