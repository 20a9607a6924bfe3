package eventctl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rescp17/tuievents/pkg/layout"
)

// Controller owns the shared state S and delivers events of type E to the
// registered handlers.
type Controller[S, E any] struct {
	state    *S
	registry *registry[S, E]
	config   *Config
	logger   *slog.Logger

	// depth is the number of dispatch passes currently on the stack.
	depth int

	queue     chan E
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a Controller owning initial, with the default configuration.
func New[S, E any](initial S) *Controller[S, E] {
	c, _ := NewWithConfig[S, E](initial, DefaultConfig())
	return c
}

// NewWithConfig creates a Controller owning initial.
// Returns an error if the configuration is invalid.
func NewWithConfig[S, E any](initial S, config *Config) (*Controller[S, E], error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	state := initial
	return &Controller[S, E]{
		state:    &state,
		registry: newRegistry[S, E](),
		config:   config,
		logger:   config.logger(),
		queue:    make(chan E, config.EventBufferSize),
		done:     make(chan struct{}),
	}, nil
}

// State returns a copy of the shared state, for rendering between dispatches.
// Handlers receive the state itself.
//
// The copy is shallow: slices, maps and pointers inside S still refer to the
// live state, so callers must treat them as read-only.
func (c *Controller[S, E]) State() S {
	return *c.state
}

// Register subscribes handler under identity. The behavior-class of handler is
// its dynamic type. Registering an identity that is already live with a handler
// of the same class increments its live count; a handler of a different class
// is rejected with a *ConfigurationError.
//
// Every successful Register must be matched by one Unregister.
func (c *Controller[S, E]) Register(identity Identity, handler Handler[S, E]) error {
	live, err := c.registry.register(identity, handler)
	if err != nil {
		c.logger.Error("Rejected event handler registration", "identity", identity, "error", err)
		return err
	}
	c.logger.Debug("Registered event handler", "identity", identity, "live", live)
	return nil
}

// RegisterFunc subscribes f under identity as a member of the named class.
// Functions registered with the same class share the handler of the first
// registration; a different class, or any non-function handler, is rejected
// like Register does for mismatched types.
func (c *Controller[S, E]) RegisterFunc(identity Identity, class string, f HandlerFunc[S, E]) error {
	return c.Register(identity, classedFunc[S, E]{HandlerFunc: f, class: funcClass(class)})
}

// Unregister drops one reference to identity. When the last reference is gone
// the handler stops receiving events. Unknown identities are ignored.
func (c *Controller[S, E]) Unregister(identity Identity) {
	if _, ok := c.registry.lookup(identity); !ok {
		return
	}
	live := c.registry.unregister(identity)
	if live == 0 {
		c.logger.Debug("Removed event handler", "identity", identity)
		return
	}
	c.logger.Debug("Unregistered event handler reference", "identity", identity, "live", live)
}

// Has reports whether identity currently has a live handler.
func (c *Controller[S, E]) Has(identity Identity) bool {
	_, ok := c.registry.lookup(identity)
	return ok
}

// LiveCount returns the number of live references to identity.
func (c *Controller[S, E]) LiveCount(identity Identity) int {
	if e, ok := c.registry.lookup(identity); ok {
		return e.live
	}
	return 0
}

// Identities returns the live identities in dispatch order.
func (c *Controller[S, E]) Identities() []Identity {
	entries := c.registry.live()
	ids := make([]Identity, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.identity)
	}
	return ids
}

// ReportArea records the region identity was last rendered into.
// It is a no-op for identities without a live handler.
func (c *Controller[S, E]) ReportArea(identity Identity, area layout.Rect) {
	if e, ok := c.registry.lookup(identity); ok {
		e.area = &area
	}
}

// Area returns the last area reported for identity.
func (c *Controller[S, E]) Area(identity Identity) (layout.Rect, bool) {
	if e, ok := c.registry.lookup(identity); ok && e.area != nil {
		return *e.area, true
	}
	return layout.Rect{}, false
}

// Dispatch delivers event to every live handler in first-registration order.
//
// Handlers registered during the pass are not called until the next one;
// handlers unregistered during the pass are skipped if they have not run yet.
// The first handler error stops the pass and is returned as a *HandlerError.
// Panics are not recovered.
func (c *Controller[S, E]) Dispatch(event E) error {
	return c.dispatch(event, nil)
}

// DispatchInRegion delivers event to the live handlers whose last reported
// area intersects region. Handlers of widgets that have never been rendered
// are not called. The handler receives its widget's area, and region is
// available as EventContext.Region.
func (c *Controller[S, E]) DispatchInRegion(event E, region layout.Rect) error {
	return c.dispatch(event, &region)
}

func (c *Controller[S, E]) dispatch(event E, region *layout.Rect) error {
	c.depth++
	defer func() { c.depth-- }()

	if c.depth > 1 {
		c.logger.Debug("Nested dispatch", "depth", c.depth, "event", fmt.Sprintf("%T", event))
	}

	for _, e := range c.registry.live() {
		if e.live == 0 {
			continue
		}

		ctx := EventContext[S, E]{Event: event, Controller: c}
		var area *layout.Rect
		if region != nil {
			if e.area == nil || !e.area.Intersects(*region) {
				continue
			}
			r, a := *region, *e.area
			ctx.Region, area = &r, &a
		}

		if err := e.handler.OnEvent(ctx, c.state, area); err != nil {
			c.logger.Error("Event handler failed", "identity", e.identity, "depth", c.depth, "error", err)
			return &HandlerError{Identity: e.identity, Err: err}
		}
	}
	return nil
}

// Send queues event for RecvAndNotify. It is safe to call from any goroutine
// and blocks while the queue is full.
func (c *Controller[S, E]) Send(event E) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	select {
	case c.queue <- event:
		return nil
	case <-c.done:
		return ErrClosed
	}
}

// Next waits for the next queued event without dispatching it.
// It returns ErrClosed after Close, or the context error if ctx ends first.
func (c *Controller[S, E]) Next(ctx context.Context) (E, error) {
	var zero E
	select {
	case <-c.done:
		return zero, ErrClosed
	default:
	}

	select {
	case event := <-c.queue:
		return event, nil
	case <-c.done:
		return zero, ErrClosed
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// RecvAndNotify waits for one queued event and dispatches it to all handlers.
func (c *Controller[S, E]) RecvAndNotify(ctx context.Context) error {
	event, err := c.Next(ctx)
	if err != nil {
		return err
	}
	return c.Dispatch(event)
}

// Close stops the event queue. Registered handlers are left alone.
func (c *Controller[S, E]) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.logger.Debug("Event controller closed", "pending", len(c.queue))
	})
}
