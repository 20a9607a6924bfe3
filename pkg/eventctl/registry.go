package eventctl

import (
	"reflect"

	"github.com/rescp17/tuievents/pkg/layout"
)

// entry is one registered behavior-class. A removed entry keeps live == 0, so
// a snapshot taken before the removal can tell that it is inert.
type entry[S, E any] struct {
	identity Identity
	handler  Handler[S, E]
	class    any
	live     int
	area     *layout.Rect
}

// registry maps identities to entries and remembers first-registration order.
type registry[S, E any] struct {
	entries map[Identity]*entry[S, E]
	order   []*entry[S, E]
}

func newRegistry[S, E any]() *registry[S, E] {
	return &registry[S, E]{
		entries: make(map[Identity]*entry[S, E]),
	}
}

// funcClass is the class token of a function registered with RegisterFunc.
type funcClass string

// classedFunc is a HandlerFunc with an explicit behavior-class.
type classedFunc[S, E any] struct {
	HandlerFunc[S, E]
	class funcClass
}

// classOf returns a comparable token for the behavior-class of h: the class
// named in RegisterFunc, or else the dynamic type of h.
func classOf[S, E any](h Handler[S, E]) any {
	if f, ok := h.(classedFunc[S, E]); ok {
		return f.class
	}
	return reflect.TypeOf(h)
}

// register adds a reference to identity and returns the resulting live count.
func (r *registry[S, E]) register(identity Identity, handler Handler[S, E]) (int, error) {
	if identity == "" {
		return 0, &ConfigurationError{Identity: identity, Reason: "identity cannot be empty"}
	}
	if handler == nil {
		return 0, &ConfigurationError{Identity: identity, Reason: "handler cannot be nil"}
	}
	switch f := handler.(type) {
	case HandlerFunc[S, E]:
		if f == nil {
			return 0, &ConfigurationError{Identity: identity, Reason: "handler cannot be nil"}
		}
	case classedFunc[S, E]:
		if f.HandlerFunc == nil {
			return 0, &ConfigurationError{Identity: identity, Reason: "handler cannot be nil"}
		}
		if f.class == "" {
			return 0, &ConfigurationError{Identity: identity, Reason: "function class cannot be empty"}
		}
	}

	class := classOf(handler)
	if e, ok := r.entries[identity]; ok {
		if e.class != class {
			return e.live, &ConfigurationError{
				Identity: identity,
				Reason:   "already registered with a different handler",
			}
		}
		e.live++
		return e.live, nil
	}

	e := &entry[S, E]{
		identity: identity,
		handler:  handler,
		class:    class,
		live:     1,
	}
	r.entries[identity] = e
	r.order = append(r.order, e)
	return 1, nil
}

// unregister drops a reference to identity and returns the remaining live count.
// Unknown identities are ignored.
func (r *registry[S, E]) unregister(identity Identity) int {
	e, ok := r.entries[identity]
	if !ok {
		return 0
	}
	e.live--
	if e.live > 0 {
		return e.live
	}

	e.live = 0
	e.area = nil
	delete(r.entries, identity)
	for i, o := range r.order {
		if o == e {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return 0
}

// live returns a snapshot of the live entries in first-registration order.
func (r *registry[S, E]) live() []*entry[S, E] {
	snapshot := make([]*entry[S, E], len(r.order))
	copy(snapshot, r.order)
	return snapshot
}

func (r *registry[S, E]) lookup(identity Identity) (*entry[S, E], bool) {
	e, ok := r.entries[identity]
	return e, ok
}
