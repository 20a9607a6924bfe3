// Package eventctl routes events to the widgets that are currently on screen.
//
// A Controller owns the shared application state S and a registry that maps a
// widget behavior-class (its Identity) to one Handler. Widgets subscribe by
// being wrapped in an InteractiveWidget (or InteractiveStatefulWidget): the
// wrapper registers on construction, reports the area it was last rendered
// into, and unregisters on Close. Several wrappers may share an Identity; the
// handler stays registered until the last of them is closed, and each event is
// delivered once per Identity, not once per wrapper.
//
// Dispatch is synchronous and runs on the caller's goroutine. Handlers run one
// at a time in first-registration order, each seeing the state as left by the
// previous one. A handler may dispatch again through its EventContext. Nothing
// bounds that recursion: a handler that re-emits the event it is handling
// without a terminating condition will overflow the stack.
//
// Except for Send, Next and Close, Controller methods must be called from the
// goroutine that owns the UI loop. No locks are taken.
package eventctl
