package eventctl

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when a registration contradicts an earlier one.
	ErrConfiguration = errors.New("invalid event handler configuration")

	// ErrClosed is returned by the event queue after Close.
	ErrClosed = errors.New("event controller closed")

	// ErrInvalidConfig is returned by NewWithConfig for a config that fails Validate.
	ErrInvalidConfig = errors.New("invalid controller config")
)

// ConfigurationError describes a rejected registration.
type ConfigurationError struct {
	Identity Identity
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: identity %q: %s", ErrConfiguration, e.Identity, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// HandlerError wraps the error returned by a handler during dispatch.
// The dispatch pass stops at the failing handler; state changes made by
// handlers before it are kept.
type HandlerError struct {
	Identity Identity
	Err      error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler %q failed: %v", e.Identity, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}
