package eventctl

import (
	"errors"
	"log/slog"
)

// DefaultEventBufferSize is the capacity of the event queue used by Send.
const DefaultEventBufferSize = 100

// Config holds the controller settings.
type Config struct {
	// EventBufferSize is the number of events Send can queue before it blocks.
	EventBufferSize int `json:"event_buffer_size" yaml:"event_buffer_size"`

	// Logger receives registration and dispatch diagnostics. Nil means slog.Default().
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		EventBufferSize: DefaultEventBufferSize,
	}
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if c.EventBufferSize < 0 {
		return errors.New("event_buffer_size cannot be negative")
	}
	return nil
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
