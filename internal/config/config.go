// Package config loads the demo settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rescp17/tuievents/pkg/eventctl"
)

// ErrInvalidConfiguration is returned when a loaded configuration fails validation.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config holds all configuration for the demo program.
type Config struct {
	// TickInterval is the time between two Tick events.
	TickInterval time.Duration `yaml:"tick_interval"`

	// EventBufferSize is the capacity of the controller event queue.
	EventBufferSize int `yaml:"event_buffer_size"`

	// Theme is one of the names returned by demo.ThemeNames.
	Theme string `yaml:"theme"`

	// Mouse enables mouse click reporting.
	Mouse bool `yaml:"mouse"`

	// AltScreen runs the program in the alternate screen buffer.
	AltScreen bool `yaml:"alt_screen"`

	// LogFile receives the program logs; the terminal is owned by the UI.
	LogFile string `yaml:"log_file"`

	// Debug enables debug level logging.
	Debug bool `yaml:"debug"`
}

// Tick interval bounds
const (
	DefaultTickInterval = 500 * time.Millisecond
	MinTickInterval     = 10 * time.Millisecond
)

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		TickInterval:    DefaultTickInterval,
		EventBufferSize: eventctl.DefaultEventBufferSize,
		Theme:           "dark",
		Mouse:           true,
		AltScreen:       true,
		LogFile:         "debug.log",
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults. The result is not validated, so callers can apply overrides
// first and call Validate once.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks if the configuration values are valid. Errors wrap
// ErrInvalidConfiguration.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.TickInterval < MinTickInterval {
		return fmt.Errorf("tick_interval must be at least %s", MinTickInterval)
	}
	if c.EventBufferSize < 0 {
		return errors.New("event_buffer_size cannot be negative")
	}
	if c.Theme == "" {
		return errors.New("theme cannot be empty")
	}
	return nil
}

// Controller returns the controller configuration derived from c.
func (c *Config) Controller() *eventctl.Config {
	cfg := eventctl.DefaultConfig()
	cfg.EventBufferSize = c.EventBufferSize
	return cfg
}

// YAML returns c encoded as YAML.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
