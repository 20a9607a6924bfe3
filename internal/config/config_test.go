package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuievents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultTickInterval, cfg.TickInterval)
	assert.Equal(t, "dark", cfg.Theme)
	assert.True(t, cfg.Mouse)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
tick_interval: 250ms
event_buffer_size: 8
theme: mono
mouse: false
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 8, cfg.EventBufferSize)
	assert.Equal(t, "mono", cfg.Theme)
	assert.False(t, cfg.Mouse)

	// Values missing from the file keep their defaults
	assert.True(t, cfg.AltScreen)
	assert.Equal(t, "debug.log", cfg.LogFile)
	assert.Equal(t, 8, cfg.Controller().EventBufferSize)
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Malformed YAML", "tick_interval: ["},
		{"Bad duration", "tick_interval: soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Tick too fast", "tick_interval: 1ms"},
		{"Negative buffer", "event_buffer_size: -1"},
		{"Empty theme", "theme: \"\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Load accepts values that only fail validation
			cfg, err := Load(writeConfig(t, tt.content))
			require.NoError(t, err)

			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)
		})
	}
}

func TestLoad_OverrideBeforeValidate(t *testing.T) {
	// Given: a file whose tick interval is too fast on its own
	cfg, err := Load(writeConfig(t, "tick_interval: 5ms"))
	require.NoError(t, err)

	// When: an override replaces it before validation
	cfg.TickInterval = time.Second

	// Then: the configuration is valid
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Theme = "light"

	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "theme: light")

	loaded, err := Load(writeConfig(t, out))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
