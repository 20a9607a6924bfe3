package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rescp17/tuievents/internal/config"
)

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuievents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfigCommand_PrintsToStdout(t *testing.T) {
	stdout, stderr, err := executeRoot(t, "config", "--theme", "mono")

	require.NoError(t, err)
	assert.Contains(t, stdout, "theme: mono")
	assert.Contains(t, stdout, "tick_interval: 500ms")
	assert.Empty(t, stderr)
}

func TestConfigCommand_FlagsOverrideFileBeforeValidation(t *testing.T) {
	// Given: a file with a tick interval that fails validation on its own
	path := writeConfig(t, "tick_interval: 5ms\ntheme: light\n")

	// When: the flag replaces it
	stdout, _, err := executeRoot(t, "config", "--config", path, "--tick", "1s")

	// Then: the merged configuration is accepted
	require.NoError(t, err)
	assert.Contains(t, stdout, "tick_interval: 1s")
	assert.Contains(t, stdout, "theme: light")
}

func TestConfigCommand_InvalidConfiguration(t *testing.T) {
	path := writeConfig(t, "tick_interval: 5ms\n")

	_, _, err := executeRoot(t, "config", "--config", path)

	assert.ErrorIs(t, err, config.ErrInvalidConfiguration)
}
