package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "$ ", cfg.Prompt)
	assert.Equal(t, 500, cfg.History.Limit)
	assert.False(t, cfg.Trace.Enabled)
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
prompt: '\w $ '
history:
  path: /tmp/hist
  limit: 50
trace:
  enabled: true
  path: /tmp/trace.jsonl
`), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, `\w $ `, cfg.Prompt)
	assert.Equal(t, "/tmp/hist", cfg.History.Path)
	assert.Equal(t, 50, cfg.History.Limit)
	assert.True(t, cfg.Trace.Enabled)
	assert.Equal(t, "/tmp/trace.jsonl", cfg.Trace.Path)
}

func TestLoadFromPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: '> '\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, 500, cfg.History.Limit)
}

func TestLoadFromBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t-  broken"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestHistoryPathHonorsHistfile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.History.Path = "/configured/hist"

	t.Setenv("HISTFILE", "/env/hist")
	assert.Equal(t, "/env/hist", cfg.HistoryPath())

	t.Setenv("HISTFILE", "")
	assert.Equal(t, "/configured/hist", cfg.HistoryPath())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x"), expandHome("~/x"))
	assert.Equal(t, "/abs/x", expandHome("/abs/x"))
}
