package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "a", defaults.AddTask)
	assert.Equal(t, "ctrl+z", defaults.Suspend)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("TASKLIST_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, WriteModeDeferred, cfg.Store.WriteMode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, DefaultColorScheme(), cfg.ColorScheme)
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("TASKLIST_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "tasklist")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	configContent := `database:
  driver: sqlite
  path: /tmp/custom.db
store:
  write_mode: immediate
key_mappings:
  quit: "x"
theme:
  accent: "#000000"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.Database.Path)
	assert.Equal(t, WriteModeImmediate, cfg.Store.WriteMode)
	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	// Missing keys fall back to defaults
	assert.Equal(t, "a", cfg.KeyMappings.AddTask)
	assert.Equal(t, "#000000", cfg.ColorScheme.Accent)
	assert.Equal(t, DefaultColorScheme().Selected, cfg.ColorScheme.Selected)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))
	t.Setenv("TASKLIST_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [unterminated"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Store.WriteMode = WriteModeImmediate

	require.NoError(t, cfg.Save(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, WriteModeImmediate, loaded.Store.WriteMode)
}
