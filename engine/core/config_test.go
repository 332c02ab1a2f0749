package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "canopy.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
title = "demo"
width = 800
clear_color = [0.5, 0.25, 0.0, 1.0]
log_level = "debug"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, DefaultConfig().Height, cfg.Height)
	assert.True(t, cfg.VSync)
	assert.Equal(t, [4]float32{0.5, 0.25, 0, 1}, cfg.ClearColor)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `width = "wide"`))
	assert.ErrorContains(t, err, "parse config")

	_, err = LoadConfig(writeConfig(t, `height = 0`))
	assert.ErrorContains(t, err, "window size must be positive")

	_, err = LoadConfig(writeConfig(t, `log_level = "loud"`))
	assert.ErrorContains(t, err, "log_level")
}

func TestConfigLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"
	log, err := cfg.Logger()
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	cfg.LogLevel = "bogus"
	_, err = cfg.Logger()
	assert.Error(t, err)
}
