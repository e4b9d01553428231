package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	// Default config
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	dir := t.TempDir()

	// toml config
	{
		path := writeConfig(t, dir, "config.toml", `
tps = 120
show_tps = true

[keys]
up = "Up"
down = "Down"

[remote]
enabled = true
listen = ":9000"
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 120, cfg.TPS)
		assert.True(t, cfg.ShowTPS)
		assert.Equal(t, "Up", cfg.Keys.Up)
		assert.Equal(t, "Down", cfg.Keys.Down)
		assert.Equal(t, "R", cfg.Keys.Restart)
		assert.Equal(t, RemoteConfig{Enabled: true, Listen: ":9000"}, cfg.Remote)
		assert.Equal(t, "Ping Pong", cfg.Window.Title)
	}

	// yaml config
	{
		path := writeConfig(t, dir, "config.yaml", `
window:
  title: pong
  scale: 2
font:
  size: 32
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, WindowConfig{Title: "pong", Scale: 2}, cfg.Window)
		assert.Equal(t, FontConfig{Size: 32, DPI: 72}, cfg.Font)
	}

	// later files override earlier ones
	{
		first := writeConfig(t, dir, "first.toml", "tps = 30\n")
		second := writeConfig(t, dir, "second.yml", "tps: 90\n")
		cfg, err := Load(first, second)
		require.NoError(t, err)
		assert.Equal(t, 90, cfg.TPS)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, dir, "config.json", "{}"))
	assert.ErrorContains(t, err, "not in a valid format")

	_, err = Load(writeConfig(t, dir, "broken.toml", "tps = = 1"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, dir, "zero.toml", "tps = 0"))
	assert.ErrorContains(t, err, "tps")

	_, err = Load(writeConfig(t, dir, "keys.yaml", "keys:\n  restart: Escape\n"))
	assert.ErrorContains(t, err, "keys.restart")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg = Default()
	cfg.Keys.Down = "w"
	assert.ErrorContains(t, cfg.Validate(), "keys.up and keys.down")

	cfg = Default()
	cfg.Keys.Restart = ""
	assert.ErrorContains(t, cfg.Validate(), "keys.restart is not set")

	cfg = Default()
	cfg.Keys.Up = "F13"
	assert.ErrorContains(t, cfg.Validate(), `keys.up: unknown key "F13"`)

	cfg = Default()
	cfg.Keys.Up = "up"
	cfg.Keys.Down = "Down"
	assert.NoError(t, cfg.Validate())

	cfg = Default()
	cfg.Window.Scale = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Font.DPI = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Remote.Enabled = true
	cfg.Remote.Listen = ""
	assert.ErrorContains(t, cfg.Validate(), "remote.listen")
}
