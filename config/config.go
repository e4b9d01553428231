// Package config holds the runtime settings of the game. Physics constants
// are fixed and deliberately absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Title string  `toml:"title" yaml:"title"`
	Scale float64 `toml:"scale" yaml:"scale"`
}

type FontConfig struct {
	Size float64 `toml:"size" yaml:"size"`
	DPI  float64 `toml:"dpi" yaml:"dpi"`
}

// KeyConfig names the physical keys bound to paddle 1 and restart.
type KeyConfig struct {
	Up      string `toml:"up" yaml:"up"`
	Down    string `toml:"down" yaml:"down"`
	Restart string `toml:"restart" yaml:"restart"`
}

type RemoteConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Listen  string `toml:"listen" yaml:"listen"`
}

type Config struct {
	Window  WindowConfig `toml:"window" yaml:"window"`
	TPS     int          `toml:"tps" yaml:"tps"`
	Font    FontConfig   `toml:"font" yaml:"font"`
	Keys    KeyConfig    `toml:"keys" yaml:"keys"`
	Remote  RemoteConfig `toml:"remote" yaml:"remote"`
	ShowTPS bool         `toml:"show_tps" yaml:"show_tps"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title: "Ping Pong",
			Scale: 1,
		},
		TPS: 60,
		Font: FontConfig{
			Size: 24,
			DPI:  72,
		},
		Keys: KeyConfig{
			Up:      "W",
			Down:    "S",
			Restart: "R",
		},
		Remote: RemoteConfig{
			Listen: "127.0.0.1:8080",
		},
	}
}

// Load applies the given files in order on top of the defaults and
// validates the result. Fields missing from a file keep their previous
// value.
func Load(paths ...string) (*Config, error) {
	cfg := Default()
	for _, path := range paths {
		if err := readFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("not in a valid format")
	}
	return err
}

// Validate checks ranges and that the three key bindings are set, known
// and distinct.
func (c *Config) Validate() error {
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %v", c.Window.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Font.Size <= 0 || c.Font.DPI <= 0 {
		return fmt.Errorf("font.size and font.dpi must be positive")
	}

	seen := make(map[string]string)
	for _, k := range []struct{ name, value string }{
		{"keys.up", c.Keys.Up},
		{"keys.down", c.Keys.Down},
		{"keys.restart", c.Keys.Restart},
	} {
		if k.value == "" {
			return fmt.Errorf("%s is not set", k.name)
		}
		if !KnownKey(k.value) {
			return fmt.Errorf("%s: unknown key %q", k.name, k.value)
		}
		v := strings.ToUpper(k.value)
		if other, ok := seen[v]; ok {
			return fmt.Errorf("%s and %s are both bound to %s", other, k.name, v)
		}
		seen[v] = k.name
	}

	if c.Remote.Enabled && c.Remote.Listen == "" {
		return fmt.Errorf("remote.listen is not set")
	}
	return nil
}
