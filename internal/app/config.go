// Package app ties the emulated console together: it owns the bus, the
// PPU and the inserted cartridge, and manages the user configuration.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the user-facing emulator configuration.
type Config struct {
	Window WindowConfig `json:"window"`
	Video  VideoConfig  `json:"video"`
	Debug  DebugConfig  `json:"debug"`

	configPath string
}

// WindowConfig contains window-related configuration.
type WindowConfig struct {
	Scale      int  `json:"scale"` // NES resolution multiplier
	Fullscreen bool `json:"fullscreen"`
}

// VideoConfig contains video rendering configuration.
type VideoConfig struct {
	Backend string `json:"backend"` // "ebitengine", "headless"
	VSync   bool   `json:"vsync"`
	Filter  string `json:"filter"` // "nearest", "linear"
}

// DebugConfig contains debugging view options.
type DebugConfig struct {
	ShowPatternTables bool `json:"show_pattern_tables"`
	ShowPalettes      bool `json:"show_palettes"`
}

// NewConfig creates a configuration with default values.
func NewConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Scale:      2,
			Fullscreen: false,
		},
		Video: VideoConfig{
			Backend: "ebitengine",
			VSync:   true,
			Filter:  "nearest",
		},
		Debug: DebugConfig{
			ShowPatternTables: true,
			ShowPalettes:      true,
		},
	}
}

// LoadFromFile loads configuration from a JSON file. If the file does
// not exist, the current (default) values are written there instead.
func (c *Config) LoadFromFile(path string) error {
	c.configPath = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c.SaveToFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	c.validate()
	return nil
}

// SaveToFile saves the configuration to a JSON file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	c.configPath = path
	return nil
}

// Save saves the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return fmt.Errorf("no config file path set")
	}
	return c.SaveToFile(c.configPath)
}

// validate clamps out-of-range values back to their defaults.
func (c *Config) validate() {
	if c.Window.Scale <= 0 {
		c.Window.Scale = 1
	}
	switch c.Video.Backend {
	case "ebitengine", "headless":
	default:
		c.Video.Backend = "ebitengine"
	}
	switch c.Video.Filter {
	case "nearest", "linear":
	default:
		c.Video.Filter = "nearest"
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	return "./config/nescore.json"
}
