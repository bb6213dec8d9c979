package config

import (
	"fmt"
	"os"
	"path/filepath"

	"galleray/pkg/types"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It covers the window, the scanner, and the directory watcher.
type Config struct {
	Settings struct {
		StartView string `yaml:"start_view"` // Initial view: single, list, or grid
		Strict    bool   `yaml:"strict"`     // Fail startup on an unusable directory argument
	} `yaml:"settings"`
	Directories struct {
		Default string `yaml:"default"` // Directory opened when none is given
	} `yaml:"directories"`
	Scan struct {
		IncludePatterns []string `yaml:"include_patterns"` // Extra base-name globs to accept
	} `yaml:"scan"`
	Watch struct {
		Enabled bool `yaml:"enabled"` // Rescan when the open directory changes
	} `yaml:"watch"`
	Window struct {
		Width     float32 `yaml:"width"`
		Height    float32 `yaml:"height"`
		DarkTheme bool    `yaml:"dark_theme"`
	} `yaml:"window"`
	Grid struct {
		ThumbnailSize int `yaml:"thumbnail_size"` // Edge length of grid thumbnails in pixels
	} `yaml:"grid"`
}

// LoadConfig loads configuration from the default location
// (~/.config/galleray/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "galleray", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal over the defaults so fields absent from the file keep them.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// New returns the default configuration
func New() *Config {
	cfg := &Config{}
	cfg.Settings.StartView = "single"
	cfg.Watch.Enabled = true
	cfg.Window.Width = 800
	cfg.Window.Height = 600
	cfg.Window.DarkTheme = true
	cfg.Grid.ThumbnailSize = 128
	return cfg
}

// Validate checks the configuration for values the application cannot run with
func (c *Config) Validate() error {
	if _, ok := types.ParseViewMode(c.Settings.StartView); !ok {
		return fmt.Errorf("invalid start_view %q: must be single, list, or grid", c.Settings.StartView)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	if c.Grid.ThumbnailSize <= 0 {
		return fmt.Errorf("invalid thumbnail_size %d", c.Grid.ThumbnailSize)
	}
	for _, p := range c.Scan.IncludePatterns {
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("invalid include pattern %q: %w", p, err)
		}
	}
	return nil
}

// StartMode returns the configured initial view mode
func (c *Config) StartMode() types.ViewMode {
	mode, _ := types.ParseViewMode(c.Settings.StartView)
	return mode
}
