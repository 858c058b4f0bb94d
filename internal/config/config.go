package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Config holds the tool settings shared by both binaries.
type Config struct {
	APIBase      string `json:"api_base"`       // base address of the speaker HTTP service
	DefaultRoom  string `json:"default_room"`   // room used when no --target is given
	Coordinator  string `json:"coordinator"`    // room that fronts an applied group preset
	GroupDelayMs int    `json:"group_delay_ms"` // wait after applying a preset before playback
	AliasFile    string `json:"alias_file"`
	PlaylistFile string `json:"playlist_file"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		APIBase:      "http://localhost:5005",
		DefaultRoom:  "Living Room",
		Coordinator:  "Living Room",
		GroupDelayMs: 1500,
		AliasFile:    filepath.Join(configDir(), "aliases"),
		PlaylistFile: filepath.Join(configDir(), "playlists"),
	}
}

// DefaultPath returns the standard settings file location.
func DefaultPath() string {
	return filepath.Join(configDir(), "config.json")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "sonoctl")
}

// Load loads configuration from a file.
// If the file doesn't exist, returns default config.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Expand environment variables in paths
	config.AliasFile = os.ExpandEnv(config.AliasFile)
	config.PlaylistFile = os.ExpandEnv(config.PlaylistFile)

	config.ApplyDefaults()

	return config, nil
}

// ApplyDefaults fills in missing fields with default values.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.APIBase == "" {
		c.APIBase = defaults.APIBase
	}
	if c.DefaultRoom == "" {
		c.DefaultRoom = defaults.DefaultRoom
	}
	if c.Coordinator == "" {
		c.Coordinator = defaults.Coordinator
	}
	if c.AliasFile == "" {
		c.AliasFile = defaults.AliasFile
	}
	if c.PlaylistFile == "" {
		c.PlaylistFile = defaults.PlaylistFile
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBase)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api_base must be an http(s) URL (got %q)", c.APIBase)
	}
	if c.GroupDelayMs < 0 {
		return fmt.Errorf("group_delay_ms must be >= 0 (got %d)", c.GroupDelayMs)
	}
	if c.DefaultRoom == "" {
		return fmt.Errorf("default_room must not be empty")
	}
	if c.Coordinator == "" {
		return fmt.Errorf("coordinator must not be empty")
	}
	return nil
}

// GroupDelay returns the preset convergence wait as a duration.
func (c *Config) GroupDelay() time.Duration {
	return time.Duration(c.GroupDelayMs) * time.Millisecond
}
