package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:5005", cfg.APIBase)
	assert.Equal(t, "Living Room", cfg.DefaultRoom)
	assert.Equal(t, "Living Room", cfg.Coordinator)
	assert.Equal(t, 1500, cfg.GroupDelayMs)
	assert.NotEmpty(t, cfg.AliasFile)
	assert.NotEmpty(t, cfg.PlaylistFile)
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	configJSON := `{
		"api_base": "http://sonos.local:5005",
		"default_room": "Kitchen",
		"group_delay_ms": 500
	}`

	err := os.WriteFile(configPath, []byte(configJSON), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "http://sonos.local:5005", cfg.APIBase)
	assert.Equal(t, "Kitchen", cfg.DefaultRoom)
	assert.Equal(t, 500, cfg.GroupDelayMs)
	// Untouched fields keep their defaults
	assert.Equal(t, "Living Room", cfg.Coordinator)
	assert.NotEmpty(t, cfg.AliasFile)
}

func TestLoadConfigNotExists(t *testing.T) {
	cfg, err := Load("/nonexistent/config.json")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:5005", cfg.APIBase)
}

func TestLoadConfigExpandsEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	t.Setenv("SPEAKER_DIR", tmpDir)

	configJSON := `{"alias_file": "$SPEAKER_DIR/aliases"}`
	require.NoError(t, os.WriteFile(configPath, []byte(configJSON), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "aliases"), cfg.AliasFile)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "bad api_base scheme",
			mutate:  func(c *Config) { c.APIBase = "ftp://localhost:5005" },
			wantErr: true,
		},
		{
			name:    "api_base not a URL",
			mutate:  func(c *Config) { c.APIBase = "not a url" },
			wantErr: true,
		},
		{
			name:    "negative group delay",
			mutate:  func(c *Config) { c.GroupDelayMs = -1 },
			wantErr: true,
		},
		{
			name:    "empty default room",
			mutate:  func(c *Config) { c.DefaultRoom = "" },
			wantErr: true,
		},
		{
			name:    "empty coordinator",
			mutate:  func(c *Config) { c.Coordinator = "" },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGroupDelay(t *testing.T) {
	cfg := &Config{GroupDelayMs: 250}
	assert.Equal(t, 250*time.Millisecond, cfg.GroupDelay())
}
