// Package cli defines the command trees for the sonoctl and sonoplay
// binaries. Both share the same settings file and alias table; flags
// and SONOCTL_* environment variables are bound through viper.
package cli

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/homeline/sonoctl/internal/config"
	"github.com/homeline/sonoctl/internal/sonos"
	"github.com/homeline/sonoctl/internal/tables"
)

const version = "1.3.0"

// app carries the per-invocation state: settings, the alias table and
// the dispatch client. Built once in setup, never mutated afterwards.
type app struct {
	cfg     *config.Config
	aliases []tables.Alias
	client  *sonos.Client
}

func setup() (*app, error) {
	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	cfgPath := viper.GetString("config")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := overlayEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	aliases, err := tables.LoadAliases(cfg.AliasFile)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		aliases: aliases,
		client:  sonos.New(cfg),
	}, nil
}

// target resolves the --target flag (or the configured default room)
// through the alias table.
func (a *app) target() tables.Target {
	name := viper.GetString("target")
	if name == "" {
		name = a.cfg.DefaultRoom
	}
	return tables.Resolve(a.aliases, name)
}

// room returns the addressable room for a target. An applied preset is
// fronted by the configured coordinator room.
func (a *app) room(t tables.Target) string {
	if t.IsPreset() {
		return a.cfg.Coordinator
	}
	return t.Name
}

// overlayEnv applies SONOCTL_* environment overrides on top of the
// loaded settings file. Flag-backed keys (config, target, debug) are
// read through viper where they are used and need no overlay here.
func overlayEnv(cfg *config.Config) error {
	if v := viper.GetString("api_base"); v != "" {
		cfg.APIBase = v
	}
	if v := viper.GetString("default_room"); v != "" {
		cfg.DefaultRoom = v
	}
	if v := viper.GetString("coordinator"); v != "" {
		cfg.Coordinator = v
	}
	if v := viper.GetString("group_delay_ms"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SONOCTL_GROUP_DELAY_MS must be an integer (got %q)", v)
		}
		cfg.GroupDelayMs = ms
	}
	if v := viper.GetString("alias_file"); v != "" {
		cfg.AliasFile = v
	}
	if v := viper.GetString("playlist_file"); v != "" {
		cfg.PlaylistFile = v
	}
	return nil
}

func bindEnv() {
	viper.SetEnvPrefix("sonoctl")
	viper.AutomaticEnv()
}
