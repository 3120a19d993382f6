// Package config loads application configuration from TOML files.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all application settings.
type Config struct {
	// APIBase is the base URL hosting the archive JSON.
	APIBase string `koanf:"api_base"`
	// Performer selects the per-performer song file (<performer>/all.json).
	Performer string `koanf:"performer"`
	// View is the initial view fragment, e.g. "#/list" or "#/shuffle".
	View string `koanf:"view"`
	// Icons selects the glyph set: "nerd", "unicode", or "none".
	Icons string `koanf:"icons"`

	// PollIntervalMs is how often playback position is polled while
	// shuffle mode is active.
	PollIntervalMs int `koanf:"poll_interval_ms"`
	// PlayConfirmMs is the window after an optimistic play before the
	// player's real state is re-checked.
	PlayConfirmMs int `koanf:"play_confirm_ms"`
}

// Load reads configuration from the XDG config dir and the working
// directory (last wins) and applies defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Performer: "kanata",
		View:      "#/shuffle",
		Icons:     "unicode",
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.APIBase = strings.TrimSuffix(cfg.APIBase, "/")
	if cfg.PollIntervalMs <= 0 {
		cfg.PollIntervalMs = 200
	}
	if cfg.PlayConfirmMs <= 0 {
		cfg.PlayConfirmMs = 300
	}
	return cfg, nil
}

func configPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "utaview", "config.toml"),
		"config.toml",
	}
}

// PollInterval returns the position poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// PlayConfirmWindow returns the play confirmation window as a duration.
func (c *Config) PlayConfirmWindow() time.Duration {
	return time.Duration(c.PlayConfirmMs) * time.Millisecond
}

// HasAPIBase reports whether an archive endpoint is configured.
func (c *Config) HasAPIBase() bool {
	return c.APIBase != ""
}
