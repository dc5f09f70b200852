// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
// Pointer fields distinguish unset keys from zero values.
type FileConfig struct {
	Game     GameConfig     `toml:"game"`
	Feedback FeedbackConfig `toml:"feedback"`
	Hint     HintConfig     `toml:"hint"`
	Server   ServerConfig   `toml:"server"`
}

// GameConfig maps play settings.
type GameConfig struct {
	Name        *string `toml:"name"`
	Levels      []int   `toml:"levels"`
	Level       *int    `toml:"level"`
	Leaderboard *int    `toml:"leaderboard"`
}

// FeedbackConfig maps the Hot/Warm cut points as fractions of the level.
type FeedbackConfig struct {
	Hot  *float64 `toml:"hot"`
	Warm *float64 `toml:"warm"`
}

// HintConfig maps hint cut points as diff/level ratios.
type HintConfig struct {
	VeryClose     *float64 `toml:"very-close"`
	Close         *float64 `toml:"close"`
	SomewhatClose *float64 `toml:"somewhat-close"`
}

// ServerConfig maps HTTP server settings.
type ServerConfig struct {
	Addr         *string `toml:"addr"`
	SessionTTL   *string `toml:"session-ttl"`
	ClientOrigin *string `toml:"client-origin"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
