// Package config loads dibble's configuration from a YAML file and
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The file path is taken from DIBBLE_CONFIG when set (an error if the
// file is missing); otherwise <config home>/dibble/config.yaml is used
// when it exists, else configuration comes from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("DIBBLE_CONFIG")
	explicitPath := path != ""
	if !explicitPath {
		path = filepath.Join(xdg.ConfigHome, "dibble", "config.yaml")
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
