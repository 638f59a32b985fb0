package main

import (
	"fmt"

	"github.com/bigspawn/kodi-bingebase-sync/internal/config"
)

// Config is the application configuration.
type Config = config.Config

// loadConfigFromFile loads and validates the configuration at path.
func loadConfigFromFile(path string) (Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
