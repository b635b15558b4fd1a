// Package config holds server settings loaded from an optional YAML file,
// with flags overriding file values at startup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr        string `yaml:"addr"`
	PersistPath string `yaml:"persistPath"`
	LogLevel    string `yaml:"logLevel"`
	Solver      string `yaml:"solver"`      // backtrack|dlx
	BlockWidth  int    `yaml:"blockWidth"`  // default board geometry
	BlockHeight int    `yaml:"blockHeight"`
}

// Default returns the settings used when no file and no flags are given.
func Default() Config {
	return Config{
		Addr:        ":8080",
		PersistPath: "./data",
		LogLevel:    "info",
		Solver:      "dlx",
		BlockWidth:  3,
		BlockHeight: 3,
	}
}

// Load reads path over the defaults. A missing file is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.BlockWidth <= 0 || cfg.BlockHeight <= 0 {
		return cfg, fmt.Errorf("config %s: block dimensions must be positive", path)
	}
	return cfg, nil
}
