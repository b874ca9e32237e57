package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// config holds pooldump settings, loadable from a TOML file.
type config struct {
	Permissive bool   `toml:"permissive"`
	LogLevel   string `toml:"log_level"`
}

func defaultConfig() config {
	return config{
		Permissive: false,
		LogLevel:   "info",
	}
}

// loadConfig overlays settings from a TOML file onto the defaults. Keys that
// are absent from the file keep their default.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load pooldump config: %w", err)
	}
	if meta.IsDefined("permissive") {
		cfg.Permissive = raw.Permissive
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}
	return cfg, nil
}
