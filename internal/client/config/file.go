package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk form. Durations go through timex.Duration so a
// file may say "15s" or give integer nanoseconds.
type fileConfig struct {
	ServerURL      string         `json:"server_url" yaml:"server_url"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	StoreDriver    string         `json:"store_driver" yaml:"store_driver"`
	StorePath      string         `json:"store_path" yaml:"store_path"`
	RedisURL       string         `json:"redis_url" yaml:"redis_url"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the keys present in the file at path. Files
// ending in .yaml or .yml are read as YAML, everything else as JSON.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	setString(&cfg.ServerURL, fc.ServerURL)
	setString(&cfg.StoreDriver, fc.StoreDriver)
	setString(&cfg.StorePath, fc.StorePath)
	setString(&cfg.RedisURL, fc.RedisURL)
	setString(&cfg.LogLevel, fc.LogLevel)
	if fc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
