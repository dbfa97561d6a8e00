// Package config handles configuration for the development backend:
// defaults, an optional JSON/YAML file, then command-line flags.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/flagx"
)

// Config holds runtime settings for the development backend.
//
// SecretKey signs access tokens (HS256). The default is for local use only.
type Config struct {
	Addr                         string
	SecretKey                    string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	RequireVerification          bool
	LogLevel                     string
}

func (c *Config) LoadDefaults() {
	c.Addr = "127.0.0.1:8080"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 1 * time.Minute
	c.RefreshTokenValidityDuration = 24 * time.Hour
	c.RequireVerification = false
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, the file given with -c/-config
// and the command-line flags, in that order.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigFileFlag(); path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("config: secret key is empty")
	}
	if c.AccessTokenValidityDuration <= 0 || c.RefreshTokenValidityDuration <= 0 {
		return fmt.Errorf("config: token lifetimes must be positive")
	}
	return nil
}
