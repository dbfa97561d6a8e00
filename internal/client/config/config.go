package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/flagx"
)

// Config holds runtime settings for the notekeeper CLI.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	StoreDriver    string
	StorePath      string
	RedisURL       string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "https://api.selfmade.express"
	c.RequestTimeout = 15 * time.Second
	c.StoreDriver = "sqlite"
	c.StorePath = "notekeeper.db"
	c.RedisURL = "redis://127.0.0.1:6379/0"
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the config file named by -c/-config,
// then NOTEKEEPER_* environment variables, then command-line flags. Later
// sources take precedence.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigFileFlag(); path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := parseEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the client cannot start with.
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("config: server url is empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: request timeout must be positive, got %s", c.RequestTimeout)
	}
	switch c.StoreDriver {
	case "sqlite", "redis", "memory":
	default:
		return fmt.Errorf("config: unknown store driver %q", c.StoreDriver)
	}
	return nil
}
