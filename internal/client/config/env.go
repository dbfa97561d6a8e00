package config

import (
	"fmt"
	"strconv"
	"time"
)

const (
	EnvServerURL      = "NOTEKEEPER_SERVER_URL"
	EnvRequestTimeout = "NOTEKEEPER_REQUEST_TIMEOUT"
	EnvStore          = "NOTEKEEPER_STORE"
	EnvStorePath      = "NOTEKEEPER_STORE_PATH"
	EnvRedisURL       = "NOTEKEEPER_REDIS_URL"
	EnvLogLevel       = "NOTEKEEPER_LOG_LEVEL"
)

// parseEnv overlays cfg with the NOTEKEEPER_* variables that are set and
// non-empty. The timeout takes a duration ("20s") or whole seconds ("20").
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}

	if v, ok := get(EnvServerURL); ok {
		cfg.ServerURL = v
	}
	if v, ok := get(EnvStore); ok {
		cfg.StoreDriver = v
	}
	if v, ok := get(EnvStorePath); ok {
		cfg.StorePath = v
	}
	if v, ok := get(EnvRedisURL); ok {
		cfg.RedisURL = v
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := get(EnvRequestTimeout); ok {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}

func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}
