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

type fileConfig struct {
	Addr                string         `json:"addr" yaml:"addr"`
	SecretKey           string         `json:"secret_key" yaml:"secret_key"`
	AccessTokenTTL      timex.Duration `json:"access_token_ttl" yaml:"access_token_ttl"`
	RefreshTokenTTL     timex.Duration `json:"refresh_token_ttl" yaml:"refresh_token_ttl"`
	RequireVerification *bool          `json:"require_verification" yaml:"require_verification"`
	LogLevel            string         `json:"log_level" yaml:"log_level"`
}

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

	if fc.Addr != "" {
		cfg.Addr = fc.Addr
	}
	if fc.SecretKey != "" {
		cfg.SecretKey = fc.SecretKey
	}
	if fc.AccessTokenTTL.Duration != 0 {
		cfg.AccessTokenValidityDuration = fc.AccessTokenTTL.Duration
	}
	if fc.RefreshTokenTTL.Duration != 0 {
		cfg.RefreshTokenValidityDuration = fc.RefreshTokenTTL.Duration
	}
	if fc.RequireVerification != nil {
		cfg.RequireVerification = *fc.RequireVerification
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	return nil
}
