package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
//	-a string   listen address
//	-s string   JWT HMAC secret key
//	-t int      access token validity (seconds)
//	-r int      refresh token validity (minutes)
//	-v bool     require a verified e-mail before login
//	-l string   log level
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-r", "-v", "-l"})

	fs := flag.NewFlagSet("devserver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "listen address")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	access := fs.Int("t", int(cfg.AccessTokenValidityDuration.Seconds()), "access token validity (in seconds)")
	refresh := fs.Int("r", int(cfg.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")
	fs.BoolVar(&cfg.RequireVerification, "v", cfg.RequireVerification, "require verified e-mail for login")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("config: flags: %w", err)
	}

	cfg.AccessTokenValidityDuration = time.Duration(*access) * time.Second
	cfg.RefreshTokenValidityDuration = time.Duration(*refresh) * time.Minute
	return nil
}
