package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags below are
// looked at; anything else in args is ignored.
//
//	-a string   backend base URL
//	-t int      request timeout (seconds)
//	-s string   session store: sqlite, redis or memory
//	-d string   sqlite database path
//	-r string   redis URL
//	-l string   log level
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-s", "-d", "-r", "-l"})

	fs := flag.NewFlagSet("notekeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StoreDriver, "s", cfg.StoreDriver, "session store: sqlite, redis or memory")
	fs.StringVar(&cfg.StorePath, "d", cfg.StorePath, "sqlite database path")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "redis URL")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("config: flags: %w", err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
