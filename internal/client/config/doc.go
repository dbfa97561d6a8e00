// Package config loads runtime configuration for the notekeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml/.yml are YAML, anything else is JSON.
//  3. NOTEKEEPER_* environment variables.
//  4. Command-line flags.
//
// Supported flags
//
//	-a string   backend base URL
//	-t int      request timeout (seconds)
//	-s string   session store: sqlite, redis or memory
//	-d string   sqlite database path
//	-r string   redis URL
//	-l string   log level (debug, info, warn, error)
//
// # File schema
//
//	{
//	  "server_url": "https://api.selfmade.express",
//	  "request_timeout": "15s",
//	  "store_driver": "sqlite",
//	  "store_path": "notekeeper.db",
//	  "redis_url": "redis://127.0.0.1:6379/0",
//	  "log_level": "info"
//	}
package config
