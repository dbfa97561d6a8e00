package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	want := &Config{
		ServerURL:      "https://api.selfmade.express",
		RequestTimeout: 15 * time.Second,
		StoreDriver:    "sqlite",
		StorePath:      "notekeeper.db",
		RedisURL:       "redis://127.0.0.1:6379/0",
		LogLevel:       "info",
	}
	assert.Empty(t, cmp.Diff(want, defaults()))
	assert.NoError(t, defaults().Validate())
}

func TestParseFile_JSON(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"server_url":"http://localhost:8080","request_timeout":"3s","store_driver":"memory"}`)

	cfg := defaults()
	require.NoError(t, parseFile(cfg, path))

	want := defaults()
	want.ServerURL = "http://localhost:8080"
	want.RequestTimeout = 3 * time.Second
	want.StoreDriver = "memory"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseFile_YAML(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "server_url: http://dev:9000\nrequest_timeout: 2m\nstore_driver: redis\nredis_url: redis://cache:6379/1\nlog_level: debug\n")

	cfg := defaults()
	require.NoError(t, parseFile(cfg, path))

	assert.Equal(t, "http://dev:9000", cfg.ServerURL)
	assert.Equal(t, 2*time.Minute, cfg.RequestTimeout)
	assert.Equal(t, "redis", cfg.StoreDriver)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "notekeeper.db", cfg.StorePath)
}

func TestParseFile_NanosecondTimeout(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"request_timeout": 5000000000}`)

	cfg := defaults()
	require.NoError(t, parseFile(cfg, path))
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestParseFile_Errors(t *testing.T) {
	cfg := defaults()

	assert.Error(t, parseFile(cfg, filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, parseFile(cfg, writeFile(t, "bad.json", `{"server_url":`)))
	assert.Error(t, parseFile(cfg, writeFile(t, "bad.yml", "request_timeout: soon\n")))

	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseEnv(t *testing.T) {
	cfg := defaults()
	err := parseEnv(cfg, envMap(map[string]string{
		EnvServerURL:      "http://env:1",
		EnvRequestTimeout: "20",
		EnvStore:          "redis",
		EnvStorePath:      "",
		EnvLogLevel:       "warn",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://env:1", cfg.ServerURL)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "redis", cfg.StoreDriver)
	assert.Equal(t, "notekeeper.db", cfg.StorePath, "empty variables are ignored")
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseEnv_Timeout(t *testing.T) {
	cfg := defaults()
	require.NoError(t, parseEnv(cfg, envMap(map[string]string{EnvRequestTimeout: "1m"})))
	assert.Equal(t, time.Minute, cfg.RequestTimeout)

	assert.Error(t, parseEnv(cfg, envMap(map[string]string{EnvRequestTimeout: "later"})))
}

func TestParseEnv_NothingSet(t *testing.T) {
	cfg := defaults()
	require.NoError(t, parseEnv(cfg, noEnv))
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(*Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:8080", "-t", "10", "-s", "memory", "-d", "/tmp/nk.db", "-r", "redis://r:1/0", "-l", "debug"},
			want: func(c *Config) {
				c.ServerURL = "http://127.0.0.1:8080"
				c.RequestTimeout = 10 * time.Second
				c.StoreDriver = "memory"
				c.StorePath = "/tmp/nk.db"
				c.RedisURL = "redis://r:1/0"
				c.LogLevel = "debug"
			},
		},
		{
			name: "unknown flags are skipped",
			args: []string{"-config", "x.json", "-a=http://h", "--verbose"},
			want: func(c *Config) { c.ServerURL = "http://h" },
		},
		{name: "no flags", args: nil, want: func(*Config) {}},
		{name: "bad timeout", args: []string{"-t", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.want(want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeFile(t, "cfg.json", `{"server_url":"http://file","store_driver":"memory","log_level":"error"}`)
	t.Setenv(EnvServerURL, "http://env")
	t.Setenv(EnvLogLevel, "warn")
	os.Args = []string{"notekeeper", "-c", path, "-l", "debug"}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://env", cfg.ServerURL)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"notekeeper", "-s", "etcd"}
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "unknown store driver")

	os.Args = []string{"notekeeper", "-t", "0"}
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "request timeout")
}
