package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/logging"
)

func isolate(t *testing.T) string {
	t.Helper()
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	for _, k := range []string{"ENDPOINT", "TIMEOUT", "RETRIES", "RETRY_DELAY", "ON_LOAD_ERROR", "THEME", "LOG_FILE", "LOG_LEVEL", "LOG_FORMAT", "ADDR", "SEED_FILE"} {
		t.Setenv(EnvPrefix+"_"+k, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+"_"+k))
	}
	return filepath.Join(xdg, AppName)
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("", nil)

	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, "http://localhost:8080/todos", cfg.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 0, cfg.Retries)
	assert.Equal(t, OnLoadErrorShow, cfg.OnLoadError)
	assert.Equal(t, filepath.Join(dir, "todo.log"), cfg.LogFile)
	assert.Equal(t, logging.LevelInfo, cfg.Level())
}

func TestLoad_FileThenEnvThenOverrides(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(
		"endpoint: http://example.test/api/todos\n"+
			"timeout: 2s\n"+
			"retries: 1\n"+
			"theme: neon\n"), 0o600))
	t.Setenv("TODO_RETRIES", "4")
	t.Setenv("TODO_ON_LOAD_ERROR", "ignore")

	cfg, err := Load("", Overrides{"theme": "mono", "addr": ""})

	require.NoError(t, err)
	assert.Equal(t, "http://example.test/api/todos", cfg.Endpoint)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, 4, cfg.Retries)
	assert.Equal(t, OnLoadErrorIgnore, cfg.OnLoadError)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "localhost:8080", cfg.Addr, "empty overrides leave lower layers alone")
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Endpoint:    "http://localhost:8080/todos",
			Timeout:     time.Second,
			OnLoadError: OnLoadErrorShow,
			Theme:       "classic",
			LogLevel:    "info",
			LogFormat:   "text",
		}
	}
	require.NoError(t, base().Validate())

	upper := base()
	upper.Theme = " NEON "
	require.NoError(t, upper.Validate(), "theme names are case-insensitive")

	tests := map[string]func(c *Config){
		"endpoint scheme": func(c *Config) { c.Endpoint = "ftp://x/todos" },
		"endpoint host":   func(c *Config) { c.Endpoint = "http:///todos" },
		"timeout":         func(c *Config) { c.Timeout = 0 },
		"retries":         func(c *Config) { c.Retries = -1 },
		"retry delay":     func(c *Config) { c.RetryDelay = -time.Second },
		"policy":          func(c *Config) { c.OnLoadError = "retry" },
		"theme":           func(c *Config) { c.Theme = "sepia" },
		"log level":       func(c *Config) { c.LogLevel = "loud" },
		"log format":      func(c *Config) { c.LogFormat = "xml" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := base()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
