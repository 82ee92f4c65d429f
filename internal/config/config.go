// Package config resolves settings from defaults, an optional config file,
// TODO_* environment variables and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/ui"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// EnvPrefix prefixes every environment override (TODO_ENDPOINT, ...).
	EnvPrefix = "TODO"

	// FileName is the config file looked up in the config dir.
	FileName = "config.yaml"
)

// Load error policies for the initial fetch.
const (
	OnLoadErrorShow   = "show"
	OnLoadErrorIgnore = "ignore"
)

// Config holds every tunable of the CLI.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `mapstructure:"-"`

	Endpoint    string        `mapstructure:"endpoint"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Retries     int           `mapstructure:"retries"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"`
	OnLoadError string        `mapstructure:"on_load_error"`

	Theme     string `mapstructure:"theme"`
	LogFile   string `mapstructure:"log_file"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	Addr     string `mapstructure:"addr"`
	SeedFile string `mapstructure:"seed_file"`
}

// Overrides are values set explicitly on the command line. Empty fields are
// left to the lower layers.
type Overrides map[string]string

// Load builds a Config. file may be empty, in which case config.yaml in the
// config directory is used when present.
func Load(file string, overrides Overrides) (*Config, error) {
	dir := DefaultConfigDir()

	v := viper.New()
	setDefaults(v, dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigFile(filepath.Join(dir, FileName))
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for k, val := range overrides {
		if val != "" {
			v.Set(k, val)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Dir = dir
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("endpoint", "http://localhost:8080/todos")
	v.SetDefault("timeout", 5*time.Second)
	v.SetDefault("retries", 0)
	v.SetDefault("retry_delay", 500*time.Millisecond)
	v.SetDefault("on_load_error", OnLoadErrorShow)
	v.SetDefault("theme", "classic")
	v.SetDefault("log_file", filepath.Join(dir, "todo.log"))
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("addr", "localhost:8080")
	v.SetDefault("seed_file", "")
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, os.ErrNotExist)
}

// Validate rejects settings the CLI cannot act on.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: want an http(s) URL", c.Endpoint)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", c.Retries)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must not be negative, got %s", c.RetryDelay)
	}
	switch c.OnLoadError {
	case OnLoadErrorShow, OnLoadErrorIgnore:
	default:
		return fmt.Errorf("on_load_error must be %q or %q, got %q", OnLoadErrorShow, OnLoadErrorIgnore, c.OnLoadError)
	}
	if !slices.Contains(ui.Themes, strings.ToLower(strings.TrimSpace(c.Theme))) {
		return fmt.Errorf("theme must be one of %s, got %q", strings.Join(ui.Themes, ", "), c.Theme)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// Level returns the parsed log level. Validate guarantees it parses.
func (c *Config) Level() logging.Level {
	l, _ := logging.ParseLevel(c.LogLevel)
	return l
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}
