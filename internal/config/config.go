// Package config loads and validates rinkctl configuration. Settings are
// resolved in order: built-in defaults, then ~/.rinkctl/config.yaml (or
// $RINKCTL_HOME/config.yaml), then RINKCTL_* environment overrides.
package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/breakaway-dev/rinkctl/internal/logging"
)

// Defaults applied before the config file and environment are consulted.
const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultTimeoutSeconds = 15
	DefaultOutputFormat   = "table"
	DefaultPageSize       = 25
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
)

// Environment variables recognized as overrides.
const (
	EnvHome      = "RINKCTL_HOME"
	EnvAPIURL    = "RINKCTL_API_URL"
	EnvAPIToken  = "RINKCTL_API_TOKEN"
	EnvLogLevel  = "RINKCTL_LOG_LEVEL"
	EnvLogFormat = "RINKCTL_LOG_FORMAT"
	EnvPageSize  = "RINKCTL_PAGE_SIZE"
)

// APIConfig describes the league backend connection.
type APIConfig struct {
	// BaseURL is the backend root, e.g. https://league.example.com.
	BaseURL string `yaml:"base_url"`

	// Token, when set, is sent as a bearer token on every request.
	Token string `yaml:"token,omitempty"`

	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// OutputConfig holds list rendering defaults.
type OutputConfig struct {
	// DefaultFormat is table or json.
	DefaultFormat string `yaml:"default_format"`

	// PageSize is the default rows-per-page for list views.
	PageSize int `yaml:"page_size"`
}

// AuditConfig controls the audit trail.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file,omitempty"`
}

// LoggingConfig holds the logging section.
type LoggingConfig struct {
	// Level is a zerolog level name.
	Level string `yaml:"level"`

	// Format is console or json.
	Format string `yaml:"format"`

	// File, when set, receives log output instead of stderr.
	File string `yaml:"file,omitempty"`

	Audit AuditConfig `yaml:"audit"`
}

// ToLoggingConfig bridges the configuration section to the logging package.
// A configured file switches output to "file"; otherwise stderr is used.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// Config is the full rinkctl configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// Defaults returns a Config populated with built-in defaults.
func Defaults() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
			PageSize:      DefaultPageSize,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// New loads the configuration without a caller context. Load problems are
// logged and the defaults are kept; a broken config file must not prevent
// startup.
func New() *Config {
	return NewWithContext(context.Background())
}

// NewWithContext loads defaults, overlays the config file if present, and
// applies environment overrides. File read or parse failures keep the
// defaults and log a warning through the context logger.
func NewWithContext(ctx context.Context) *Config {
	cfg := Defaults()

	path, err := ConfigFilePath()
	if err == nil {
		if loadErr := loadFile(cfg, path); loadErr != nil {
			logging.FromContext(ctx).Warn().
				Str("component", "config").
				Str("config_path", path).
				Err(loadErr).
				Msg("failed to load config file, using defaults")
			cfg = Defaults()
		}
	}

	applyEnvOverrides(cfg)
	return cfg
}

// loadFile overlays the YAML file at path onto cfg. A missing file is not an
// error; absent keys keep their current values.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(EnvAPIToken); v != "" {
		cfg.API.Token = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Output.PageSize = n
		}
	}
}

// Validate checks the configuration for values that would break commands at
// runtime. It returns the first problem found.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not a valid URL", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive, got %d", c.API.TimeoutSeconds)
	}
	if c.Output.DefaultFormat != "table" && c.Output.DefaultFormat != "json" {
		return fmt.Errorf("output.default_format must be table or json, got %q", c.Output.DefaultFormat)
	}
	if c.Output.PageSize < 1 {
		return fmt.Errorf("output.page_size must be at least 1, got %d", c.Output.PageSize)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	if c.Logging.Format != logging.FormatConsole && c.Logging.Format != logging.FormatJSON {
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

// Save writes the configuration as YAML to the standard config file path,
// creating the config directory if needed.
func (c *Config) Save() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	path, err := ConfigFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
