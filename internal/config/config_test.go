package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempHome points RINKCTL_HOME at a fresh directory and resets the
// global config so tests never touch the real user configuration.
func useTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)
	return dir
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.API.TimeoutSeconds)
	assert.Empty(t, cfg.API.Token)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.DefaultFormat)
	assert.Equal(t, DefaultPageSize, cfg.Output.PageSize)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.False(t, cfg.Logging.Audit.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestNew_FileOverlay(t *testing.T) {
	dir := useTempHome(t)

	content := `api:
  base_url: https://league.example.com
  token: sekrit
output:
  page_size: 10
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))

	cfg := New()

	assert.Equal(t, "https://league.example.com", cfg.API.BaseURL)
	assert.Equal(t, "sekrit", cfg.API.Token)
	assert.Equal(t, 10, cfg.Output.PageSize)
	// Keys absent from the file keep defaults.
	assert.Equal(t, DefaultTimeoutSeconds, cfg.API.TimeoutSeconds)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.DefaultFormat)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestNew_MalformedFileKeepsDefaults(t *testing.T) {
	dir := useTempHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api: [not a map"), 0600))

	cfg := New()

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultPageSize, cfg.Output.PageSize)
}

func TestNew_EnvOverrides(t *testing.T) {
	useTempHome(t)
	t.Setenv(EnvAPIURL, "https://env.example.com")
	t.Setenv(EnvAPIToken, "env-token")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvPageSize, "7")

	cfg := New()

	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
	assert.Equal(t, "env-token", cfg.API.Token)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 7, cfg.Output.PageSize)
}

func TestNew_EnvOverridesBeatFile(t *testing.T) {
	dir := useTempHome(t)
	content := "api:\n  base_url: https://file.example.com\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))
	t.Setenv(EnvAPIURL, "https://env.example.com")

	cfg := New()
	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(_ *Config) {},
		},
		{
			name:    "empty base url",
			mutate:  func(c *Config) { c.API.BaseURL = "" },
			wantErr: "base_url",
		},
		{
			name:    "relative base url",
			mutate:  func(c *Config) { c.API.BaseURL = "league.example.com" },
			wantErr: "not a valid URL",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.API.TimeoutSeconds = 0 },
			wantErr: "timeout_seconds",
		},
		{
			name:    "bad output format",
			mutate:  func(c *Config) { c.Output.DefaultFormat = "xml" },
			wantErr: "default_format",
		},
		{
			name:    "zero page size",
			mutate:  func(c *Config) { c.Output.PageSize = 0 },
			wantErr: "page_size",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "shout" },
			wantErr: "logging.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	useTempHome(t)

	cfg := Defaults()
	cfg.API.BaseURL = "https://saved.example.com"
	cfg.Output.PageSize = 50
	require.NoError(t, cfg.Save())

	reloaded := New()
	assert.Equal(t, "https://saved.example.com", reloaded.API.BaseURL)
	assert.Equal(t, 50, reloaded.Output.PageSize)
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json"}
	bridged := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", bridged.Output)

	lc.File = "/tmp/rinkctl.log"
	bridged = lc.ToLoggingConfig()
	assert.Equal(t, "file", bridged.Output)
	assert.Equal(t, "/tmp/rinkctl.log", bridged.File)
}

func TestGetConfigDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvHome, "/custom/home")
		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/custom/home", dir)
	})

	t.Run("defaults under user home", func(t *testing.T) {
		t.Setenv(EnvHome, "")
		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, ".rinkctl", filepath.Base(dir))
	})
}

func TestGlobalConfig(t *testing.T) {
	useTempHome(t)

	first := GetGlobalConfig()
	require.NotNil(t, first)
	// Repeated access returns the same instance.
	assert.Same(t, first, GetGlobalConfig())

	assert.Equal(t, first.Output.DefaultFormat, GetDefaultOutputFormat())
	assert.Equal(t, first.Output.PageSize, GetDefaultPageSize())
}

func TestEnsureDirs(t *testing.T) {
	dir := useTempHome(t)

	require.NoError(t, EnsureConfigDir())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// EnsureLogDir is a no-op without a configured log file.
	require.NoError(t, EnsureLogDir())

	GetGlobalConfig().Logging.File = filepath.Join(dir, "logs", "rinkctl.log")
	require.NoError(t, EnsureLogDir())
	info, err = os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
