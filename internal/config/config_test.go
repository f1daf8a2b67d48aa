package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")
	t.Cleanup(ResetGlobalConfigForTest)
	return dir
}

func TestNew_Defaults(t *testing.T) {
	dir := isolateHome(t)

	cfg := New()

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, FormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigPath())
}

func TestNew_Precedence(t *testing.T) {
	dir := isolateHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("api:\n  base_url: http://from-file:8000\nlogging:\n  level: warn\n"), 0o600))

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg := New()
		assert.Equal(t, "http://from-file:8000", cfg.API.BaseURL)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv(EnvAPIURL, "http://from-env:8000")
		t.Setenv(EnvLogLevel, "error")
		cfg := New()
		assert.Equal(t, "http://from-env:8000", cfg.API.BaseURL)
		assert.Equal(t, "error", cfg.Logging.Level)
	})
}

func TestNew_BrokenFileKeepsDefaults(t *testing.T) {
	dir := isolateHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api: [oops\n"), 0o600))

	cfg := New()
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	require.Error(t, cfg.LoadError())
	assert.Contains(t, cfg.LoadError().Error(), "config.yaml")
}

func TestNew_PartiallyInvalidFileIsIgnoredWhole(t *testing.T) {
	dir := isolateHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("api:\n  base_url: http://partial:8000\nlogging:\n  level: [1, 2]\n"), 0o600))

	cfg := New()
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.Error(t, cfg.LoadError())
}

func TestNew_ValidFileHasNoLoadError(t *testing.T) {
	dir := isolateHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("output:\n  default_format: json\n"), 0o600))

	cfg := New()
	assert.NoError(t, cfg.LoadError())
	assert.Equal(t, FormatJSON, cfg.Output.DefaultFormat)
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	isolateHome(t)

	cfg := New()
	cfg.API.BaseURL = "http://saved:1234"
	require.NoError(t, cfg.Save())

	reloaded := New()
	assert.Equal(t, "http://saved:1234", reloaded.API.BaseURL)
}

func TestConfig_Get(t *testing.T) {
	isolateHome(t)
	cfg := New()

	v, err := cfg.Get("api.base_url")
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, v)

	_, err = cfg.Get("api.nope")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestGlobalAccessors(t *testing.T) {
	isolateHome(t)
	t.Setenv(EnvAPIURL, "http://global:8000")

	assert.Equal(t, "http://global:8000", GetAPIBaseURL())
	assert.Equal(t, "json", GetOutputFormat("json"))
	assert.Equal(t, FormatTable, GetOutputFormat(""))
}

func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "console"}
	out := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", out.Output)

	lc.File = "/tmp/x.log"
	out = lc.ToLoggingConfig()
	assert.Equal(t, "file", out.Output)
	assert.Equal(t, "/tmp/x.log", out.File)
}
