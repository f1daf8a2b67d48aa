package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultAPIBaseURL is the ranking service address used when nothing else is configured.
const DefaultAPIBaseURL = "http://localhost:8000"

// Environment variables recognised by the config layer.
const (
	EnvHome      = "CARBONWISE_HOME"
	EnvAPIURL    = "CARBONWISE_API_URL"
	EnvLogLevel  = "CARBONWISE_LOG_LEVEL"
	EnvLogFormat = "CARBONWISE_LOG_FORMAT"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const configFileName = "config.yaml"

// ErrUnknownKey is returned by Get for a key that has no config field.
var ErrUnknownKey = errors.New("unknown configuration key")

// APIConfig points the client at the ranking service.
type APIConfig struct {
	BaseURL string `yaml:"base_url" json:"base_url"`
}

// OutputConfig controls non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Config is the full carbonwise configuration.
type Config struct {
	API     APIConfig     `yaml:"api"     json:"api"`
	Output  OutputConfig  `yaml:"output"  json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	configPath string
	loadErr    error
}

// Default returns a Config populated with built-in defaults only.
func Default() *Config {
	cfg := &Config{
		API:    APIConfig{BaseURL: DefaultAPIBaseURL},
		Output: OutputConfig{DefaultFormat: FormatTable},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
		cfg.Logging.File = filepath.Join(dir, "logs", "carbonwise.log")
	}
	return cfg
}

// New returns the effective configuration: defaults, then the config file
// (if present), then environment overrides. A config file that cannot be
// applied is ignored as a whole and reported by LoadError.
func New() *Config {
	cfg := Default()
	if cfg.configPath != "" {
		if _, err := os.Stat(cfg.configPath); err == nil {
			merged := *cfg
			if err = ShallowMergeYAML(&merged, cfg.configPath); err != nil {
				cfg.loadErr = fmt.Errorf("ignoring config file %s: %w", cfg.configPath, err)
			} else {
				cfg = &merged
			}
		}
	}
	cfg.applyEnv()
	return cfg
}

// LoadError returns why the config file was ignored, or nil.
func (c *Config) LoadError() error { return c.loadErr }

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

// ConfigPath returns the file the config is loaded from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath overrides the config file location.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the config as YAML to ConfigPath.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Get returns the value of a dotted key such as "api.base_url".
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api.base_url":
		return c.API.BaseURL, nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// GetConfigDir returns the carbonwise configuration directory.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".carbonwise"), nil
}
