package config

import "sync"

var (
	globalConfig   *Config      //nolint:gochecknoglobals // Singleton for the CLI invocation
	globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects globalConfig
)

// GetGlobalConfig returns the process-wide configuration, loading it on first use.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}

// ResetGlobalConfigForTest drops the cached global configuration.
func ResetGlobalConfigForTest() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
}

// GetAPIBaseURL returns the configured ranking service address.
func GetAPIBaseURL() string {
	return GetGlobalConfig().API.BaseURL
}

// GetOutputFormat returns flagValue when set, otherwise the configured default.
func GetOutputFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if f := GetGlobalConfig().Output.DefaultFormat; f != "" {
		return f
	}
	return FormatTable
}
