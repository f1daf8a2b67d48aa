package config

import "github.com/carbonwise/carbonwise/internal/logging"

// ToLoggingConfig converts the config section into a logging.Config.
// A configured File switches Output to file; otherwise logs go to stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
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

// GetLoggingConfig returns a copy of the global Logging section. Callers
// apply flag overrides such as --debug to the copy.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
