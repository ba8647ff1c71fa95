package domain

import "path/filepath"

// Config file names, in lookup order.
const (
	ConfigFileName     = "config.toml"
	ConfigYAMLFileName = "config.yaml"
)

// AppDirName is the directory name used under the user config home.
const AppDirName = "gestor-tareas"

// DefaultLogLevel is the log level used when none is configured.
const DefaultLogLevel = "info"

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-" yaml:"-"`
	Log      LogConfig     `toml:"log" yaml:"log"`
	Display  DisplayConfig `toml:"display" yaml:"display"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty" yaml:"level,omitempty"` // Log level: debug, info, warn, error
	File  string `toml:"file,omitempty" yaml:"file,omitempty"`   // Log file path (empty = logging disabled)
}

// DisplayConfig holds output settings from [display] section.
type DisplayConfig struct {
	Color bool `toml:"color,omitempty" yaml:"color,omitempty"` // Color status labels on a terminal
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ValidLogLevel reports whether level is one of the supported log levels.
func ValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// GlobalConfigDir returns the config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}
