// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/gestor-tareas/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file, or a YAML file when no TOML
// file exists.
type Loader struct {
	confDir string // Path to the config directory (e.g., ~/.config/gestor-tareas)
}

// NewLoader creates a new Loader reading from the default config directory.
func NewLoader() *Loader {
	return &Loader{
		confDir: defaultConfigDir(),
	}
}

// NewLoaderWithDir creates a new Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(confDir string) *Loader {
	return &Loader{
		confDir: confDir,
	}
}

// defaultConfigDir returns the default config directory.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the configuration merged over the defaults.
// A missing config file is not an error.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	if l.confDir == "" {
		return base, nil
	}

	raw, path, err := l.readRaw()
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return nil, err
	}

	override := convertRawToDomainConfig(raw)
	cfg := mergeConfigs(base, override)

	if cfg.Log.File != "" && !filepath.IsAbs(cfg.Log.File) {
		cfg.Log.File = filepath.Join(filepath.Dir(path), cfg.Log.File)
	}
	return cfg, nil
}

// readRaw reads the first config file that exists and decodes it into a generic map.
// Returns os.ErrNotExist if neither file exists.
func (l *Loader) readRaw() (map[string]any, string, error) {
	tomlPath := filepath.Join(l.confDir, domain.ConfigFileName)
	data, err := os.ReadFile(tomlPath)
	if err == nil {
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, "", fmt.Errorf("parse %s: %w", tomlPath, err)
		}
		return raw, tomlPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, "", fmt.Errorf("read %s: %w", tomlPath, err)
	}

	yamlPath := filepath.Join(l.confDir, domain.ConfigYAMLFileName)
	data, err = os.ReadFile(yamlPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("read %s: %w", yamlPath, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, "", fmt.Errorf("parse %s: %w", yamlPath, err)
	}
	return raw, yamlPath, nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							if domain.ValidLogLevel(s) {
								res.Log.Level = s
							} else {
								warnings = append(warnings, fmt.Sprintf("invalid log level %q, using %q", s, domain.DefaultLogLevel))
							}
						}
					case "file":
						if s, ok := v.(string); ok {
							res.Log.File = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		case "display":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "color":
						if b, ok := v.(bool); ok {
							res.Display.Color = b
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [display]: %s", k))
					}
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs returns base with every field set in override applied on top.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Log:      base.Log,
		Display:  base.Display,
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}
	if override.Display.Color {
		result.Display.Color = true
	}

	return result
}
