package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the user and local directories.
const FileName = "litetux.yaml"

// Load loads the configuration and validates it.
// Search order: customPath -> ~/.litetux/config.yaml -> ./configs/litetux.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parse(data, path)
		if err != nil {
			log.Warn("ignoring config", "path", path, "err", err)
			continue
		}
		log.Debug("loaded config", "path", path)
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML, "embedded defaults")
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse reads a configuration document on top of the defaults.
func Parse(data []byte) (Config, error) {
	return parse(data, "config")
}

func parse(data []byte, source string) (Config, error) {
	cfg := Default()
	// A document that lists fitness metrics replaces the default set.
	cfg.Fitness.Metrics = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if cfg.Fitness.Metrics == nil {
		cfg.Fitness.Metrics = Default().Fitness.Metrics
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".litetux", filename)
}
