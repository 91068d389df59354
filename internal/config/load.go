package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	if err := applyFlags(cfg); err != nil {
		return nil, fmt.Errorf("applying flags: %w", err)
	}

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	var candidates []string
	for _, dir := range []string{".", ConfigDir()} {
		for _, name := range []string{"arbor.yaml", "arbor.yml", "arbor.toml"} {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Arbor")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Arbor")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "arbor")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "arbor")
	}
}

// loadFromFile merges a config file into cfg. A preset named in the file is
// applied first, so explicit parameters in the same file override it.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	unmarshal, err := unmarshalerFor(path)
	if err != nil {
		return err
	}

	preset := cfg.Tree.Preset
	if err := unmarshal(data, cfg); err != nil {
		return err
	}
	if cfg.Tree.Preset == preset {
		return nil
	}

	if err := cfg.ApplyPreset(cfg.Tree.Preset); err != nil {
		return err
	}
	return unmarshal(data, cfg)
}

func unmarshalerFor(path string) (func([]byte, any) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal, nil
	case ".toml":
		return toml.Unmarshal, nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
}
