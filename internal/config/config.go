// Package config handles loading and saving treegen settings.
package config

import (
	"fmt"

	"github.com/Faultbox/arbor/pkg/tree"
)

// Config holds all treegen settings.
type Config struct {
	Tree    TreeConfig    `yaml:"tree" toml:"tree"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// TreeConfig selects the tree to generate. Params start from the named
// preset; any parameter set explicitly in a config file overrides it.
type TreeConfig struct {
	Preset string      `yaml:"preset" toml:"preset"`
	Params tree.Params `yaml:"params" toml:"params"`
}

// OutputConfig holds mesh export settings.
type OutputConfig struct {
	Path       string `yaml:"path" toml:"path"`               // OBJ file to write
	ObjectName string `yaml:"object_name" toml:"object_name"` // OBJ "o" name; defaults to the preset
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config for the default preset.
func Default() *Config {
	preset, err := tree.LookupPreset(tree.DefaultPreset)
	if err != nil {
		panic(err)
	}
	return &Config{
		Tree: TreeConfig{
			Preset: preset.Name,
			Params: preset.Params,
		},
		Output: OutputConfig{
			Path: "tree.obj",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ApplyPreset replaces the tree parameters with the named preset's.
func (c *Config) ApplyPreset(name string) error {
	preset, err := tree.LookupPreset(name)
	if err != nil {
		return err
	}
	c.Tree.Preset = preset.Name
	c.Tree.Params = preset.Params
	return nil
}

// Validate checks the tree parameters.
func (c *Config) Validate() error {
	if err := c.Tree.Params.Validate(); err != nil {
		return fmt.Errorf("tree parameters: %w", err)
	}
	return nil
}

// ObjectName returns the OBJ object name to use.
func (c *Config) ObjectName() string {
	if c.Output.ObjectName != "" {
		return c.Output.ObjectName
	}
	if c.Tree.Preset != "" {
		return c.Tree.Preset
	}
	return "tree"
}
