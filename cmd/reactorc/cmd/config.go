package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// runConfig selects which built-in overload sets the run subcommand
// registers; a single YAML file is the only config source the driver
// needs.
type runConfig struct {
	DisabledBuiltins []string `yaml:"disabled_builtins"`
}

func (c *runConfig) disabledSet() map[string]bool {
	if c == nil {
		return nil
	}
	disabled := make(map[string]bool, len(c.DisabledBuiltins))
	for _, name := range c.DisabledBuiltins {
		disabled[name] = true
	}
	return disabled
}

func loadConfig(path string) (*runConfig, error) {
	if path == "" {
		return &runConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg runConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
