package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Data that is easier to manage in YAML than env vars.
type YAMLConfig struct {
	// POSTable overrides the category → JMdict code table. An empty code
	// removes a category from the table.
	POSTable map[string]string `yaml:"pos_table"`

	// DevSeed controls whether fixture entries are inserted in development.
	DevSeed *bool `yaml:"dev_seed"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// POSOverrides returns the configured table overrides, or nil.
func (c *YAMLConfig) POSOverrides() map[string]string {
	if c == nil {
		return nil
	}
	return c.POSTable
}

// ShouldSeed reports whether dev fixtures should be inserted. Seeding is on
// by default in development.
func (c *YAMLConfig) ShouldSeed(isDev bool) bool {
	if !isDev {
		return false
	}
	if c == nil || c.DevSeed == nil {
		return true
	}
	return *c.DevSeed
}
