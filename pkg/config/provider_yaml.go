package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements Provider for YAML configuration files.
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a provider reading from the given YAML file.
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{filename: filename}
}

// LoadConfig reads and parses the YAML file.
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	raw, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", y.filename, err)
	}

	var cfg ConfigData
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", y.filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", y.filename, err)
	}
	return &cfg, nil
}

// IsReadOnly always reports true; YAML files are edited by hand.
func (y *YAMLProvider) IsReadOnly() bool { return true }

// Close is a no-op for file-backed configuration.
func (y *YAMLProvider) Close() error { return nil }
