package sexprdot

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/xiam/sexprdot/parser"
	"github.com/xiam/sexprdot/render"
)

// Config holds parser and renderer settings.
type Config struct {
	Parse  parser.Options `yaml:"parse"`
	Render render.Options `yaml:"render"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Parse: parser.Options{
			MaxDepth: parser.DefaultMaxDepth,
		},
		Render: render.DefaultOptions(),
	}
}

// LoadConfig reads a YAML configuration file. Keys left out of the file
// keep their default values; unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	for k := range config.Render.Attributes {
		if !isIdentifier(k) {
			return fmt.Errorf("%w: render.attributes: %q is not a valid attribute name", ErrConfigValidation, k)
		}
	}
	for _, v := range []struct {
		key   string
		value string
	}{
		{"render.cluster_prefix", config.Render.ClusterPrefix},
		{"render.vertex_prefix", config.Render.VertexPrefix},
	} {
		if v.value != "" && !isIdentifier(v.value) {
			return fmt.Errorf("%w: %s: %q is not a valid identifier", ErrConfigValidation, v.key, v.value)
		}
	}
	return nil
}

// isIdentifier reports whether s is a bare DOT identifier: letters, digits
// and underscores, not starting with a digit.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
