package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a configuration from YAML bytes. Fields not present
// keep the flavor defaults; unknown fields are rejected.
func FromYAML(data []byte) (*Config, error) {
	// Decode twice: once to learn the flavor, once strictly over the
	// flavor's defaults so partial files only override what they name.
	var probe struct {
		Flavor Flavor `yaml:"flavor"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	flavor := probe.Flavor
	if flavor == "" {
		flavor = FlavorQuarto
	}
	if !flavor.IsValid() {
		return nil, fmt.Errorf("parse config: unknown flavor %q", flavor)
	}

	cfg := ForFlavor(flavor)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return FromYAML(data)
}

// ToYAML serializes the configuration.
func (c *Config) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}
