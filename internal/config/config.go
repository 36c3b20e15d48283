package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultLayout renders instants with millisecond precision and offset.
const DefaultLayout = "2006-01-02T15:04:05.000Z07:00"

// Config represents the top-level pocket.yaml configuration.
type Config struct {
	Timezone string       `yaml:"timezone"` // IANA name; empty = system local
	Output   OutputConfig `yaml:"output"`
}

// OutputConfig controls how instants are printed.
type OutputConfig struct {
	Layout string `yaml:"layout"`
	UTC    bool   `yaml:"utc"` // also print the UTC value
}

// Load reads a pocket.yaml file from disk. Missing fields take their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Output.Layout == "" {
		cfg.Output.Layout = DefaultLayout
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config that uses the system timezone.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Layout: DefaultLayout,
			UTC:    true,
		},
	}
}

// Location resolves Timezone. Empty and "Local" mean time.Local.
func (c *Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
