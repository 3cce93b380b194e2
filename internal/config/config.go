// Package config loads the runner configuration from YAML with environment
// overrides. A missing file falls back to defaults so the tool works out of
// the box with inputs/ next to the binary.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all advent configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Input file location
	Inputs InputsConfig `yaml:"inputs"`

	// Per-day solver knobs
	Solver SolverConfig `yaml:"solver"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// InputsConfig configures where puzzle inputs are read from.
type InputsConfig struct {
	Dir string `yaml:"dir"`
}

// SolverConfig carries the tunable solver parameters.
type SolverConfig struct {
	// CycleCap bounds the day 1 repeated-frequency search in full passes
	// through the change list. 0 leaves the search unbounded.
	CycleCap int `yaml:"cycle_cap"`

	// Workers and BaseSeconds parameterize the day 7 simulation. The
	// puzzle statement uses 5 workers and 60 base seconds.
	Workers     int `yaml:"workers"`
	BaseSeconds int `yaml:"base_seconds"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "advent",
		Version: "1.0.0",

		Inputs: InputsConfig{
			Dir: "inputs",
		},

		Solver: SolverConfig{
			CycleCap:    0,
			Workers:     5,
			BaseSeconds: 60,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("ADVENT_INPUTS"); dir != "" {
		c.Inputs.Dir = dir
	}
	if level := os.Getenv("ADVENT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if v := os.Getenv("ADVENT_CYCLE_CAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Solver.CycleCap = n
		}
	}
}
