// SPDX-License-Identifier: MIT
// Package config provides run configuration for nullnet.
//
// A configuration is built in layers, later layers winning:
//  1. DefaultConfig
//  2. a YAML file (see FindConfigPath for the lookup order)
//  3. command-line flags, applied by the caller
//
// Validate must pass before a Config is handed to the runner.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nullnet/swap"
)

// ErrInvalidConfig indicates a configuration that failed parsing or validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults.
const (
	DefaultQ         = 100.0
	DefaultMode      = "connected"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the parameters of one permutation run.
type Config struct {
	// Input is the edge-list path to read.
	Input string `yaml:"input" validate:"required"`
	// Output is the edge-list path to write.
	Output string `yaml:"output" validate:"required"`
	// Seed fixes the random stream. Nil means "derive from the clock".
	Seed *int64 `yaml:"seed,omitempty"`
	// Q scales the swap target: ceil(Q·|E|). The upper bound keeps the target
	// representable for any edge list that fits in memory.
	Q float64 `yaml:"q" validate:"gt=0,lte=1000000000"`
	// Mode is "connected" or "unconstrained".
	Mode string `yaml:"mode" validate:"oneof=connected unconstrained"`
	// MaxAttempts is the per-batch ceiling on edge-pair draws.
	MaxAttempts int `yaml:"max_attempts" validate:"gt=0"`
	// BatchFloor is the minimum batch target.
	BatchFloor int `yaml:"batch_floor" validate:"gt=0"`

	Log     LogConfig     `yaml:"log"`
	Profile ProfileConfig `yaml:"profile"`
}

// LogConfig selects logger verbosity and output format.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// ProfileConfig enables a runtime profile for the duration of a run.
// An empty Kind disables profiling.
type ProfileConfig struct {
	Dir  string `yaml:"dir,omitempty"`
	Kind string `yaml:"kind,omitempty" validate:"omitempty,oneof=cpu mem mutex block"`
}

// DefaultConfig returns the defaults. Input and Output are left empty and
// must be supplied by a file or flags.
func DefaultConfig() *Config {
	return &Config{
		Q:           DefaultQ,
		Mode:        DefaultMode,
		MaxAttempts: swap.DefaultMaxAttempts,
		BatchFloor:  swap.DefaultBatchFloor,
		Log:         LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Load resolves the config path (see FindConfigPath) and loads it over the
// defaults. With no file found it returns DefaultConfig and an empty path.
func Load(explicit string) (*Config, string, error) {
	path, err := FindConfigPath(explicit)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath decodes the YAML file at path over the defaults.
// Unknown keys are rejected. An empty file yields the defaults.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, path, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	return cfg, path, nil
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// SwapMode maps Mode onto swap.Mode.
func (c *Config) SwapMode() (swap.Mode, error) {
	m, err := swap.ParseMode(c.Mode)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return m, nil
}

// SwapOptions translates the engine-related fields into swap options.
// The random source is not included; the runner seeds it.
func (c *Config) SwapOptions() ([]swap.Option, error) {
	m, err := c.SwapMode()
	if err != nil {
		return nil, err
	}

	return []swap.Option{
		swap.WithMode(m),
		swap.WithMaxAttempts(c.MaxAttempts),
		swap.WithBatchFloor(c.BatchFloor),
	}, nil
}
