// Package config loads the patrol CLI configuration from YAML.
//
// Thread Safety: a Config is read-only once Load returns.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultInput is the input path used when none is configured.
const DefaultInput = "input.txt"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level configuration document.
type Config struct {
	// Input is the grid file path; "-" reads standard input.
	Input string `json:"input" yaml:"input" validate:"required"`

	// Format is the report format: text, json or yaml.
	Format string `json:"format" yaml:"format" validate:"oneof=text json yaml"`

	// MaxSteps bounds a run; 0 means unbounded.
	MaxSteps int `json:"max_steps" yaml:"max_steps" validate:"gte=0"`

	// Log contains logging settings.
	Log LogConfig `json:"log" yaml:"log"`

	// Trace contains step-by-step rendering settings.
	Trace TraceConfig `json:"trace" yaml:"trace"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `json:"format" yaml:"format" validate:"oneof=text json"`
}

// TraceConfig contains step-by-step rendering settings.
type TraceConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	Delay   time.Duration `json:"delay" yaml:"delay" validate:"gte=0"`
	Color   bool          `json:"color" yaml:"color"`
	Clear   bool          `json:"clear" yaml:"clear"`
}

// validate is the shared validator instance.
var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Input:  DefaultInput,
		Format: "text",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Trace: TraceConfig{
			Delay: 50 * time.Millisecond,
			Clear: true,
		},
	}
}

// Load reads path on top of Default. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
