// SPDX-License-Identifier: MIT

// Package matrix - YAML configuration.
//
// A Config is the file form of the functional options:
//
//	seed: 42               # random stream for Randomize (0 = default stream)
//	validate_nan_inf: true # reject NaN/±Inf in Set, Fill and Read (default false)
//	format:
//	  width: 7             # minimum element width when writing
//	  precision: 2         # decimals when writing
//
// Absent keys keep their defaults; unknown keys are rejected.
package matrix

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config mirrors the file-configurable subset of Options.
type Config struct {
	Seed           int64        `yaml:"seed"`
	ValidateNaNInf bool         `yaml:"validate_nan_inf"`
	Format         FormatConfig `yaml:"format"`
}

// FormatConfig holds the element write format.
type FormatConfig struct {
	Width     int `yaml:"width"`
	Precision int `yaml:"precision"`
}

// DefaultConfig returns the documented defaults (same as no options at all).
func DefaultConfig() Config {
	return Config{
		Seed:           DefaultSeed,
		ValidateNaNInf: DefaultValidateNaNInf,
		Format: FormatConfig{
			Width:     DefaultWidth,
			Precision: DefaultPrecision,
		},
	}
}

// LoadConfig decodes a YAML document from r over DefaultConfig and validates it.
// An empty document yields DefaultConfig.
//
// Errors:
//   - ErrConfig wrapping the decoder or validation error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("matrix.LoadConfig: %w: %w", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("matrix.LoadConfig: %w", err)
	}

	return cfg, nil
}

// Validate checks the same bounds WithFormat enforces, returning ErrConfig
// instead of panicking.
func (c Config) Validate() error {
	if c.Format.Width < 1 || c.Format.Width > maxWidth {
		return fmt.Errorf("format.width %d not in [1,%d]: %w", c.Format.Width, maxWidth, ErrConfig)
	}
	if c.Format.Precision < 0 || c.Format.Precision > maxPrecision {
		return fmt.Errorf("format.precision %d not in [0,%d]: %w", c.Format.Precision, maxPrecision, ErrConfig)
	}

	return nil
}

// Options converts c into functional options. c must be valid (see Validate);
// WithFormat panics otherwise.
func (c Config) Options() []Option {
	nan := WithValidateNaNInf()
	if !c.ValidateNaNInf {
		nan = WithNoValidateNaNInf()
	}

	return []Option{
		WithSeed(c.Seed),
		WithFormat(c.Format.Width, c.Format.Precision),
		nan,
	}
}
