// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	// InteractiveAuto redraws in place when stdout is a terminal.
	InteractiveAuto InteractiveMode = "auto"
	// InteractiveAlways always redraws in place.
	InteractiveAlways InteractiveMode = "always"
	// InteractiveNever always appends.
	InteractiveNever InteractiveMode = "never"
)

var (
	// ErrInvalidInteractiveMode is returned when an InteractiveMode value is not recognized.
	ErrInvalidInteractiveMode = errors.New("invalid interactive mode")
	// ErrInvalidWorkloadConfig is the sentinel error wrapped by InvalidWorkloadConfigError.
	ErrInvalidWorkloadConfig = errors.New("invalid workload config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// InteractiveMode selects how the report is redrawn.
	InteractiveMode string

	// InvalidInteractiveModeError is returned when an InteractiveMode value is not recognized.
	// It wraps ErrInvalidInteractiveMode for errors.Is() compatibility.
	InvalidInteractiveModeError struct {
		Value InteractiveMode
	}

	// InvalidWorkloadConfigError is returned when a WorkloadConfig has invalid fields.
	// It wraps ErrInvalidWorkloadConfig for errors.Is() compatibility.
	InvalidWorkloadConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Warmup is the calibration budget per task.
		Warmup time.Duration `json:"warmup" toml:"warmup" mapstructure:"warmup"`
		// Measure is the sampling budget per task.
		Measure time.Duration `json:"measure" toml:"measure" mapstructure:"measure"`
		// Interactive selects the redraw strategy.
		Interactive InteractiveMode `json:"interactive" toml:"interactive" mapstructure:"interactive"`
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" toml:"verbose" mapstructure:"verbose"`
		// Workload configures the built-in sorting suite.
		Workload WorkloadConfig `json:"workload" toml:"workload" mapstructure:"workload"`
	}

	// WorkloadConfig configures the built-in sorting suite.
	WorkloadConfig struct {
		// Size is the array length.
		Size int `json:"size" toml:"size" mapstructure:"size"`
		// Seed drives the shuffle.
		Seed uint64 `json:"seed" toml:"seed" mapstructure:"seed"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Warmup:      2 * time.Second,
		Measure:     5 * time.Second,
		Interactive: InteractiveAuto,
		Verbose:     false,
		Workload: WorkloadConfig{
			Size: 10000,
			Seed: 1,
		},
	}
}

// String returns the string representation of the InteractiveMode.
func (m InteractiveMode) String() string { return string(m) }

// Validate returns nil if the InteractiveMode is one of the defined modes,
// or an error wrapping ErrInvalidInteractiveMode if it is not.
func (m InteractiveMode) Validate() error {
	switch m {
	case InteractiveAuto, InteractiveAlways, InteractiveNever:
		return nil
	default:
		return &InvalidInteractiveModeError{Value: m}
	}
}

// Resolve turns the mode into a yes/no decision. detect is only consulted
// for InteractiveAuto.
func (m InteractiveMode) Resolve(detect func() bool) bool {
	switch m {
	case InteractiveAlways:
		return true
	case InteractiveNever:
		return false
	default:
		return detect != nil && detect()
	}
}

// Error implements the error interface for InvalidInteractiveModeError.
func (e *InvalidInteractiveModeError) Error() string {
	return fmt.Sprintf("invalid interactive mode %q (valid: auto, always, never)", e.Value)
}

// Unwrap returns ErrInvalidInteractiveMode for errors.Is() compatibility.
func (e *InvalidInteractiveModeError) Unwrap() error { return ErrInvalidInteractiveMode }

// Validate returns nil if the workload settings are usable.
func (w WorkloadConfig) Validate() error {
	if w.Size <= 0 {
		return &InvalidWorkloadConfigError{FieldErrors: []error{fmt.Errorf("size must be positive, got %d", w.Size)}}
	}
	return nil
}

// Error implements the error interface for InvalidWorkloadConfigError.
func (e *InvalidWorkloadConfigError) Error() string {
	return fmt.Sprintf("invalid workload config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidWorkloadConfig for errors.Is() compatibility.
func (e *InvalidWorkloadConfigError) Unwrap() error { return ErrInvalidWorkloadConfig }

// Validate returns nil if the Config has valid fields, or an error wrapping
// ErrInvalidConfig collecting every field-level problem. Negative budgets are
// allowed: they degrade to a single measured batch.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Interactive.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Workload.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
