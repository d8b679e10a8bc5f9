// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// tomlConfig mirrors Config with durations spelled as strings, matching the
// CUE file format.
type tomlConfig struct {
	Warmup      string         `toml:"warmup"`
	Measure     string         `toml:"measure"`
	Interactive string         `toml:"interactive"`
	Verbose     bool           `toml:"verbose"`
	Workload    WorkloadConfig `toml:"workload"`
}

// GenerateTOML renders the configuration as TOML.
func GenerateTOML(cfg *Config) (string, error) {
	out, err := toml.Marshal(tomlConfig{
		Warmup:      cfg.Warmup.String(),
		Measure:     cfg.Measure.String(),
		Interactive: string(cfg.Interactive),
		Verbose:     cfg.Verbose,
		Workload:    cfg.Workload,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode config as TOML: %w", err)
	}
	return string(out), nil
}
