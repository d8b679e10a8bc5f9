// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestInteractiveModeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode    InteractiveMode
		wantErr bool
	}{
		{InteractiveAuto, false},
		{InteractiveAlways, false},
		{InteractiveNever, false},
		{"", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()

			err := tt.mode.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrInvalidInteractiveMode) {
				t.Errorf("errors.Is(err, ErrInvalidInteractiveMode) = false")
			}
			var typed *InvalidInteractiveModeError
			if !errors.As(err, &typed) || typed.Value != tt.mode {
				t.Errorf("errors.As should recover the rejected value %q", tt.mode)
			}
		})
	}
}

func TestInteractiveModeResolve(t *testing.T) {
	t.Parallel()

	yes := func() bool { return true }
	no := func() bool { return false }

	tests := []struct {
		name   string
		mode   InteractiveMode
		detect func() bool
		want   bool
	}{
		{"always ignores detection", InteractiveAlways, no, true},
		{"never ignores detection", InteractiveNever, yes, false},
		{"auto on terminal", InteractiveAuto, yes, true},
		{"auto off terminal", InteractiveAuto, no, false},
		{"auto without detector", InteractiveAuto, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.mode.Resolve(tt.detect); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigValidateCollectsFieldErrors(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Interactive = "maybe"
	cfg.Workload.Size = -1

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
	}

	var typed *InvalidConfigError
	if !errors.As(err, &typed) {
		t.Fatalf("errors.As(*InvalidConfigError) failed")
	}
	if len(typed.FieldErrors) != 2 {
		t.Fatalf("FieldErrors = %d, want 2", len(typed.FieldErrors))
	}
	if !errors.Is(typed.FieldErrors[0], ErrInvalidInteractiveMode) {
		t.Errorf("first field error = %v", typed.FieldErrors[0])
	}
	if !errors.Is(typed.FieldErrors[1], ErrInvalidWorkloadConfig) {
		t.Errorf("second field error = %v", typed.FieldErrors[1])
	}
}

func TestNegativeBudgetsAreValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Warmup = -1
	cfg.Measure = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, degenerate budgets should be accepted", err)
	}
}
