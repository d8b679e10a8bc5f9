// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"errors"
	"testing"
)

func TestPhaseString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "idle"},
		{PhaseCalibrating, "calibrating"},
		{PhaseMeasuring, "measuring"},
		{PhaseReported, "reported"},
		{Phase(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestPhaseValidate(t *testing.T) {
	t.Parallel()

	for _, p := range []Phase{PhaseIdle, PhaseCalibrating, PhaseMeasuring, PhaseReported} {
		if err := p.Validate(); err != nil {
			t.Errorf("Phase(%d).Validate() = %v, want nil", p, err)
		}
	}

	err := Phase(-1).Validate()
	if !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("Phase(-1).Validate() = %v, want ErrInvalidPhase", err)
	}
	var phaseErr *InvalidPhaseError
	if !errors.As(err, &phaseErr) || phaseErr.Value != -1 {
		t.Errorf("errors.As(*InvalidPhaseError) failed or wrong value: %v", err)
	}
}

func TestTaskAdvance(t *testing.T) {
	t.Parallel()

	task := NewTask("t", NoInit)
	for _, next := range []Phase{PhaseCalibrating, PhaseMeasuring, PhaseReported} {
		if err := task.advance(next); err != nil {
			t.Fatalf("advance(%s) returned error: %v", next, err)
		}
	}

	if err := task.advance(PhaseReported); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("re-entering reported: err = %v, want ErrInvalidTransition", err)
	}

	task.reset()
	if task.Phase() != PhaseIdle {
		t.Fatalf("reset() left phase %s, want idle", task.Phase())
	}

	err := task.advance(PhaseMeasuring)
	var trErr *InvalidTransitionError
	if !errors.As(err, &trErr) {
		t.Fatalf("skipping calibration: err = %v, want *InvalidTransitionError", err)
	}
	if trErr.From != PhaseIdle || trErr.To != PhaseMeasuring || trErr.Task != "t" {
		t.Errorf("InvalidTransitionError = %+v, want idle -> measuring for task t", trErr)
	}

	if err := task.advance(Phase(9)); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("advance to undefined phase: err = %v, want ErrInvalidPhase", err)
	}
}
