// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"errors"
	"fmt"
)

const (
	// PhaseIdle indicates the task is registered but its run has not started.
	PhaseIdle Phase = iota
	// PhaseCalibrating indicates the warm-up loop is determining Cycles.
	PhaseCalibrating
	// PhaseMeasuring indicates batches are being sampled.
	PhaseMeasuring
	// PhaseReported is terminal for a run: statistics are final and read-only.
	PhaseReported
)

var (
	// ErrInvalidPhase is returned when a Phase value is not one of the defined phases.
	ErrInvalidPhase = errors.New("invalid phase")
	// ErrInvalidTransition is the sentinel error wrapped by InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid phase transition")
)

type (
	// Phase is the position of a task in its Idle -> Calibrating -> Measuring -> Reported lifecycle.
	Phase int

	// InvalidPhaseError is returned when a Phase value is not recognized.
	// It wraps ErrInvalidPhase for errors.Is() compatibility.
	InvalidPhaseError struct {
		Value Phase
	}

	// InvalidTransitionError is returned when a task is moved out of order.
	// It wraps ErrInvalidTransition for errors.Is() compatibility.
	InvalidTransitionError struct {
		Task string
		From Phase
		To   Phase
	}
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCalibrating:
		return "calibrating"
	case PhaseMeasuring:
		return "measuring"
	case PhaseReported:
		return "reported"
	default:
		return "unknown"
	}
}

// Validate returns nil if the Phase is one of the defined phases,
// or an error wrapping ErrInvalidPhase if it is not.
func (p Phase) Validate() error {
	switch p {
	case PhaseIdle, PhaseCalibrating, PhaseMeasuring, PhaseReported:
		return nil
	default:
		return &InvalidPhaseError{Value: p}
	}
}

// Next returns the phase that must follow p. PhaseReported has no successor
// and returns itself.
func (p Phase) Next() Phase {
	if p >= PhaseReported || p < PhaseIdle {
		return p
	}
	return p + 1
}

// Error implements the error interface for InvalidPhaseError.
func (e *InvalidPhaseError) Error() string {
	return fmt.Sprintf("invalid phase %d (valid: 0=idle, 1=calibrating, 2=measuring, 3=reported)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidPhaseError) Unwrap() error {
	return ErrInvalidPhase
}

// Error implements the error interface for InvalidTransitionError.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("task %q: cannot move from %s to %s", e.Task, e.From, e.To)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
