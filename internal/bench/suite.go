// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
)

const (
	// DefaultWarmup is the warm-up budget used when none is configured.
	DefaultWarmup = 2 * time.Second
	// DefaultMeasure is the measurement budget used when none is configured.
	DefaultMeasure = 5 * time.Second
)

// ErrUnknownTask is the sentinel error wrapped by UnknownTaskError.
var ErrUnknownTask = errors.New("unknown task")

type (
	// Reporter renders the tasks completed so far. tasks holds every task of
	// the suite in order; tasks[0..done] have finished measuring.
	Reporter interface {
		Report(tasks []Task, done int) error
	}

	// ReporterFunc adapts a function to the Reporter interface.
	ReporterFunc func(tasks []Task, done int) error

	// RunOptions configures one Suite run. The zero value measures with zero
	// budgets, which degrades to one warm-up-free batch of one call per task.
	RunOptions struct {
		// Warmup is the calibration budget per task.
		Warmup time.Duration
		// Measure is the sampling budget per task. It is shared by every task,
		// which is what makes sample counts comparable across tasks.
		Measure time.Duration
		// Clock defaults to SystemClock.
		Clock Clock
		// Reporter is called after every task. Nil discards reports.
		Reporter Reporter
		// Logger receives debug progress. Nil discards it.
		Logger *log.Logger
	}

	// UnknownTaskError is returned by Select for names that are not registered.
	// It wraps ErrUnknownTask for errors.Is() compatibility.
	UnknownTaskError struct {
		Names     []string
		Available []string
	}

	// Suite is an ordered collection of tasks sharing one init hook. The init
	// hook runs before every single operation call, in warm-up and measurement.
	Suite struct {
		init  func()
		tasks []Task
	}
)

// Report implements Reporter.
func (f ReporterFunc) Report(tasks []Task, done int) error {
	return f(tasks, done)
}

// Error implements the error interface for UnknownTaskError.
func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("unknown task(s) %s (available: %s)",
		strings.Join(e.Names, ", "), strings.Join(e.Available, ", "))
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *UnknownTaskError) Unwrap() error {
	return ErrUnknownTask
}

// NewSuite creates a suite. A nil init hook is replaced with NoInit. The task
// order fixes both execution order and report row order.
func NewSuite(init func(), tasks ...Task) *Suite {
	if init == nil {
		init = NoInit
	}
	return &Suite{init: init, tasks: slices.Clone(tasks)}
}

// Len returns the number of tasks.
func (s *Suite) Len() int {
	return len(s.tasks)
}

// Names returns the task names in suite order.
func (s *Suite) Names() []string {
	names := make([]string, len(s.tasks))
	for i := range s.tasks {
		names[i] = s.tasks[i].name
	}
	return names
}

// Tasks returns a copy of the task records, including their latest statistics.
func (s *Suite) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Select returns a new suite holding the named tasks in the order given,
// sharing this suite's init hook. With no names the whole suite is returned.
func (s *Suite) Select(names ...string) (*Suite, error) {
	if len(names) == 0 {
		return NewSuite(s.init, s.tasks...), nil
	}

	var (
		picked  []Task
		missing []string
	)
	for _, name := range names {
		idx := slices.IndexFunc(s.tasks, func(t Task) bool { return t.name == name })
		if idx < 0 {
			missing = append(missing, name)
			continue
		}
		picked = append(picked, s.tasks[idx])
	}
	if len(missing) > 0 {
		return nil, &UnknownTaskError{Names: missing, Available: s.Names()}
	}
	return NewSuite(s.init, picked...), nil
}

// Run measures every task in order. Each task goes through calibration and
// sampling before the next one starts, and the reporter is called after each
// task with all tasks completed so far. The task just measured is still in
// PhaseMeasuring while it is reported and moves to PhaseReported only once
// the report succeeded. Run only fails on context
// cancellation or a reporter error.
func (s *Suite) Run(ctx context.Context, opts RunOptions) error {
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	for i := range s.tasks {
		t := &s.tasks[i]
		if err := s.runTask(ctx, clock, logger, t, opts); err != nil {
			return err
		}

		if opts.Reporter != nil {
			if err := opts.Reporter.Report(s.tasks, i); err != nil {
				return fmt.Errorf("report after task %q: %w", t.name, err)
			}
		}
		if err := t.advance(PhaseReported); err != nil {
			return err
		}
	}
	return nil
}

func (s *Suite) runTask(ctx context.Context, clock Clock, logger *log.Logger, t *Task, opts RunOptions) error {
	t.reset()

	if err := t.advance(PhaseCalibrating); err != nil {
		return err
	}
	cycles, err := Calibrate(ctx, clock, s.init, t.op, opts.Warmup)
	if err != nil {
		return fmt.Errorf("calibrate %q: %w", t.name, err)
	}
	t.Cycles = cycles
	logger.Debug("calibrated", "task", t.name, "cycles", cycles, "warmup", opts.Warmup)

	if err := t.advance(PhaseMeasuring); err != nil {
		return err
	}
	var acc Accumulator
	err = Sample(ctx, clock, s.init, t.op, t.Cycles, opts.Measure, &acc)
	t.Stats = acc.Stats()
	if err != nil {
		return fmt.Errorf("measure %q: %w", t.name, err)
	}
	logger.Debug("measured", "task", t.name, "samples", t.Samples,
		"mean", t.Mean, "rsd", fmt.Sprintf("%.2f%%", t.RelStddev))
	return nil
}
