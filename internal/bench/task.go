// SPDX-License-Identifier: MPL-2.0

package bench

// Task is one named candidate implementation plus the statistics of its
// most recent run. Statistics are owned by the Suite's copy of the task and
// are only mutated while the Suite runs it.
type Task struct {
	name  string
	op    func()
	phase Phase

	// Cycles is the number of operation calls in one measured batch.
	Cycles int
	Stats
}

// NoInit is an init hook that does nothing.
func NoInit() {}

// NewTask registers op under a display name. The name is fixed for the
// lifetime of the task.
func NewTask(name string, op func()) Task {
	return Task{name: name, op: op}
}

// Name returns the display label.
func (t *Task) Name() string {
	return t.name
}

// Phase returns where the task is in its run lifecycle.
func (t *Task) Phase() Phase {
	return t.phase
}

// reset zeroes the statistics and returns the task to PhaseIdle.
func (t *Task) reset() {
	t.phase = PhaseIdle
	t.Cycles = 0
	t.Stats = Stats{}
}

// advance moves the task to the next phase, rejecting skips and re-entry.
func (t *Task) advance(to Phase) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if t.phase.Next() != to || t.phase == to {
		return &InvalidTransitionError{Task: t.name, From: t.phase, To: to}
	}
	t.phase = to
	return nil
}
