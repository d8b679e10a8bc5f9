// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"sync"
	"time"
)

// FakeClock implements bench.Clock with manually controlled time. Time moves
// when Advance is called, and additionally by a fixed step on every Now
// reading when the clock was built with NewStepClock.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
	reads   int
}

// NewFakeClock creates a FakeClock initialized to the given time.
// If initial is zero, defaults to a fixed reference time for reproducibility.
func NewFakeClock(initial time.Time) *FakeClock {
	if initial.IsZero() {
		initial = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return &FakeClock{current: initial}
}

// NewStepClock creates a FakeClock that advances by step after every reading,
// so any timed interval between two consecutive readings lasts exactly step.
func NewStepClock(step time.Duration) *FakeClock {
	c := NewFakeClock(time.Time{})
	c.step = step
	return c
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.current
	c.current = c.current.Add(c.step)
	c.reads++
	return now
}

// Advance moves the fake time forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Costs returns an operation that advances the clock by d per call.
func (c *FakeClock) Costs(d time.Duration) func() {
	return func() { c.Advance(d) }
}

// Reads reports how many times Now was called.
func (c *FakeClock) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}
