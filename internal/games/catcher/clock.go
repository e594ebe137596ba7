package catcher

import "time"

// Clock reports time elapsed since the session started.
type Clock interface {
	Now() time.Duration
}

// SystemClock measures wall time from its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock started at the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the wall time elapsed since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to. Used for tests and replays.
type ManualClock struct {
	now time.Duration
}

// Now returns the current manual reading.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// Set jumps the clock to d.
func (c *ManualClock) Set(d time.Duration) {
	c.now = d
}
