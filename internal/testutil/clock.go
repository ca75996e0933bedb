package testutil

import (
	"sync"
	"time"
)

// FixedClock is a civil clock for tests that only moves when told to.
//
// Unlike datetime.SystemClock, FixedClock returns the same instant on every
// call until Set or Advance is used. This makes "now"-based derivations
// reproducible.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock frozen at now.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

// NewFixedClockAt creates a clock frozen at the given civil date and time in loc.
// A nil loc means time.UTC.
func NewFixedClockAt(year int, month time.Month, day, hour, minute int, loc *time.Location) *FixedClock {
	if loc == nil {
		loc = time.UTC
	}
	return NewFixedClock(time.Date(year, month, day, hour, minute, 0, 0, loc))
}

// Now returns the frozen instant.
//
// Implements datetime.Clock interface.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to now.
func (c *FixedClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Advance moves the clock forward by d and returns the new instant.
func (c *FixedClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}
