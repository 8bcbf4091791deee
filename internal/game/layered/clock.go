package layered

import (
	"sync"
	"time"
)

// Clock supplies the timestamp recorded when an effect is applied.
// Readings must be monotonically non-decreasing and measured from world start.
type Clock interface {
	Now() time.Duration
}

// WorldClock measures elapsed time since it was created, using the
// monotonic reading of time.Time.
type WorldClock struct {
	start time.Time
}

// NewWorldClock starts a clock at zero.
func NewWorldClock() *WorldClock {
	return &WorldClock{start: time.Now()}
}

// Now returns time elapsed since world start.
func (c *WorldClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to. Used for deterministic replays and tests.
//
// Thread-safe: ticking goroutines may advance it while others read it.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Duration
}

// NewManualClock creates a clock reading start.
func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d. Negative d is ignored
// so the clock never runs backwards.
func (c *ManualClock) Advance(d time.Duration) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 {
		c.now += d
	}
	return c.now
}

// Set jumps to t if t is not earlier than the current reading.
// Returns false if the jump would move the clock backwards.
func (c *ManualClock) Set(t time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t < c.now {
		return false
	}
	c.now = t
	return true
}
