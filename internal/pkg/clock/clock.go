package clock

import (
	"sync"
	"time"
)

// Clock is the only source of "now" for validity deadlines and lifecycle timestamps.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

// Now is in UTC so it compares cleanly with timestamptz values read back from Postgres.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a settable clock safe for use from concurrent accept attempts.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Add moves the clock forward, e.g. past a quote's validity deadline.
func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
