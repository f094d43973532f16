// Package clock stamps chat messages. Tests swap in Fixed or Stepping for stable timestamps.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current instant
type Clock interface {
	Now() time.Time
}

type system struct{}

func (system) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock, in UTC
func New() Clock {
	return system{}
}

// Fixed always reports At
type Fixed struct {
	At time.Time
}

// Now returns At
func (c *Fixed) Now() time.Time {
	return c.At
}

// Stepping starts at Start and moves forward by Step on every call
type Stepping struct {
	Start time.Time
	Step  time.Duration

	mu    sync.Mutex
	calls int
}

// Now returns Start plus one Step per earlier call
func (c *Stepping) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.Start.Add(time.Duration(c.calls) * c.Step)
	c.calls++
	return now
}
