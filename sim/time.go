package sim

import (
	"log"
	"sync"
)

// VTime is the logical simulation time, counted in ticks.
type VTime int64

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	CurrentTime() VTime
}

// A Clock holds the logical time of one simulation run.
//
// Each engine owns exactly one Clock. The engine advances the clock when
// it dequeues an event; handlers never touch it directly. Two simulations
// must not share a Clock.
type Clock struct {
	mu  sync.RWMutex
	now VTime
}

// NewClock creates a Clock that starts at time 0.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current logical time.
func (c *Clock) Now() VTime {
	c.mu.RLock()
	t := c.now
	c.mu.RUnlock()
	return t
}

// AdvanceTo moves the clock to t. The engine only ever advances to the
// time of the next dequeued event, so t must not precede the current
// time.
func (c *Clock) AdvanceTo(t VTime) {
	c.mu.Lock()
	if t < c.now {
		now := c.now
		c.mu.Unlock()
		log.Panicf("sim: clock moving backward, from %d to %d", now, t)
	}
	c.now = t
	c.mu.Unlock()
}

// Reset sets the clock to t0, typically 0, at the start of a run.
func (c *Clock) Reset(t0 VTime) {
	c.mu.Lock()
	c.now = t0
	c.mu.Unlock()
}
