package display

import (
	"sync"
	"time"
)

// Clock is the fixed-interval tick source the display arms while animating.
// Implementations deliver ticks by calling NextFrame from a single goroutine.
type Clock interface {
	// Arm starts ticking every period. It reports whether the clock is now armed.
	Arm(period time.Duration) bool
	// Disarm stops ticking. Ticks already delivered are not recalled.
	Disarm()
}

// ManualClock records arm state and leaves tick delivery to its owner.
// Headless drivers and tests step the display themselves.
type ManualClock struct {
	mu     sync.Mutex
	armed  bool
	period time.Duration
	arms   int
}

func (c *ManualClock) Arm(period time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.armed = true
	c.period = period
	c.arms++
	return true
}

func (c *ManualClock) Disarm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.armed = false
}

func (c *ManualClock) Armed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.armed
}

func (c *ManualClock) Period() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.period
}

// Arms counts successful Arm calls.
func (c *ManualClock) Arms() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.arms
}

// Pacer turns elapsed time from a free-running loop into whole ticks of
// Period. At most MaxCatchUp ticks are released per call; a larger
// backlog is dropped.
type Pacer struct {
	Period     time.Duration
	MaxCatchUp int
	acc        time.Duration
}

// Due adds elapsed and returns the number of ticks now owed.
func (p *Pacer) Due(elapsed time.Duration) int {
	if p.Period <= 0 {
		return 0
	}
	p.acc += elapsed
	n := int(p.acc / p.Period)
	p.acc -= time.Duration(n) * p.Period
	if limit := max(p.MaxCatchUp, 1); n > limit {
		n = limit
		p.acc = 0
	}
	return n
}

// Reset forgets any partial tick.
func (p *Pacer) Reset() { p.acc = 0 }
