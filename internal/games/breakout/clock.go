package breakout

import (
	"math"
	"time"
)

// Clock converts wall-clock samples into a clamped simulation delta.
// A single slow frame (backgrounded terminal, debugger pause) never advances
// the simulation by more than maxStep seconds.
type Clock struct {
	now      func() time.Time
	maxStep  float64
	last     time.Time
	started  bool
	gameTime float64
}

// NewClock creates a clock with the given ceiling in seconds.
// A nil now function uses time.Now.
func NewClock(maxStep float64, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, maxStep: maxStep}
}

// Tick samples the wall clock and returns the delta to simulate, in seconds.
// The first call only establishes the baseline and returns 0.
func (c *Clock) Tick() float64 {
	current := c.now()
	if !c.started {
		c.started = true
		c.last = current
		return 0
	}

	wall := current.Sub(c.last).Seconds()
	c.last = current

	delta := math.Min(math.Max(wall, 0), c.maxStep)
	c.gameTime += delta
	return delta
}

// GameTime returns the total simulated time in seconds.
func (c *Clock) GameTime() float64 {
	return c.gameTime
}

// MaxStep returns the delta ceiling in seconds.
func (c *Clock) MaxStep() float64 {
	return c.maxStep
}

// SteppedNow returns a fake time source that starts at the Unix epoch and
// advances by step on every call. Used for deterministic headless runs.
func SteppedNow(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}
