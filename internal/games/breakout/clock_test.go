package breakout

import (
	"testing"
	"time"
)

// fakeNow is a manually advanced time source.
type fakeNow struct {
	t time.Time
}

func (f *fakeNow) now() time.Time { return f.t }

func (f *fakeNow) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClockFirstTickIsBaseline(t *testing.T) {
	src := &fakeNow{t: time.Unix(1000, 0)}
	c := NewClock(0.05, src.now)

	if d := c.Tick(); d != 0 {
		t.Errorf("first Tick() = %f, expected 0", d)
	}
}

func TestClockClampsLongFrames(t *testing.T) {
	src := &fakeNow{t: time.Unix(1000, 0)}
	c := NewClock(0.05, src.now)
	c.Tick()

	src.advance(5 * time.Second)
	if d := c.Tick(); d != 0.05 {
		t.Errorf("Tick() after 5s = %f, expected 0.05", d)
	}
}

func TestClockPassesShortFrames(t *testing.T) {
	src := &fakeNow{t: time.Unix(1000, 0)}
	c := NewClock(0.05, src.now)
	c.Tick()

	src.advance(16 * time.Millisecond)
	if d := c.Tick(); d != 0.016 {
		t.Errorf("Tick() after 16ms = %f, expected 0.016", d)
	}
}

func TestClockIgnoresBackwardsTime(t *testing.T) {
	src := &fakeNow{t: time.Unix(1000, 0)}
	c := NewClock(0.05, src.now)
	c.Tick()

	src.advance(-time.Second)
	if d := c.Tick(); d != 0 {
		t.Errorf("Tick() after clock went backwards = %f, expected 0", d)
	}
}

func TestClockGameTime(t *testing.T) {
	src := &fakeNow{t: time.Unix(1000, 0)}
	c := NewClock(0.05, src.now)
	c.Tick()

	src.advance(10 * time.Millisecond)
	c.Tick()
	src.advance(time.Minute)
	c.Tick()

	if got := c.GameTime(); got < 0.0599 || got > 0.0601 {
		t.Errorf("GameTime() = %f, expected 0.06", got)
	}
}

func TestSteppedNow(t *testing.T) {
	now := SteppedNow(20 * time.Millisecond)
	c := NewClock(0.05, now)
	c.Tick()

	for i := 0; i < 3; i++ {
		if d := c.Tick(); d != 0.02 {
			t.Errorf("Tick() #%d = %f, expected 0.02", i, d)
		}
	}
}
