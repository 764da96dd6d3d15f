package breakout

import (
	"context"
	"time"
)

// Loop drives one world: clock, update, draw, then the activation is cleared.
type Loop struct {
	world    *World
	input    *InputSource
	clock    *Clock
	renderer Renderer
	before   func(*World, *InputSource)
}

// NewLoop creates a loop. A nil renderer draws nothing.
func NewLoop(world *World, input *InputSource, clock *Clock, renderer Renderer) *Loop {
	if renderer == nil {
		renderer = Discard
	}
	return &Loop{
		world:    world,
		input:    input,
		clock:    clock,
		renderer: renderer,
	}
}

// Frame runs one complete frame. All updates and removals finish before
// anything is drawn.
func (l *Loop) Frame() {
	if l.before != nil {
		l.before(l.world, l.input)
	}
	delta := l.clock.Tick()
	l.world.Update(delta, l.input.Snapshot())
	l.world.Draw(l.renderer)
	l.input.ClearActivation()
}

// Run calls Frame for every value received from ticks until ctx is done or
// ticks is closed.
func (l *Loop) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			l.Frame()
		}
	}
}

// World returns the world driven by this loop.
func (l *Loop) World() *World {
	return l.world
}

// Input returns the loop's input source.
func (l *Loop) Input() *InputSource {
	return l.input
}

// SetRenderer replaces the draw target.
func (l *Loop) SetRenderer(r Renderer) {
	if r == nil {
		r = Discard
	}
	l.renderer = r
}

// SetBeforeFrame registers a hook that runs at the start of every frame,
// before the clock is sampled. It runs on the goroutine calling Frame, so it
// may write input without further synchronization.
func (l *Loop) SetBeforeFrame(fn func(*World, *InputSource)) {
	l.before = fn
}

// Autopilot steers the pointer under the first ball and launches it when
// parked. It is used for headless runs.
func Autopilot(w *World, in *InputSource) {
	balls := w.Balls()
	if len(balls) == 0 {
		return
	}
	b := balls[0]
	in.MovePointer(b.X, b.Y)
	if b.Parked() {
		in.Activate()
	}
}
