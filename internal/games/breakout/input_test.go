package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestInputSourceStartsEmpty(t *testing.T) {
	s := NewInputSource()
	in := s.Snapshot()

	if in.HasPointer {
		t.Error("pointer should be absent before the first move")
	}
	if in.Activated {
		t.Error("activation should be false initially")
	}
}

func TestInputSourceLastValueWins(t *testing.T) {
	s := NewInputSource()
	s.MovePointer(10, 20)
	s.MovePointer(30, 40)

	in := s.Snapshot()
	if !in.HasPointer || in.Pointer != (core.Point{X: 30, Y: 40}) {
		t.Errorf("Snapshot() pointer = %v (has=%v), expected (30, 40)", in.Pointer, in.HasPointer)
	}
}

func TestInputSourceActivationIsOneShot(t *testing.T) {
	s := NewInputSource()
	s.Activate()
	s.Activate()

	if !s.Snapshot().Activated {
		t.Fatal("Snapshot() should report activation")
	}

	s.ClearActivation()
	if s.Snapshot().Activated {
		t.Error("activation should be cleared, presses are not queued")
	}
}

func TestInputSourceNudge(t *testing.T) {
	s := NewInputSource()
	s.NudgePointer(16, core.Point{X: 320, Y: 460}, 0, 640)

	in := s.Snapshot()
	if !in.HasPointer || in.Pointer.X != 336 {
		t.Errorf("first nudge should start from origin, got %v", in.Pointer)
	}

	s.NudgePointer(-36, core.Point{X: 0, Y: 0}, 0, 640)
	if got := s.Snapshot().Pointer.X; got != 300 {
		t.Errorf("second nudge should start from the pointer, got %f", got)
	}
}

func TestInputSourceNudgeClamped(t *testing.T) {
	tests := []struct {
		name     string
		dx       float64
		expected float64
	}{
		{"past right edge", 1000, 600},
		{"past left edge", -1000, 40},
		{"inside", 40, 360},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewInputSource()
			s.MovePointer(320, 200)
			s.NudgePointer(tc.dx, core.Point{}, 40, 600)
			if got := s.Snapshot().Pointer.X; got != tc.expected {
				t.Errorf("pointer x = %g, expected %g", got, tc.expected)
			}
		})
	}
}
