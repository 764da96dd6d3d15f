package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Input is the input state read by one frame.
type Input struct {
	Pointer    core.Point // Last known pointer position in arena units
	HasPointer bool       // False until the first pointer movement
	Activated  bool       // Launch requested since the last frame
}

// InputSource holds the last-known pointer position and the one-shot
// activation flag. The host writes it between frames; frames only read a
// Snapshot. Last value wins, presses are not queued.
type InputSource struct {
	current Input
}

// NewInputSource creates an input source with no pointer and no activation.
func NewInputSource() *InputSource {
	return &InputSource{}
}

// MovePointer records a pointer position in arena units.
func (s *InputSource) MovePointer(x, y float64) {
	s.current.Pointer = core.Point{X: x, Y: y}
	s.current.HasPointer = true
}

// NudgePointer moves the pointer horizontally by dx and keeps it within
// [minX, maxX]. Without a known pointer the nudge starts from origin.
func (s *InputSource) NudgePointer(dx float64, origin core.Point, minX, maxX float64) {
	p := origin
	if s.current.HasPointer {
		p = s.current.Pointer
	}
	s.MovePointer(core.ClampF(p.X+dx, minX, maxX), p.Y)
}

// Activate requests a launch on the next frame.
func (s *InputSource) Activate() {
	s.current.Activated = true
}

// Snapshot returns the state to be read by the next frame.
func (s *InputSource) Snapshot() Input {
	return s.current
}

// ClearActivation drops the one-shot activation. Called at the end of every
// frame whether or not the activation was consumed.
func (s *InputSource) ClearActivation() {
	s.current.Activated = false
}
