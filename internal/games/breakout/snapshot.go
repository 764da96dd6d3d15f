package breakout

import "math"

// BallState is the captured state of one ball.
type BallState struct {
	X, Y, VX, VY, Speed float64
}

// Snapshot contains the simulation state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Frame           uint64
	Score           int
	BlocksRemaining int
	PaddleX         float64
	Balls           []BallState
	Entities        int
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:           w.stats.Frames,
		Score:           w.score,
		BlocksRemaining: w.BlockCount(),
		Entities:        len(w.entities),
	}
	if w.paddle != nil {
		snap.PaddleX = w.paddle.X
	}
	for _, b := range w.Balls() {
		snap.Balls = append(snap.Balls, BallState{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, Speed: b.Speed})
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlocksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Entities)        //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)

	for _, b := range snap.Balls {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + math.Float64bits(b.VX)
		h = h*31 + math.Float64bits(b.VY)
		h = h*31 + math.Float64bits(b.Speed)
	}

	return h
}
