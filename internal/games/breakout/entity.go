// Package breakout implements the ball/paddle/block simulation: the entity
// model, collision resolution, the World that owns the entities and the frame
// loop that drives it. It draws through the Renderer interface and has no
// terminal dependencies.
package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Kind discriminates entity variants for collision dispatch.
type Kind int

const (
	KindPaddle Kind = iota
	KindBall
	KindBlock
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Entity is a game object owned by a World.
type Entity interface {
	Kind() Kind
	Position() core.Point
	// Bounds returns the collidable rectangle. Entities without one (balls)
	// return false and are skipped by the collision scan.
	Bounds() (core.Rect, bool)
	Update(ctx *UpdateContext)
	Draw(r Renderer)
	// Removed reports whether the entity is flagged for removal.
	Removed() bool
	// Remove flags the entity; the World drops it on the next prune pass.
	// The flag is never cleared.
	Remove()
}

// body is the state shared by every entity.
type body struct {
	X, Y    float64
	removed bool
}

func (b *body) Position() core.Point {
	return core.Point{X: b.X, Y: b.Y}
}

func (b *body) Removed() bool {
	return b.removed
}

func (b *body) Remove() {
	b.removed = true
}
