package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball is the projectile. A ball is parked (speed 0) until the player
// activates it, then moves at StartSpeed along (VX, VY) until it leaves
// through the bottom edge.
type Ball struct {
	body
	Radius     float64
	Speed      float64
	StartSpeed float64
	VX, VY     float64 // Direction components, never renormalized
	Color      core.Color
}

func (b *Ball) Kind() Kind { return KindBall }

// Bounds returns false: balls are not collision targets.
func (b *Ball) Bounds() (core.Rect, bool) {
	return core.Rect{}, false
}

// Parked reports whether the ball is waiting for launch.
func (b *Ball) Parked() bool {
	return b.Speed == 0
}

// Update runs one frame of ball physics: pre-launch aiming, collision
// response, wall response and integration, in that order.
func (b *Ball) Update(ctx *UpdateContext) {
	if b.Parked() {
		if ctx.Input.HasPointer {
			b.X = ctx.Input.Pointer.X
		}
		if ctx.Input.Activated {
			b.Speed = b.StartSpeed
			ctx.world.stats.Launches++
		}
	}

	b.collide(ctx)
	b.bounceWalls(ctx)
	b.integrate(ctx)
}

// collide scans every live entity and applies the response for its kind.
func (b *Ball) collide(ctx *UpdateContext) {
	center := b.Position()
	entities := ctx.Entities()
	for i := 0; i < len(entities); i++ {
		e := entities[i]
		if e.Removed() {
			continue
		}
		rect, ok := e.Bounds()
		if !ok || !Overlaps(center, b.Radius, rect) {
			continue
		}

		switch e.Kind() {
		case KindPaddle:
			b.VX, b.VY = PaddleBounce(b.X, rect, ctx.Bounce)
		case KindBlock:
			ctx.ChangeScore()
			e.Remove()
			ctx.world.stats.BlocksDestroyed++
			b.VX, b.VY, _ = BlockBounce(center, b.VX, b.VY, rect)
		}
	}
}

// bounceWalls compares the position against the clamp values written by the
// previous frame's integrate step. Equality, not inequality, is intended: a
// ball only counts as touching a wall once it has been clamped onto it.
func (b *Ball) bounceWalls(ctx *UpdateContext) {
	switch {
	case b.X == b.Radius || b.X == ctx.Width-b.Radius:
		b.VX = -b.VX
	case b.Y == b.Radius:
		b.VY = -b.VY
	case b.Y == ctx.Height-b.Radius:
		b.Remove()
		ctx.world.stats.BallsLost++
		ctx.Spawn(ctx.world.newBall())
	}
}

func (b *Ball) integrate(ctx *UpdateContext) {
	b.X += b.VX * b.Speed * ctx.Delta
	b.Y += b.VY * b.Speed * ctx.Delta
	b.X = core.ClampF(b.X, b.Radius, ctx.Width-b.Radius)
	b.Y = core.ClampF(b.Y, b.Radius, ctx.Height-b.Radius)
}

func (b *Ball) Draw(r Renderer) {
	r.FillCircle(b.X, b.Y, b.Radius, b.Color)
}
