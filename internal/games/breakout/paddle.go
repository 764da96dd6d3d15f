package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Paddle is the player's bat. Its center follows the pointer directly, with
// no velocity or momentum.
type Paddle struct {
	body
	Width, Height float64
	Color         core.Color
	BorderColor   core.Color
}

func (p *Paddle) Kind() Kind { return KindPaddle }

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() (core.Rect, bool) {
	return core.NewRect(p.X, p.Y, p.Width, p.Height), true
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Update centers the paddle on the pointer and keeps it inside the arena.
func (p *Paddle) Update(ctx *UpdateContext) {
	if ctx.Input.HasPointer {
		p.X = ctx.Input.Pointer.X - p.Width/2
	}
	p.X = core.ClampF(p.X, 0, ctx.Width-p.Width)
}

func (p *Paddle) Draw(r Renderer) {
	r.FillRect(p.X, p.Y, p.Width, p.Height, p.Color)
	r.StrokeRect(p.X, p.Y, p.Width, p.Height, p.BorderColor)
}
