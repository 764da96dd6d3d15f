package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Block is a static target, removed on first contact with a ball.
type Block struct {
	body
	Width, Height float64
	Color         core.Color
}

func (b *Block) Kind() Kind { return KindBlock }

func (b *Block) Bounds() (core.Rect, bool) {
	return core.NewRect(b.X, b.Y, b.Width, b.Height), true
}

func (b *Block) Update(*UpdateContext) {}

func (b *Block) Draw(r Renderer) {
	r.FillRect(b.X, b.Y, b.Width, b.Height, b.Color)
}
