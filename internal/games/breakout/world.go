package breakout

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Stats counts simulation events since the world was initialized.
type Stats struct {
	Frames          uint64
	Launches        int
	BallsLost       int
	BlocksDestroyed int
}

// UpdateContext is passed to every entity update. It carries the frame's
// delta and input snapshot and gives entities access to the world.
type UpdateContext struct {
	Delta         float64 // Seconds to simulate
	Input         Input
	Width, Height float64 // Arena size
	Bounce        config.BounceConfig

	world *World
}

// Entities returns the live entity collection, including entities flagged
// for removal that have not been pruned yet.
func (c *UpdateContext) Entities() []Entity {
	return c.world.entities
}

// Spawn adds an entity to the world. It is not updated until the next frame.
func (c *UpdateContext) Spawn(e Entity) {
	c.world.AddEntity(e)
}

// ChangeScore awards points for a destroyed block.
func (c *UpdateContext) ChangeScore() {
	c.world.ChangeScore()
}

// World owns the entity collection, drives per-frame update and draw, and
// keeps the score.
type World struct {
	cfg      config.BreakoutConfig
	rng      *SimpleRNG
	entities []Entity
	paddle   *Paddle

	score        int
	scoreChanged bool
	display      ScoreDisplay
	stats        Stats
}

// NewWorld validates cfg and returns an empty world. Call Initialize to
// populate it.
func NewWorld(cfg config.BreakoutConfig, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	return &World{
		cfg:          cfg,
		rng:          NewSimpleRNG(seed),
		scoreChanged: true,
	}, nil
}

// SetScoreDisplay sets the collaborator that receives score text.
func (w *World) SetScoreDisplay(d ScoreDisplay) {
	w.display = d
}

// Initialize creates the paddle, one parked ball and the block grid.
// Any previous contents and score are discarded.
func (w *World) Initialize() {
	w.entities = w.entities[:0]
	w.score = 0
	w.scoreChanged = true
	w.stats = Stats{}

	pc := w.cfg.Paddle
	w.paddle = &Paddle{
		body:        body{X: w.cfg.Arena.Width/2 - pc.Width/2, Y: w.cfg.Arena.Height - pc.BottomOffset},
		Width:       pc.Width,
		Height:      pc.Height,
		Color:       core.Color(pc.Color),
		BorderColor: core.Color(pc.BorderColor),
	}
	w.AddEntity(w.paddle)
	w.AddEntity(w.newBall())

	bc := w.cfg.Blocks
	for j := range bc.Rows {
		for i := range bc.Cols {
			w.AddEntity(&Block{
				body:   body{X: float64(i)*bc.SpacingX + bc.OriginX, Y: float64(j)*bc.SpacingY + bc.OriginY},
				Width:  bc.Width,
				Height: bc.Height,
				Color:  w.blockColor(),
			})
		}
	}
}

// blockColor picks a random color in [ColorBase, ColorBase+ColorRange).
func (w *World) blockColor() core.Color {
	bc := w.cfg.Blocks
	offset := uint32(w.rng.Float64() * float64(bc.ColorRange))
	return core.RGB(bc.ColorBase + offset)
}

// newBall returns a parked ball at the spawn point.
func (w *World) newBall() *Ball {
	bc := w.cfg.Ball
	return &Ball{
		body:       body{X: w.cfg.Arena.Width / 2, Y: w.cfg.Arena.Height - bc.BottomOffset},
		Radius:     bc.Radius,
		StartSpeed: bc.StartSpeed,
		VX:         bc.LaunchVX,
		VY:         bc.LaunchVY,
		Color:      core.Color(bc.Color),
	}
}

// AddEntity appends an entity. Collection order is update and collision-scan
// order; draw order is the reverse.
func (w *World) AddEntity(e Entity) {
	w.entities = append(w.entities, e)
}

// Update advances the simulation by delta seconds.
// Entities appended during the pass are not updated until the next frame.
// Removal is two-phase: entities are only flagged while iterating and are
// pruned afterwards in reverse index order.
func (w *World) Update(delta float64, in Input) {
	w.stats.Frames++

	ctx := &UpdateContext{
		Delta:  delta,
		Input:  in,
		Width:  w.cfg.Arena.Width,
		Height: w.cfg.Arena.Height,
		Bounce: w.cfg.Bounce,
		world:  w,
	}

	count := len(w.entities)
	for i := 0; i < count; i++ {
		e := w.entities[i]
		if !e.Removed() {
			e.Update(ctx)
		}
	}

	for i := len(w.entities) - 1; i >= 0; i-- {
		if w.entities[i].Removed() {
			w.entities = slices.Delete(w.entities, i, i+1)
		}
	}

	if w.scoreChanged {
		w.scoreChanged = false
		if w.display != nil {
			w.display.ShowScore(fmt.Sprintf("Score: %d", w.score))
		}
	}
}

// ChangeScore adds the per-block increment to the score.
func (w *World) ChangeScore() {
	w.score += w.cfg.Scoring.BlockPoints
	w.scoreChanged = true
}

// Draw fades the previous frame and paints every entity back-to-front.
// It does not modify simulation state.
func (w *World) Draw(r Renderer) {
	r.Overlay(core.ColorBlack, w.cfg.Render.FadeAlpha)
	for i := len(w.entities) - 1; i >= 0; i-- {
		w.entities[i].Draw(r)
	}
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Stats returns event counters since Initialize.
func (w *World) Stats() Stats {
	return w.stats
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.BreakoutConfig {
	return w.cfg
}

// Arena returns the playfield rectangle.
func (w *World) Arena() core.Rect {
	return core.NewRect(0, 0, w.cfg.Arena.Width, w.cfg.Arena.Height)
}

// Entities returns a copy of the entity collection.
func (w *World) Entities() []Entity {
	return slices.Clone(w.entities)
}

// Paddle returns the paddle, or nil before Initialize.
func (w *World) Paddle() *Paddle {
	return w.paddle
}

// Balls returns every ball in the world.
func (w *World) Balls() []*Ball {
	var balls []*Ball
	for _, e := range w.entities {
		if b, ok := e.(*Ball); ok && e.Kind() == KindBall {
			balls = append(balls, b)
		}
	}
	return balls
}

// BlockCount returns the number of blocks in the world.
func (w *World) BlockCount() int {
	n := 0
	for _, e := range w.entities {
		if e.Kind() == KindBlock {
			n++
		}
	}
	return n
}

// Cleared reports whether every block has been destroyed.
func (w *World) Cleared() bool {
	return w.paddle != nil && w.BlockCount() == 0
}
