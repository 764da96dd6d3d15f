// Package config provides YAML-based game configuration loading for
// the breakout simulation.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration violates a
// precondition of the simulation.
var ErrInvalid = errors.New("invalid configuration")

// BreakoutConfig contains all tunables of the simulation.
type BreakoutConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Clock   ClockConfig   `yaml:"clock"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Ball    BallConfig    `yaml:"ball"`
	Bounce  BounceConfig  `yaml:"bounce"`
	Blocks  BlocksConfig  `yaml:"blocks"`
	Scoring ScoringConfig `yaml:"scoring"`
	Render  RenderConfig  `yaml:"render"`
}

// ArenaConfig defines the fixed playfield size in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ClockConfig defines the simulation clock.
type ClockConfig struct {
	MaxStep float64 `yaml:"max_step"` // Ceiling for a single frame delta, in seconds
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from arena bottom to paddle top
	Color        string  `yaml:"color"`
	BorderColor  string  `yaml:"border_color"`
}

// BallConfig defines a freshly spawned ball.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	StartSpeed   float64 `yaml:"start_speed"`   // Units per second once launched
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from arena bottom to parked ball center
	LaunchVX     float64 `yaml:"launch_vx"`
	LaunchVY     float64 `yaml:"launch_vy"`
	Color        string  `yaml:"color"`
}

// BounceConfig defines the paddle deflection mapping
// vx = ((paddleCenter - x) * -gain) * damp + bias.
type BounceConfig struct {
	Gain float64 `yaml:"gain"`
	Damp float64 `yaml:"damp"`
	Bias float64 `yaml:"bias"`
}

// BlocksConfig defines the block grid laid out at initialization.
type BlocksConfig struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	OriginX    float64 `yaml:"origin_x"`
	OriginY    float64 `yaml:"origin_y"`
	SpacingX   float64 `yaml:"spacing_x"`
	SpacingY   float64 `yaml:"spacing_y"`
	ColorBase  uint32  `yaml:"color_base"`  // Packed 0xrrggbb lower bound
	ColorRange uint32  `yaml:"color_range"` // Random offset added to ColorBase
}

// ScoringConfig defines score increments.
type ScoringConfig struct {
	BlockPoints int `yaml:"block_points"`
}

// RenderConfig defines the motion-trail overlay.
type RenderConfig struct {
	FadeAlpha float64 `yaml:"fade_alpha"` // Opacity of the per-frame black overlay
}

// Validate checks the preconditions of the simulation.
// A configuration that fails here must not be used to build a world.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have a positive size, got %gx%g", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Clock.MaxStep <= 0:
		return fmt.Errorf("%w: clock.max_step must be positive, got %g", ErrInvalid, c.Clock.MaxStep)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must have a positive size", ErrInvalid)
	case c.Paddle.Width > c.Arena.Width:
		return fmt.Errorf("%w: paddle width %g exceeds arena width %g", ErrInvalid, c.Paddle.Width, c.Arena.Width)
	case c.Paddle.BottomOffset < c.Paddle.Height || c.Paddle.BottomOffset > c.Arena.Height:
		return fmt.Errorf("%w: paddle.bottom_offset %g puts the paddle outside the arena", ErrInvalid, c.Paddle.BottomOffset)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball.radius must be positive, got %g", ErrInvalid, c.Ball.Radius)
	case 2*c.Ball.Radius > c.Arena.Width || 2*c.Ball.Radius > c.Arena.Height:
		return fmt.Errorf("%w: ball does not fit in the arena", ErrInvalid)
	case c.Ball.BottomOffset <= c.Ball.Radius || c.Ball.BottomOffset > c.Arena.Height-c.Ball.Radius:
		// At bottom_offset == radius a parked ball already sits on the losing edge.
		return fmt.Errorf("%w: ball.bottom_offset %g must be in (radius, height-radius]", ErrInvalid, c.Ball.BottomOffset)
	case c.Ball.StartSpeed <= 0:
		return fmt.Errorf("%w: ball.start_speed must be positive, got %g", ErrInvalid, c.Ball.StartSpeed)
	case c.Blocks.Rows <= 0 || c.Blocks.Cols <= 0:
		return fmt.Errorf("%w: block grid must not be empty, got %dx%d", ErrInvalid, c.Blocks.Rows, c.Blocks.Cols)
	case c.Blocks.Width <= 0 || c.Blocks.Height <= 0:
		return fmt.Errorf("%w: blocks must have a positive size", ErrInvalid)
	case uint64(c.Blocks.ColorBase)+uint64(c.Blocks.ColorRange) > 0x1000000:
		return fmt.Errorf("%w: blocks.color_base + color_range exceeds #ffffff", ErrInvalid)
	case c.Render.FadeAlpha < 0 || c.Render.FadeAlpha > 1:
		return fmt.Errorf("%w: render.fade_alpha must be in [0, 1], got %g", ErrInvalid, c.Render.FadeAlpha)
	}
	return nil
}
