package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration: a 640x480 arena
// with a 10x10 block grid.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: ArenaConfig{
			Width:  640,
			Height: 480,
		},
		Clock: ClockConfig{
			MaxStep: 0.05,
		},
		Paddle: PaddleConfig{
			Width:        80,
			Height:       16,
			BottomOffset: 24,
			Color:        "#222222",
			BorderColor:  "#555555",
		},
		Ball: BallConfig{
			Radius:       5,
			StartSpeed:   300,
			BottomOffset: 29,
			LaunchVX:     0.001,
			LaunchVY:     -0.999,
			Color:        "#ffffff",
		},
		Bounce: BounceConfig{
			Gain: 0.025,
			Damp: 0.6,
			Bias: 0.2,
		},
		Blocks: BlocksConfig{
			Rows:       10,
			Cols:       10,
			Width:      54,
			Height:     20,
			OriginX:    23,
			OriginY:    23,
			SpacingX:   60,
			SpacingY:   26,
			ColorBase:  0xaaaaaa,
			ColorRange: 0x404040,
		},
		Scoring: ScoringConfig{
			BlockPoints: 100,
		},
		Render: RenderConfig{
			FadeAlpha: 0.3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
