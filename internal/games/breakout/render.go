package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Renderer consumes draw commands in arena units.
type Renderer interface {
	FillRect(x, y, w, h float64, c core.Color)
	StrokeRect(x, y, w, h float64, c core.Color)
	FillCircle(x, y, radius float64, c core.Color)
	// Overlay paints a translucent layer of the given color over the whole
	// arena. With a partial alpha, earlier frames fade out into trails.
	Overlay(c core.Color, alpha float64)
}

// ScoreDisplay receives the formatted score whenever it changes.
type ScoreDisplay interface {
	ShowScore(text string)
}

// ScoreDisplayFunc adapts a function to the ScoreDisplay interface.
type ScoreDisplayFunc func(text string)

// ShowScore calls f(text).
func (f ScoreDisplayFunc) ShowScore(text string) {
	f(text)
}

// discard is a Renderer that ignores every command.
type discard struct{}

func (discard) FillRect(_, _, _, _ float64, _ core.Color) {}
func (discard) StrokeRect(_, _, _, _ float64, _ core.Color) {}
func (discard) FillCircle(_, _, _ float64, _ core.Color) {}
func (discard) Overlay(_ core.Color, _ float64) {}

// Discard is a Renderer that draws nothing.
var Discard Renderer = discard{}
