package tui

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// newTestSurface maps the 640x480 arena onto 64x48 cells, one cell per ten units.
func newTestSurface() *Surface {
	return NewSurface(core.NewScreen(64, 48), 640, 480)
}

func TestSurfaceFillRect(t *testing.T) {
	s := newTestSurface()
	s.FillRect(23, 23, 54, 20, "#aaaaaa")
	screen := s.Screen()

	tests := []struct {
		x, y     int
		expected rune
	}{
		{2, 2, glyphFill},
		{7, 4, glyphFill},
		{8, 2, ' '},
		{2, 5, ' '},
		{1, 2, ' '},
	}

	for _, tc := range tests {
		if got := screen.GetCell(tc.x, tc.y).Rune; got != tc.expected {
			t.Errorf("GetCell(%d, %d).Rune = %q, expected %q", tc.x, tc.y, got, tc.expected)
		}
	}
	if c := screen.GetCell(2, 2); c.Color != "#aaaaaa" || c.Alpha != 1 {
		t.Errorf("cell = %+v, expected opaque #aaaaaa", c)
	}
}

func TestSurfaceStrokeThinRect(t *testing.T) {
	// On an 80x24 grid the paddle covers cells [35, 45) x [22, 24).
	s := NewSurface(core.NewScreen(80, 24), 640, 480)
	s.FillRect(280, 456, 80, 16, core.ColorPaddle)
	s.StrokeRect(280, 456, 80, 16, core.ColorBorder)
	screen := s.Screen()

	if got := screen.GetCell(35, 22).Rune; got != glyphLeft {
		t.Errorf("left cap = %q, expected %q", got, glyphLeft)
	}
	if got := screen.GetCell(44, 23).Rune; got != glyphRight {
		t.Errorf("right cap = %q, expected %q", got, glyphRight)
	}
	if c := screen.GetCell(40, 22); c.Color != core.ColorPaddle {
		t.Errorf("interior color = %q, expected %q", c.Color, core.ColorPaddle)
	}
}

func TestSurfaceFillCircle(t *testing.T) {
	s := NewSurface(core.NewScreen(8, 6), 640, 480)
	s.FillCircle(320, 451, 5, core.ColorWhite)

	if got := s.Screen().GetCell(4, 5).Rune; got != glyphBall {
		t.Errorf("center cell = %q, expected %q", got, glyphBall)
	}
}

func TestSurfaceOverlayFades(t *testing.T) {
	s := newTestSurface()
	s.FillRect(0, 0, 10, 10, core.ColorWhite)

	s.Overlay(core.ColorBlack, 0.3)
	if c := s.Screen().GetCell(0, 0); c.Alpha < 0.69 || c.Alpha > 0.71 {
		t.Errorf("alpha after one overlay = %g, expected 0.7", c.Alpha)
	}

	for range 10 {
		s.Overlay(core.ColorBlack, 0.3)
	}
	if got := s.Screen().GetCell(0, 0).Rune; got != ' ' {
		t.Errorf("cell after repeated overlays = %q, expected cleared", got)
	}
}

func TestSurfaceToArena(t *testing.T) {
	s := newTestSurface()

	p := s.ToArena(0, 0)
	if p.X != 5 || p.Y != 5 {
		t.Errorf("ToArena(0, 0) = %v, expected (5, 5)", p)
	}

	empty := NewSurface(core.NewScreen(0, 0), 640, 480)
	if p := empty.ToArena(3, 3); p != (core.Point{}) {
		t.Errorf("ToArena on empty screen = %v, expected origin", p)
	}
}

func TestShade(t *testing.T) {
	tests := []struct {
		name     string
		cell     core.Cell
		expected string
	}{
		{"opaque", core.Cell{Rune: '█', Color: "#ff0000", Alpha: 1}, "#ff0000"},
		{"half faded", core.Cell{Rune: '█', Color: "#ffffff", Alpha: 0.5}, "#808080"},
		{"no color", core.Cell{Rune: 'x', Alpha: 1}, ""},
		{"blank", core.Cell{Rune: ' ', Color: "#ffffff", Alpha: 1}, ""},
		{"bad hex", core.Cell{Rune: 'x', Color: "white", Alpha: 1}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := shade(tc.cell); got != tc.expected {
				t.Errorf("shade() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestRenderScreenPlain(t *testing.T) {
	screen := core.NewScreen(4, 2)
	screen.DrawText(0, 0, "hi", core.ColorNone)

	if got := RenderScreen(screen); got != "hi  \n    " {
		t.Errorf("RenderScreen() = %q, expected %q", got, "hi  \n    ")
	}
}
