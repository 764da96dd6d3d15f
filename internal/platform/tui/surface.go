package tui

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Glyphs used to paint the arena.
const (
	glyphFill  = '█'
	glyphBall  = '●'
	glyphLeft  = '▐'
	glyphRight = '▌'
)

// minAlpha is the intensity below which a fading cell is cleared.
const minAlpha = 0.05

// Surface is a breakout.Renderer that paints arena-unit draw commands onto
// a character screen, scaling the fixed arena to the current cell grid.
type Surface struct {
	screen         *core.Screen
	arenaW, arenaH float64
}

// NewSurface creates a surface over screen for an arena of the given size.
func NewSurface(screen *core.Screen, arenaW, arenaH float64) *Surface {
	return &Surface{screen: screen, arenaW: arenaW, arenaH: arenaH}
}

// Screen returns the underlying cell buffer.
func (s *Surface) Screen() *core.Screen {
	return s.screen
}

// scale returns cells per arena unit on each axis.
func (s *Surface) scale() (sx, sy float64) {
	return float64(s.screen.Width()) / s.arenaW, float64(s.screen.Height()) / s.arenaH
}

// ToArena converts a cell coordinate to the arena point at the cell's center.
func (s *Surface) ToArena(col, row int) core.Point {
	sx, sy := s.scale()
	if sx == 0 || sy == 0 {
		return core.Point{}
	}
	return core.Point{
		X: (float64(col) + 0.5) / sx,
		Y: (float64(row) + 0.5) / sy,
	}
}

// visible reports whether a rectangle touches the arena at all.
func (s *Surface) visible(x, y, w, h float64) bool {
	arena := core.NewRect(0, 0, s.arenaW, s.arenaH)
	return arena.Intersects(core.NewRect(x, y, w, h))
}

// cellSpan maps the arena rectangle to a half-open cell range covering at
// least one cell.
func (s *Surface) cellSpan(x, y, w, h float64) (x0, y0, x1, y1 int) {
	sx, sy := s.scale()
	x0 = int(math.Floor(x * sx))
	y0 = int(math.Floor(y * sy))
	x1 = core.Max(int(math.Ceil((x+w)*sx)), x0+1)
	y1 = core.Max(int(math.Ceil((y+h)*sy)), y0+1)
	return x0, y0, x1, y1
}

// FillRect fills every cell the rectangle touches.
func (s *Surface) FillRect(x, y, w, h float64, c core.Color) {
	if !s.visible(x, y, w, h) {
		return
	}
	x0, y0, x1, y1 := s.cellSpan(x, y, w, h)
	s.screen.FillCells(x0, y0, x1, y1, glyphFill, c)
}

// StrokeRect outlines the rectangle. Rectangles thinner than three cells
// only get their end caps so the fill stays visible.
func (s *Surface) StrokeRect(x, y, w, h float64, c core.Color) {
	if !s.visible(x, y, w, h) {
		return
	}
	x0, y0, x1, y1 := s.cellSpan(x, y, w, h)
	for row := y0; row < y1; row++ {
		s.screen.Set(x0, row, glyphLeft, c)
		s.screen.Set(x1-1, row, glyphRight, c)
	}
	if y1-y0 < 3 {
		return
	}
	s.screen.FillCells(x0, y0, x1, y0+1, glyphFill, c)
	s.screen.FillCells(x0, y1-1, x1, y1, glyphFill, c)
}

// FillCircle fills the cells whose centers lie inside the circle. The cell
// under the center is always painted.
func (s *Surface) FillCircle(x, y, radius float64, c core.Color) {
	sx, sy := s.scale()
	x0, y0, x1, y1 := s.cellSpan(x-radius, y-radius, 2*radius, 2*radius)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			p := s.ToArena(col, row)
			dx, dy := p.X-x, p.Y-y
			if dx*dx+dy*dy <= radius*radius {
				s.screen.Set(col, row, glyphBall, c)
			}
		}
	}
	s.screen.Set(int(math.Floor(x*sx)), int(math.Floor(y*sy)), glyphBall, c)
}

// Overlay fades every cell towards the background. Terminal cells have no
// background to tint, so only black overlays are meaningful and c is ignored.
func (s *Surface) Overlay(_ core.Color, alpha float64) {
	s.screen.Fade(alpha, minAlpha)
}
