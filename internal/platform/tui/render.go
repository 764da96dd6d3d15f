package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// alphaSteps quantizes cell intensity so adjacent fading cells share a style.
const alphaSteps = 10

// shade returns the hex foreground of a cell after blending its color
// towards black by its remaining intensity. An empty result means the
// terminal default.
func shade(cell core.Cell) string {
	if cell.Color == core.ColorNone || cell.Rune == ' ' {
		return ""
	}
	c, err := colorful.Hex(string(cell.Color))
	if err != nil {
		return ""
	}
	alpha := core.ClampF(float64(int(cell.Alpha*alphaSteps+0.5))/alphaSteps, 0, 1)
	return colorful.Color{}.BlendRgb(c, alpha).Clamped().Hex()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same shade to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := shade(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if shade(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == "" {
				sb.WriteString(run.String())
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(start))
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
