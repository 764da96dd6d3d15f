package core

import "fmt"

// Color is a "#rrggbb" hex color. The zero value means "no color" and is
// rendered with the terminal's default foreground.
type Color string

// Colors used by the arena and its entities.
const (
	ColorNone   Color = ""
	ColorBlack  Color = "#000000"
	ColorWhite  Color = "#ffffff"
	ColorPaddle Color = "#222222"
	ColorBorder Color = "#555555"
)

// RGB builds a Color from a packed 0xrrggbb value.
func RGB(v uint32) Color {
	return Color(fmt.Sprintf("#%06x", v&0xffffff))
}
