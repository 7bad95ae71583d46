package core

import "math"

// Color is an ANSI 256-color code for a screen cell.
// Zero means the terminal's default foreground.
type Color uint8

// Named colors used by HUD and overlays.
const (
	ColorDefault Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7
	ColorGray    Color = 245
	ColorOrange  Color = 208

	ColorBrightWhite Color = 15
)

// RGB maps a color with components in [0, 1] onto the 6x6x6 ANSI color cube.
// Components outside the range are clamped.
func RGB(r, g, b float64) Color {
	return Color(16 + 36*cubeLevel(r) + 6*cubeLevel(g) + cubeLevel(b))
}

func cubeLevel(v float64) int {
	return int(math.Round(ClampF(v, 0, 1) * 5))
}
