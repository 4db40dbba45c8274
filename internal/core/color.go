package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
	ColorDarkGray
)

// Golf surface palette.
const (
	ColorTurf     = ColorGreen
	ColorBall     = ColorBrightWhite
	ColorHole     = ColorDarkGray
	ColorWall     = ColorYellow
	ColorWallDark = ColorGray
	ColorArrow    = ColorBrightYellow
	ColorMeter    = ColorYellow
	ColorHUD      = ColorWhite
)
