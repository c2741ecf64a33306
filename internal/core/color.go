package core

// Color is a logical foreground color for a screen cell.
// The terminal layer maps it to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSky
	ColorPipe
	ColorPipeCap
	ColorGround
	ColorBird
	ColorBirdDead
	ColorScore
	ColorBanner
	ColorMuted
)
