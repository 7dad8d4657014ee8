package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Predefined colors. The first seven after ColorDefault match the terminal's
// basic palette and are used for the seven tetromino shapes in order.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)
