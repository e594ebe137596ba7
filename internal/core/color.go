package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal color.
type Color uint8

// Palette used by the catcher screens.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorAqua // bubble outline and number
	ColorGray
)
