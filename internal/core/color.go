package core

// Color identifies a palette entry for a screen cell. The platform layer maps
// each entry to a concrete terminal color; game code never deals in ANSI
// codes directly.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	// Dim shades for the backdrop gradient and scanlines.
	ColorMidnight
	ColorDeepBlue
	ColorDeepPurple
	ColorScanline
)
