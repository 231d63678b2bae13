package core

// Color is a hex foreground colour such as "#ff8800".
// The zero value means the terminal's default foreground.
type Color string

// ColorDefault leaves the cell unstyled.
const ColorDefault Color = ""

// Colours used by the platform for non-game chrome.
const (
	ColorHUD    Color = "#c0c0c0"
	ColorBorder Color = "#5f5f87"
	ColorBall   Color = "#ffffff"
	ColorPaddle Color = "#87d7ff"
)
