package core

// Color is an ANSI 256-color code for a screen cell.
// 0 is treated as the terminal default.
type Color uint8

// Named codes used by HUD and overlay text.
const (
	ColorDefault Color = 0
	ColorGray    Color = 245
	ColorWhite   Color = 15
	ColorGreen   Color = 10
	ColorYellow  Color = 11
)

// RGBColor converts an RGB triple in [0,1] to the nearest code in the
// 6×6×6 ANSI color cube (codes 16..231).
func RGBColor(r, g, b float64) Color {
	return Color(16 + 36*quantize6(r) + 6*quantize6(g) + quantize6(b))
}

func quantize6(v float64) uint8 {
	v = ClampF(v, 0, 1)
	q := int(v*5 + 0.5)
	return uint8(q)
}
