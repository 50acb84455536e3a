package core

import (
	"fmt"
	"image/color"
)

// Color is an opaque 24-bit RGB color used for terminal cells and drawing.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromColor converts any image color to an opaque Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)} //#nosec G115 -- 16-bit channel shifted to 8 bits
}

// RGBA returns the color as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex returns the color in #rrggbb form, as accepted by lipgloss.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Predefined colors for game elements.
var (
	ColorBlack = RGB(0x00, 0x00, 0x00)
	ColorWhite = RGB(0xff, 0xff, 0xff)
	ColorGray  = RGB(0x8a, 0x8a, 0x8a)
)

// BrickPalette holds one base color per brick tile in the bricks sheet,
// indexed by a brick's color index.
var BrickPalette = [8]Color{
	RGB(0xe5, 0x3b, 0x3b), // red
	RGB(0xf2, 0x8c, 0x28), // orange
	RGB(0xf2, 0xd0, 0x2e), // yellow
	RGB(0x4c, 0xc2, 0x4a), // green
	RGB(0x2e, 0xb8, 0xd6), // cyan
	RGB(0x3b, 0x6c, 0xe5), // blue
	RGB(0x9b, 0x4c, 0xe0), // purple
	RGB(0xe0, 0x4c, 0xb4), // pink
}
