// Package canvas provides the 2D drawing surface the game renders into.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
)

// Surface is the abstract 2D rendering target the game draws on.
// Coordinates are logical pixels with the origin at the top-left.
type Surface interface {
	// ClearRect resets a rectangle to fully transparent.
	ClearRect(x, y, w, h float64)

	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(x, y, r float64, c color.Color)

	// DrawImage copies the source rectangle (sx, sy, sw, sh) of src onto the
	// destination rectangle (dx, dy, dw, dh), scaling if the sizes differ.
	DrawImage(src image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64)

	// FillText draws text with its baseline starting at (x, y).
	FillText(text string, x, y float64)
}

// Text is a FillText call recorded for the current frame.
type Text struct {
	Text string
	X, Y float64
}

// Canvas is a Surface backed by an in-memory RGBA image.
type Canvas struct {
	dc        *gg.Context
	textColor color.Color
	texts     []Text
}

// New creates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)
	return &Canvas{
		dc:        dc,
		textColor: color.White,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.dc.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.dc.Height()
}

// SetTextColor sets the color used by FillText.
func (c *Canvas) SetTextColor(col color.Color) {
	c.textColor = col
}

// ClearRect resets the rectangle to transparent. Clearing the whole canvas
// also forgets the text recorded for the previous frame.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	r := pixelRect(x, y, w, h)
	xdraw.Draw(c.rgba(), r, image.Transparent, image.Point{}, xdraw.Src)

	if r.Min.X <= 0 && r.Min.Y <= 0 && r.Max.X >= c.Width() && r.Max.Y >= c.Height() {
		c.texts = c.texts[:0]
	}
}

// FillCircle draws an anti-aliased filled circle.
func (c *Canvas) FillCircle(x, y, r float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(x, y, r)
	c.dc.Fill()
}

// DrawImage blits a sub-rectangle of src, compositing over existing pixels.
func (c *Canvas) DrawImage(src image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	srcRect := pixelRect(sx, sy, sw, sh).Add(src.Bounds().Min)
	dstRect := pixelRect(dx, dy, dw, dh)
	if srcRect.Empty() || dstRect.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(c.rgba(), dstRect, src, srcRect, xdraw.Over, nil)
}

// FillText draws text in the current text color and records it.
func (c *Canvas) FillText(text string, x, y float64) {
	c.dc.SetColor(c.textColor)
	c.dc.DrawString(text, x, y)
	c.texts = append(c.texts, Text{Text: text, X: x, Y: y})
}

// Texts returns the FillText calls made since the last full clear.
func (c *Canvas) Texts() []Text {
	return c.texts
}

// Image returns the backing image. It is updated in place by later draws.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the current canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	return nil
}

// rgba returns the backing image as *image.RGBA for direct pixel operations.
func (c *Canvas) rgba() xdraw.Image {
	return c.dc.Image().(xdraw.Image)
}

// pixelRect rounds a logical rectangle to whole pixels.
func pixelRect(x, y, w, h float64) image.Rectangle {
	x0 := int(math.Round(x))
	y0 := int(math.Round(y))
	x1 := int(math.Round(x + w))
	y1 := int(math.Round(y + h))
	return image.Rect(x0, y0, x1, y1)
}
