package tui

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/tui-breakout/internal/canvas"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Fit returns the largest screen size in cells that shows a srcW x srcH
// canvas inside cols x rows cells with square pixels. Each cell shows two
// pixels stacked vertically.
func Fit(srcW, srcH, cols, rows int) (w, h int) {
	if srcW <= 0 || srcH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}

	scale := math.Min(float64(cols)/float64(srcW), float64(rows*2)/float64(srcH))
	w = core.Clamp(int(float64(srcW)*scale), 1, cols)
	h = core.Clamp(int(float64(srcH)*scale/2), 1, rows)
	return w, h
}

// Rasterizer downsamples a canvas onto a half-block screen.
type Rasterizer struct {
	scratch *image.RGBA
}

// Draw scales src to the screen, two pixels per cell, and overlays the
// recorded texts as glyphs at their scaled positions.
func (r *Rasterizer) Draw(screen *core.Screen, src image.Image, texts []canvas.Text, textColor core.Color) {
	w, h := screen.Width(), screen.Height()
	if w == 0 || h == 0 {
		return
	}

	bounds := image.Rect(0, 0, w, h*2)
	if r.scratch == nil || r.scratch.Bounds() != bounds {
		r.scratch = image.NewRGBA(bounds)
	}
	xdraw.BiLinear.Scale(r.scratch, bounds, src, src.Bounds(), xdraw.Src, nil)

	for y := range h {
		for x := range w {
			screen.Set(x, y, core.Cell{
				Rune: core.HalfBlock,
				FG:   core.FromColor(r.scratch.RGBAAt(x, y*2)),
				BG:   core.FromColor(r.scratch.RGBAAt(x, y*2+1)),
			})
		}
	}

	sx := float64(w) / float64(src.Bounds().Dx())
	sy := float64(h) / float64(src.Bounds().Dy())
	for _, t := range texts {
		col := int(t.X * sx)
		row := core.Clamp(int(t.Y*sy), 0, h-1)
		screen.DrawText(col, row, t.Text, textColor)
	}
}
