// Package sprites builds the paddle and bricks sprite sheets in memory.
// The game only ever reads fixed sub-rectangles from them, so the sheets are
// drawn once at startup instead of being decoded from files.
package sprites

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Sheets holds the two pre-rendered sprite sheets.
type Sheets struct {
	Paddle image.Image
	Bricks image.Image
}

// PaddleSpec describes where the paddle tile sits in its sheet.
type PaddleSpec struct {
	X, Y          int // Clip origin
	Width, Height int
}

// BrickSpec describes the bricks strip: Colors tiles of Width x Height laid
// out left to right, tile i starting at x = i*Width.
type BrickSpec struct {
	Width, Height int
	Colors        int
}

// Build renders both sheets.
func Build(p PaddleSpec, b BrickSpec) Sheets {
	return Sheets{
		Paddle: PaddleSheet(p),
		Bricks: BrickSheet(b),
	}
}

// PaddleSheet renders a sheet containing the paddle tile at (p.X, p.Y).
// The rest of the sheet is transparent.
func PaddleSheet(p PaddleSpec) image.Image {
	w := core.Max(p.X+p.Width, 1)
	h := core.Max(p.Y+p.Height, 1)
	dc := gg.NewContext(w, h)

	x, y := float64(p.X), float64(p.Y)
	pw, ph := float64(p.Width), float64(p.Height)
	r := ph / 2

	// Silver body
	grad := gg.NewLinearGradient(x, y, x, y+ph)
	grad.AddColorStop(0, core.ColorWhite.RGBA())
	grad.AddColorStop(0.5, core.RGB(0xb8, 0xc0, 0xc8).RGBA())
	grad.AddColorStop(1, core.RGB(0x5a, 0x62, 0x6a).RGBA())
	dc.SetFillStyle(grad)
	dc.DrawRoundedRectangle(x, y, pw, ph, r)
	dc.Fill()

	// Red caps
	capW := pw / 6
	dc.SetColor(core.BrickPalette[0].RGBA())
	dc.DrawRoundedRectangle(x, y, capW, ph, r)
	dc.Fill()
	dc.DrawRoundedRectangle(x+pw-capW, y, capW, ph, r)
	dc.Fill()

	return dc.Image()
}

// BrickSheet renders b.Colors brick tiles side by side, one per palette entry.
func BrickSheet(b BrickSpec) image.Image {
	colors := core.Clamp(b.Colors, 1, len(core.BrickPalette))
	dc := gg.NewContext(core.Max(b.Width*colors, 1), core.Max(b.Height, 1))

	bw, bh := float64(b.Width), float64(b.Height)
	for i := 0; i < colors; i++ {
		base := core.BrickPalette[i]
		x := float64(i * b.Width)

		dc.SetColor(base.RGBA())
		dc.DrawRectangle(x, 0, bw, bh)
		dc.Fill()

		// Bevel: light top-left, dark bottom-right
		dc.SetLineWidth(1)
		dc.SetColor(shade(base, 1.4).RGBA())
		dc.DrawLine(x+0.5, 0.5, x+bw-0.5, 0.5)
		dc.DrawLine(x+0.5, 0.5, x+0.5, bh-0.5)
		dc.Stroke()
		dc.SetColor(shade(base, 0.55).RGBA())
		dc.DrawLine(x+0.5, bh-0.5, x+bw-0.5, bh-0.5)
		dc.DrawLine(x+bw-0.5, 0.5, x+bw-0.5, bh-0.5)
		dc.Stroke()
	}

	return dc.Image()
}

// shade scales a color's channels by f, saturating at 255.
func shade(c core.Color, f float64) core.Color {
	ch := func(v uint8) uint8 {
		return uint8(core.ClampF(float64(v)*f, 0, 255)) //#nosec G115 -- clamped to byte range
	}
	return core.RGB(ch(c.R), ch(c.G), ch(c.B))
}
