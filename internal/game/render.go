package game

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/tui-breakout/internal/canvas"
)

// Fill colors of the ball and of overlay text.
var (
	BallColor color.Color = color.White
	TextColor color.Color = color.White
)

// FPS text position
const (
	fpsTextX = 5
	fpsTextY = 10
)

// Render draws the current session onto the surface: ball, paddle, every
// ACTIVE brick and the frames-per-second overlay.
func (g *Game) Render(dst canvas.Surface, fps int) {
	pf := g.cfg.Playfield
	dst.ClearRect(0, 0, float64(pf.Width), float64(pf.Height))

	g.renderBall(dst)
	g.renderPaddle(dst)
	g.renderBricks(dst)

	dst.FillText(fmt.Sprintf("FPS: %d", fps), fpsTextX, fpsTextY)
}

// renderBall draws the ball as a filled circle.
func (g *Game) renderBall(dst canvas.Surface) {
	b := g.state.Ball
	dst.FillCircle(b.X, b.Y, b.Radius, BallColor)
}

// renderPaddle copies the paddle tile from the paddle sheet.
func (g *Game) renderPaddle(dst canvas.Surface) {
	p := g.state.Paddle
	clipX := float64(g.cfg.Paddle.SpriteX)
	clipY := float64(g.cfg.Paddle.SpriteY)
	dst.DrawImage(g.sheets.Paddle, clipX, clipY, p.Width, p.Height, p.X, p.Y, p.Width, p.Height)
}

// renderBricks copies each ACTIVE brick's color tile from the bricks sheet.
func (g *Game) renderBricks(dst canvas.Surface) {
	bw := float64(g.cfg.Bricks.Width)
	bh := float64(g.cfg.Bricks.Height)

	for _, column := range g.state.Bricks {
		for _, brick := range column {
			if brick.Status == BrickDestroyed {
				continue
			}
			clipX := float64(brick.Color) * bw
			dst.DrawImage(g.sheets.Bricks, clipX, 0, bw, bh, float64(brick.X), float64(brick.Y), bw, bh)
		}
	}
}
