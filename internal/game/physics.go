package game

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Step advances the simulation by one fixed tick.
// Stages run in order: brick collisions, ball movement, paddle movement.
// When the ball is missed the session ends and the game resets before
// returning OutcomeGameOver.
func (g *Game) Step(in core.InputState) Outcome {
	g.destroyed += CollideBricks(&g.state, g.cfg.Bricks)

	if MoveBall(&g.state, g.cfg.Playfield) == OutcomeGameOver {
		g.Reset()
		return OutcomeGameOver
	}

	MovePaddle(&g.state, in, g.cfg.Playfield)
	g.tickCount++
	return OutcomePlaying
}

// CollideBricks destroys every ACTIVE brick whose interior contains the
// ball's center and inverts the ball's vertical velocity once per hit.
// Returns the number of bricks destroyed.
func CollideBricks(s *State, cfg config.BricksConfig) int {
	hits := 0
	for c := range s.Bricks {
		for r := range s.Bricks[c] {
			brick := &s.Bricks[c][r]
			if brick.Status == BrickDestroyed {
				continue
			}

			rect := core.NewRect(float64(brick.X), float64(brick.Y), float64(cfg.Width), float64(cfg.Height))
			if rect.ContainsStrict(s.Ball.X, s.Ball.Y) {
				s.Ball.DY = -s.Ball.DY
				brick.Status = BrickDestroyed
				hits++
			}
		}
	}
	return hits
}

// MoveBall bounces the ball off the walls and paddle and then advances it by
// its velocity. A ball that would pass the paddle plane outside the paddle,
// or reach the floor, ends the session: the state is marked game over and the
// ball is not moved.
func MoveBall(s *State, pf config.PlayfieldConfig) Outcome {
	b := &s.Ball
	w := float64(pf.Width)
	h := float64(pf.Height)
	nextX := b.X + b.DX
	nextY := b.Y + b.DY

	// Side walls
	if nextX > w-b.Radius || nextX < b.Radius {
		b.DX = -b.DX
	}

	// Ceiling
	if nextY < b.Radius {
		b.DY = -b.DY
	}

	// Paddle or floor
	overPaddle := s.Paddle.Rect().SpansX(b.X)
	pastPaddle := nextY > s.Paddle.Y
	switch {
	case overPaddle && pastPaddle:
		b.DY = -b.DY
	case nextY > h-b.Radius || pastPaddle:
		s.Phase = StateGameOver
		return OutcomeGameOver
	}

	b.X += b.DX
	b.Y += b.DY
	return OutcomePlaying
}

// MovePaddle moves the paddle by its speed towards the held direction,
// never past the playfield edges. Right takes priority when both are held.
func MovePaddle(s *State, in core.InputState, pf config.PlayfieldConfig) {
	p := &s.Paddle
	maxX := float64(pf.Width) - p.Width

	switch {
	case in.Held(core.DirRight) && p.X < maxX:
		p.X = core.ClampF(p.X+p.Speed, 0, maxX)
	case in.Held(core.DirLeft) && p.X > 0:
		p.X = core.ClampF(p.X-p.Speed, 0, maxX)
	}
}
