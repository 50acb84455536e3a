package game

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/sprites"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	sheets := sprites.Build(
		sprites.PaddleSpec{X: cfg.Paddle.SpriteX, Y: cfg.Paddle.SpriteY, Width: int(cfg.Paddle.Width), Height: int(cfg.Paddle.Height)},
		sprites.BrickSpec{Width: cfg.Bricks.Width, Height: cfg.Bricks.Height, Colors: cfg.Bricks.Colors},
	)
	return New(cfg, sheets, seed)
}

func held(dirs ...core.Direction) core.InputState {
	var in core.InputState
	for _, d := range dirs {
		in.SetHeld(d, true)
	}
	return in
}

func TestNewInitialState(t *testing.T) {
	g := newTestGame(t, 1)
	s := g.State()

	if s.Ball.X != 224 || s.Ball.Y != 370 || s.Ball.DX != -3 || s.Ball.DY != -3 || s.Ball.Radius != 3 {
		t.Errorf("initial ball = %+v, expected center (224, 370) moving (-3, -3) radius 3", s.Ball)
	}
	if s.Paddle.X != 199 || s.Paddle.Y != 380 || s.Paddle.Width != 50 || s.Paddle.Height != 10 {
		t.Errorf("initial paddle = %+v, expected (199, 380) 50x10", s.Paddle)
	}
	if s.Phase != StatePlaying {
		t.Errorf("initial phase = %s, expected %s", s.Phase, StatePlaying)
	}
	if g.ActiveBricks() != 78 {
		t.Errorf("ActiveBricks() = %d, expected 78", g.ActiveBricks())
	}
	if g.Sessions() != 1 {
		t.Errorf("Sessions() = %d, expected 1", g.Sessions())
	}
}

func TestBrickGridLayout(t *testing.T) {
	cfg := config.DefaultConfig().Bricks
	bricks := NewBrickGrid(cfg, NewSimpleRNG(7))

	if len(bricks) != 13 {
		t.Fatalf("columns = %d, expected 13", len(bricks))
	}
	for c, column := range bricks {
		if len(column) != 6 {
			t.Fatalf("column %d has %d rows, expected 6", c, len(column))
		}
		for r, b := range column {
			wantX := c*(32+0) + 16
			wantY := r*(16+0) + 80
			if b.X != wantX || b.Y != wantY {
				t.Errorf("brick (%d,%d) at (%d,%d), expected (%d,%d)", c, r, b.X, b.Y, wantX, wantY)
			}
			if b.Status != BrickActive {
				t.Errorf("brick (%d,%d) should start active", c, r)
			}
			if b.Color < 0 || b.Color >= 8 {
				t.Errorf("brick (%d,%d) color %d out of [0, 8)", c, r, b.Color)
			}
		}
	}
}

func TestBrickGridPadding(t *testing.T) {
	cfg := config.BricksConfig{Columns: 3, Rows: 2, Width: 10, Height: 5, Padding: 2, OffsetTop: 7, OffsetLeft: 3, Colors: 1}
	bricks := NewBrickGrid(cfg, NewSimpleRNG(1))

	if b := bricks[2][1]; b.X != 2*12+3 || b.Y != 1*7+7 || b.Color != 0 {
		t.Errorf("brick (2,1) = %+v, expected (27, 14) color 0", b)
	}
}

func TestBrickColorsUseWholePalette(t *testing.T) {
	rng := NewSimpleRNG(99)
	seen := make(map[int]bool)
	for range 500 {
		seen[rng.Intn(8)] = true
	}
	if len(seen) != 8 {
		t.Errorf("500 draws covered %d of 8 colors", len(seen))
	}
}

func TestStepBrickHit(t *testing.T) {
	g := newTestGame(t, 1)
	g.state.Ball.X = 17 // brick (0,0) top-left + (1,1)
	g.state.Ball.Y = 81
	dy := g.state.Ball.DY

	if out := g.Step(core.InputState{}); out != OutcomePlaying {
		t.Fatalf("Step() = %v, expected playing", out)
	}

	if g.state.Bricks[0][0].Status != BrickDestroyed {
		t.Error("brick (0,0) should be destroyed")
	}
	if g.state.Ball.DY != -dy {
		t.Errorf("DY = %v, expected %v", g.state.Ball.DY, -dy)
	}
	if g.ActiveBricks() != 77 {
		t.Errorf("ActiveBricks() = %d, expected 77", g.ActiveBricks())
	}
	if g.Destroyed() != 1 {
		t.Errorf("Destroyed() = %d, expected 1", g.Destroyed())
	}
}

func TestCollideBricksEdgesMiss(t *testing.T) {
	cfg := config.DefaultConfig()
	tests := []struct {
		name string
		x, y float64
	}{
		{"top-left corner", 16, 80},
		{"left edge", 16, 85},
		{"shared edge between columns", 48, 85},
		{"above grid", 30, 79},
		{"left of grid", 15, 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newState(cfg, NewSimpleRNG(1))
			s.Ball.X, s.Ball.Y = tc.x, tc.y
			if hits := CollideBricks(&s, cfg.Bricks); hits != 0 {
				t.Errorf("CollideBricks() = %d hits, expected 0", hits)
			}
			if s.Ball.DY != cfg.Ball.DY {
				t.Error("DY should be unchanged on a miss")
			}
		})
	}
}

func TestCollideBricksSkipsDestroyed(t *testing.T) {
	cfg := config.DefaultConfig()
	s := newState(cfg, NewSimpleRNG(1))
	s.Bricks[0][0].Status = BrickDestroyed
	s.Ball.X, s.Ball.Y = 20, 85

	if hits := CollideBricks(&s, cfg.Bricks); hits != 0 {
		t.Errorf("destroyed brick hit %d times", hits)
	}
	if s.Bricks[0][0].Status != BrickDestroyed {
		t.Error("destroyed brick must never become active again")
	}
}

func TestMoveBallSideWalls(t *testing.T) {
	pf := config.DefaultConfig().Playfield
	tests := []struct {
		name   string
		x, dx  float64
		wantX  float64
		wantDX float64
	}{
		{"left wall", 5, -3, 8, 3},
		{"right wall", 443, 3, 440, -3},
		{"free", 100, -3, 97, -3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newState(config.DefaultConfig(), NewSimpleRNG(1))
			s.Ball.X, s.Ball.Y = tc.x, 200
			s.Ball.DX = tc.dx

			if out := MoveBall(&s, pf); out != OutcomePlaying {
				t.Fatalf("MoveBall() = %v", out)
			}
			if s.Ball.DX != tc.wantDX || s.Ball.X != tc.wantX {
				t.Errorf("ball x=%v dx=%v, expected x=%v dx=%v", s.Ball.X, s.Ball.DX, tc.wantX, tc.wantDX)
			}
		})
	}
}

func TestMoveBallCeiling(t *testing.T) {
	s := newState(config.DefaultConfig(), NewSimpleRNG(1))
	s.Ball.X, s.Ball.Y = 224, 4
	s.Ball.DY = -3

	MoveBall(&s, config.DefaultConfig().Playfield)

	if s.Ball.DY != 3 || s.Ball.Y != 7 {
		t.Errorf("ball y=%v dy=%v, expected y=7 dy=3", s.Ball.Y, s.Ball.DY)
	}
}

func TestMoveBallPaddleBounce(t *testing.T) {
	s := newState(config.DefaultConfig(), NewSimpleRNG(1))
	s.Ball.X, s.Ball.Y = 224, 379
	s.Ball.DY = 3

	if out := MoveBall(&s, config.DefaultConfig().Playfield); out != OutcomePlaying {
		t.Fatalf("MoveBall() = %v, expected bounce", out)
	}
	if s.Ball.DY != -3 || s.Ball.Y != 376 {
		t.Errorf("ball y=%v dy=%v, expected y=376 dy=-3", s.Ball.Y, s.Ball.DY)
	}
}

func TestMoveBallMissEndsSession(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"past paddle plane", 100, 379},
		{"below floor", 100, 395},
		{"paddle edge is not over paddle", 199, 379},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newState(config.DefaultConfig(), NewSimpleRNG(1))
			s.Ball.X, s.Ball.Y = tc.x, tc.y
			s.Ball.DY = 3

			if out := MoveBall(&s, config.DefaultConfig().Playfield); out != OutcomeGameOver {
				t.Fatalf("MoveBall() = %v, expected game over", out)
			}
			if s.Phase != StateGameOver {
				t.Errorf("phase = %s, expected %s", s.Phase, StateGameOver)
			}
			if s.Ball.X != tc.x || s.Ball.Y != tc.y {
				t.Error("ball should not move on the tick that ends the session")
			}
		})
	}
}

func TestStepGameOverResets(t *testing.T) {
	g := newTestGame(t, 5)
	initial := g.State()
	initialBall, initialPaddle := initial.Ball, initial.Paddle

	// Play a bit so that state diverges from the initial session
	for range 20 {
		g.Step(held(core.DirLeft))
	}
	g.state.Bricks[3][2].Status = BrickDestroyed
	g.state.Ball.X, g.state.Ball.Y, g.state.Ball.DY = 20, 395, 3

	if out := g.Step(core.InputState{}); out != OutcomeGameOver {
		t.Fatalf("Step() = %v, expected game over", out)
	}

	s := g.State()
	if s.Ball != initialBall {
		t.Errorf("ball after reset = %+v, expected %+v", s.Ball, initialBall)
	}
	if s.Paddle != initialPaddle {
		t.Errorf("paddle after reset = %+v, expected %+v", s.Paddle, initialPaddle)
	}
	if s.Phase != StatePlaying {
		t.Errorf("phase after reset = %s, expected %s", s.Phase, StatePlaying)
	}
	for c, column := range s.Bricks {
		for r, b := range column {
			if b.Status != BrickActive || b.X != initial.Bricks[c][r].X || b.Y != initial.Bricks[c][r].Y {
				t.Fatalf("brick (%d,%d) after reset = %+v", c, r, b)
			}
		}
	}
	if g.Sessions() != 2 || g.TickCount() != 0 || g.Destroyed() != 0 {
		t.Errorf("sessions=%d ticks=%d destroyed=%d, expected 2, 0, 0", g.Sessions(), g.TickCount(), g.Destroyed())
	}
}

func TestMovePaddle(t *testing.T) {
	pf := config.DefaultConfig().Playfield
	tests := []struct {
		name  string
		x     float64
		in    core.InputState
		wantX float64
	}{
		{"right from zero", 0, held(core.DirRight), 8},
		{"right at max is clamped", 398, held(core.DirRight), 398},
		{"right near max stops at max", 395, held(core.DirRight), 398},
		{"left at zero is clamped", 0, held(core.DirLeft), 0},
		{"left near zero stops at zero", 5, held(core.DirLeft), 0},
		{"left", 199, held(core.DirLeft), 191},
		{"both held prefers right", 199, held(core.DirLeft, core.DirRight), 207},
		{"both held at max moves left", 398, held(core.DirLeft, core.DirRight), 390},
		{"nothing held", 199, core.InputState{}, 199},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newState(config.DefaultConfig(), NewSimpleRNG(1))
			s.Paddle.X = tc.x
			MovePaddle(&s, tc.in, pf)
			if s.Paddle.X != tc.wantX {
				t.Errorf("paddle x = %v, expected %v", s.Paddle.X, tc.wantX)
			}
		})
	}
}

func TestBoundsHoldUnderRandomInput(t *testing.T) {
	g := newTestGame(t, 2024)
	cfg := g.Config()
	rng := NewSimpleRNG(77)
	maxX := float64(cfg.Playfield.Width) - cfg.Paddle.Width
	r := cfg.Ball.Radius

	destroyedSeen := make(map[[2]int]int) // brick -> session it was destroyed in
	var in core.InputState

	for tick := range 20000 {
		if tick%7 == 0 {
			in.SetHeld(core.DirLeft, rng.Intn(2) == 0)
			in.SetHeld(core.DirRight, rng.Intn(3) == 0)
		}

		g.Step(in)
		s := g.State()

		if s.Paddle.X < 0 || s.Paddle.X > maxX {
			t.Fatalf("tick %d: paddle x %v out of [0, %v]", tick, s.Paddle.X, maxX)
		}
		if s.Ball.X < r || s.Ball.X > float64(cfg.Playfield.Width)-r {
			t.Fatalf("tick %d: ball x %v out of bounds", tick, s.Ball.X)
		}
		if s.Ball.Y < r {
			t.Fatalf("tick %d: ball y %v above the ceiling", tick, s.Ball.Y)
		}

		for c, column := range s.Bricks {
			for row, b := range column {
				key := [2]int{c, row}
				session, wasDestroyed := destroyedSeen[key]
				switch {
				case b.Status == BrickDestroyed && !wasDestroyed:
					destroyedSeen[key] = g.Sessions()
				case b.Status == BrickActive && wasDestroyed:
					if session == g.Sessions() {
						t.Fatalf("tick %d: brick (%d,%d) reactivated within a session", tick, c, row)
					}
					delete(destroyedSeen, key)
				}
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 12345)
		for i := range 3000 {
			var in core.InputState
			if i%50 < 20 {
				in.SetHeld(core.DirRight, true)
			} else if i%50 < 40 {
				in.SetHeld(core.DirLeft, true)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
}

func TestSeedChangesColors(t *testing.T) {
	a := newTestGame(t, 1).Snapshot()
	b := newTestGame(t, 2).Snapshot()
	if a.Hash() == b.Hash() {
		t.Error("different seeds should produce different brick colors")
	}
}
