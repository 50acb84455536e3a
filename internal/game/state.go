// Package game implements the breakout simulation: brick grid construction,
// the per-tick simulation step and rendering onto a drawing surface.
package game

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/sprites"
)

// Session states
const (
	StatePlaying  = "playing"  // Ball in play
	StateGameOver = "gameover" // Ball missed; only observable inside the tick that ends a session
)

// Outcome is returned by Step to tell the loop what happened this tick.
type Outcome int

const (
	OutcomePlaying  Outcome = iota // Session continues
	OutcomeGameOver                // Session ended and the game was reset
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// BrickStatus is the lifecycle of a brick within a session.
type BrickStatus int

const (
	BrickDestroyed BrickStatus = iota
	BrickActive
)

// Brick is one cell of the brick grid.
type Brick struct {
	X, Y   int         // Top-left corner in pixels
	Status BrickStatus // ACTIVE until hit once
	Color  int         // Tile index in the bricks sheet
}

// Ball holds the ball position (center) and velocity in pixels per tick.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// Paddle holds the paddle's left edge, fixed row and size.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Pixels per tick while a direction is held
}

// Rect returns the paddle's bounds.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// State is every mutable entity of one session. Stage functions receive it
// by pointer and are its only writers during a tick.
type State struct {
	Ball   Ball
	Paddle Paddle
	Bricks [][]Brick // [column][row]
	Phase  string
}

// Game owns the session state together with the configuration and resources
// it was built from, so that a game over can rebuild it from scratch.
type Game struct {
	cfg    config.Config
	sheets sprites.Sheets
	rng    *SimpleRNG

	state     State
	tickCount int // Ticks in the current session
	destroyed int // Bricks destroyed in the current session
	sessions  int // Sessions started, including the current one
}

// New creates a game and initializes its first session.
func New(cfg config.Config, sheets sprites.Sheets, seed int64) *Game {
	g := &Game{
		cfg:    cfg,
		sheets: sheets,
		rng:    NewSimpleRNG(seed),
	}
	g.Reset()
	return g
}

// Reset discards the current session and builds a fresh one from the
// configuration. The RNG keeps advancing, so brick colors differ per session.
func (g *Game) Reset() {
	g.state = newState(g.cfg, g.rng)
	g.tickCount = 0
	g.destroyed = 0
	g.sessions++
}

// newState builds the initial entities of a session.
func newState(cfg config.Config, rng *SimpleRNG) State {
	w := float64(cfg.Playfield.Width)
	h := float64(cfg.Playfield.Height)

	return State{
		Ball: Ball{
			X:      w / 2,
			Y:      h - cfg.Ball.StartOffsetY,
			DX:     cfg.Ball.DX,
			DY:     cfg.Ball.DY,
			Radius: cfg.Ball.Radius,
		},
		Paddle: Paddle{
			X:      (w - cfg.Paddle.Width) / 2,
			Y:      h - cfg.Paddle.Height - cfg.Paddle.BottomMargin,
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
			Speed:  cfg.Paddle.Sensitivity,
		},
		Bricks: NewBrickGrid(cfg.Bricks, rng),
		Phase:  StatePlaying,
	}
}

// State returns a copy of the session state. Bricks share storage with the game.
func (g *Game) State() State {
	return g.state
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// TickCount returns the number of ticks in the current session.
func (g *Game) TickCount() int {
	return g.tickCount
}

// Sessions returns how many sessions have been started.
func (g *Game) Sessions() int {
	return g.sessions
}

// Destroyed returns the number of bricks destroyed in the current session.
func (g *Game) Destroyed() int {
	return g.destroyed
}

// ActiveBricks returns the number of bricks still standing.
func (g *Game) ActiveBricks() int {
	return countActive(g.state.Bricks)
}
