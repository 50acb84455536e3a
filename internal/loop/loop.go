package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/canvas"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/game"
)

// Loop sequences one game: pacing, simulation and rendering. It is not safe
// for concurrent use; the key dispatcher and Frame must run on one goroutine.
type Loop struct {
	game   *game.Game
	input  core.InputState
	pacer  *Pacer
	canvas *canvas.Canvas
	logger *log.Logger
}

// New creates a loop for g that renders into a canvas the size of the
// playfield. A nil logger discards log output.
func New(g *game.Game, logger *log.Logger) *Loop {
	cfg := g.Config()
	if logger == nil {
		logger = log.New(io.Discard)
	}
	window := time.Duration(cfg.Timing.FPSWindowMS) * time.Millisecond
	cv := canvas.New(cfg.Playfield.Width, cfg.Playfield.Height)
	cv.SetTextColor(game.TextColor)

	return &Loop{
		game:   g,
		pacer:  NewPacer(cfg.Timing.TickRate, window),
		canvas: cv,
		logger: logger,
	}
}

// Start anchors pacing at now and draws the initial frame.
func (l *Loop) Start(now time.Time) {
	l.pacer.Start(now)
	l.game.Render(l.canvas, l.pacer.FPS())
}

// Frame is the animation callback. It runs one simulation tick and redraws
// when a tick is due, and reports whether it did.
func (l *Loop) Frame(now time.Time) bool {
	if !l.pacer.Advance(now) {
		return false
	}

	ticks := l.game.TickCount()
	destroyed := l.game.Destroyed()
	session := l.game.Sessions()
	if l.game.Step(l.input) == game.OutcomeGameOver {
		l.logger.Info("game over, restarting",
			"ticks", ticks,
			"destroyed", destroyed,
			"session", session)
	}

	l.game.Render(l.canvas, l.pacer.FPS())
	return true
}

// HandleKey applies a key event to the held-key state.
func (l *Loop) HandleKey(ev core.KeyEvent) bool {
	handled := core.ApplyKeyEvent(&l.input, ev)
	if handled {
		l.logger.Debug("key", "key", ev.Key, "phase", ev.Phase)
	}
	return handled
}

// Input returns the held-key state written by key events.
func (l *Loop) Input() *core.InputState {
	return &l.input
}

// Game returns the simulated game.
func (l *Loop) Game() *game.Game {
	return l.game
}

// Canvas returns the surface the latest frame was drawn on.
func (l *Loop) Canvas() *canvas.Canvas {
	return l.canvas
}

// Pacer returns the tick pacer.
func (l *Loop) Pacer() *Pacer {
	return l.pacer
}
