package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/game"
	"github.com/vovakirdan/tui-breakout/internal/loop"
	"github.com/vovakirdan/tui-breakout/internal/sprites"
)

// footerHeight is the number of rows reserved below the playfield.
const footerHeight = 1

// Options configures a Model beyond the game configuration.
type Options struct {
	Seed     int64
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // nil uses stdout's renderer
	Width    int                // Initial terminal size; updated by resize messages
	Height   int
}

// fieldCache holds the rendered playfield between simulation ticks.
type fieldCache struct {
	valid bool
	text  string
}

// Model is the Bubble Tea model running one breakout game.
type Model struct {
	cfg    config.Config
	loop   *loop.Loop
	logger *log.Logger

	keys   KeyMap
	help   help.Model
	hold   *holdTimer
	raster *Rasterizer
	output *ScreenRenderer
	screen *core.Screen
	field  *fieldCache

	renderer *lipgloss.Renderer
	width    int
	height   int
	status   string
	quitting bool
}

// NewModel builds the sprite sheets and a fresh game for cfg.
func NewModel(cfg config.Config, opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "breakout"})
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	g := game.New(cfg, BuildSheets(cfg), opts.Seed)
	h := help.New()
	h.Styles.ShortKey = renderer.NewStyle().Foreground(lipgloss.Color("245"))
	h.Styles.ShortDesc = renderer.NewStyle().Foreground(lipgloss.Color("240"))
	h.Styles.ShortSeparator = renderer.NewStyle().Foreground(lipgloss.Color("238"))

	m := Model{
		cfg:      cfg,
		loop:     loop.New(g, logger),
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     h,
		hold:     newHoldTimer(ms(cfg.Terminal.InitialHoldMS), ms(cfg.Terminal.HoldTimeoutMS)),
		raster:   &Rasterizer{},
		output:   NewScreenRenderer(renderer),
		screen:   core.NewScreen(0, 0),
		field:    &fieldCache{},
		renderer: renderer,
	}
	m.fit(opts.Width, opts.Height)
	return m
}

// BuildSheets renders the sprite sheets described by cfg.
func BuildSheets(cfg config.Config) sprites.Sheets {
	return sprites.Build(
		sprites.PaddleSpec{
			X:      cfg.Paddle.SpriteX,
			Y:      cfg.Paddle.SpriteY,
			Width:  int(cfg.Paddle.Width),
			Height: int(cfg.Paddle.Height),
		},
		sprites.BrickSpec{
			Width:  cfg.Bricks.Width,
			Height: cfg.Bricks.Height,
			Colors: cfg.Bricks.Colors,
		},
	)
}

// Init starts pacing and the animation callback.
func (m Model) Init() tea.Cmd {
	m.loop.Start(time.Now())
	return tickCmd(m.cfg.Terminal.PollRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.fit(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.handleTick(time.Time(msg))
		return m, tickCmd(m.cfg.Terminal.PollRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot(now)
		return m, nil
	}

	name := KeyName(msg)
	dir, ok := core.DirectionForKey(name)
	if !ok {
		return m, nil
	}

	if other, release := m.hold.press(dir, now); release {
		m.loop.HandleKey(core.KeyEvent{Key: other.String(), Phase: core.KeyRelease})
	}
	m.loop.HandleKey(core.KeyEvent{Key: name, Phase: core.KeyPress})
	return m, nil
}

// handleTick releases stale keys and runs the animation callback.
func (m Model) handleTick(now time.Time) {
	for _, d := range m.hold.expired(now) {
		m.loop.HandleKey(core.KeyEvent{Key: d.String(), Phase: core.KeyRelease})
	}
	if m.loop.Frame(now) {
		m.field.valid = false
	}
}

// fit sizes the screen to the terminal, keeping the playfield's aspect.
func (m *Model) fit(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	pf := m.cfg.Playfield
	w, h := Fit(pf.Width, pf.Height, width, height-footerHeight)
	m.screen.Resize(w, h)
	m.field.valid = false
}

// saveScreenshot writes the canvas to ~/.breakout/screenshots and returns a
// status line describing the result.
func (m Model) saveScreenshot(now time.Time) string {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}

	path := filepath.Join(dir, fmt.Sprintf("breakout_%s.png", now.Format("20060102_150405")))
	if err := m.loop.Canvas().SavePNG(path); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	field := m.renderField()

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = lipgloss.JoinHorizontal(lipgloss.Top, footer, m.renderer.NewStyle().Foreground(lipgloss.Color("240")).Render("  "+m.status))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, field, footer)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return m.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// renderField rasterizes the canvas only when a tick or resize changed it.
func (m Model) renderField() string {
	if m.field.valid {
		return m.field.text
	}
	cv := m.loop.Canvas()
	m.raster.Draw(m.screen, cv.Image(), cv.Texts(), core.FromColor(game.TextColor))
	m.field.text = m.output.Render(m.screen)
	m.field.valid = true
	return m.field.text
}

// Loop returns the game loop driven by the model.
func (m Model) Loop() *loop.Loop {
	return m.loop
}

// Run starts the Bubble Tea program for a local terminal.
func Run(cfg config.Config, opts Options) error {
	model := NewModel(cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
