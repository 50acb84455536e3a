package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  ←/A        - Move paddle left
  →/D        - Move paddle right
  Ctrl+S     - Save a PNG screenshot to ~/.breakout/screenshots
  Q/Ctrl+C   - Quit

Terminals do not report key releases, so the paddle keeps moving while the
key auto-repeats and stops shortly after it is let go.

Examples:
  breakout play
  breakout play --preset hard
  breakout play --seed 42 --log-file ./breakout.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	// The game owns the terminal, so logs only go to the log file.
	logger, err := newLogger(nil, "breakout")
	if err != nil {
		fatal("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting game", "width", width, "height", height, "tick_rate", cfg.Timing.TickRate, "seed", flagSeed)
	err = tui.Run(cfg, tui.Options{
		Seed:   flagSeed,
		Logger: logger,
		Width:  width,
		Height: height,
	})
	if err != nil {
		fatal("%v", err)
	}
}
