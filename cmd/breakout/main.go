// breakout is a brick-breaking arcade game for the terminal.
//
// Usage:
//
//	breakout play        - Play in this terminal
//	breakout serve       - Start SSH server for remote play
//	breakout simulate    - Run the simulation headless and print a summary
//	breakout config      - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Load configuration from a YAML file
//	--preset <name>     - Difficulty preset: easy, normal, hard
//	--fps <rate>        - Override the simulation tick rate
//	--seed <value>      - Set RNG seed for reproducible brick colors
//	--log-file <path>   - Write logs to a rotated file
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - Smash bricks in your terminal",
	Long: `Breakout is a classic brick-breaking game drawn with half-block
characters. Keep the ball in play with the paddle and clear the wall.
Missing the ball starts everything over.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  simulate  - Run the game headless and print a summary
  config    - Print the effective configuration

Examples:
  breakout play
  breakout play --preset easy
  breakout serve --ssh :2222
  breakout simulate --ticks 3600 --auto
  breakout config --preset hard`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
		if cfg.Terminal.PollRate < flagFPS {
			cfg.Terminal.PollRate = flagFPS
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the logger described by the global flags. Output goes to
// console, or nowhere if console is nil, plus the log file when one is set.
func newLogger(console io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var writers []io.Writer
	if console != nil {
		writers = append(writers, console)
	}
	if flagLogFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   flagLogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	out := io.Discard
	switch len(writers) {
	case 0:
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
