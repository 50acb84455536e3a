// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for breakout.
package config

import "fmt"

// Config contains all configuration for the breakout game.
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Ball      BallConfig      `yaml:"ball"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Bricks    BricksConfig    `yaml:"bricks"`
	Timing    TimingConfig    `yaml:"timing"`
	Terminal  TerminalConfig  `yaml:"terminal"`
}

// PlayfieldConfig defines the drawing surface size in logical pixels.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BallConfig defines the ball's size and starting motion.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	StartOffsetY float64 `yaml:"start_offset_y"` // Distance of the start position above the floor
	DX           float64 `yaml:"dx"`             // Initial horizontal velocity, pixels per tick
	DY           float64 `yaml:"dy"`             // Initial vertical velocity, pixels per tick
}

// PaddleConfig defines paddle geometry, speed and sprite clip.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between paddle bottom and floor
	Sensitivity  float64 `yaml:"sensitivity"`   // Pixels moved per tick while a key is held
	SpriteX      int     `yaml:"sprite_x"`      // Clip origin in the paddle sheet
	SpriteY      int     `yaml:"sprite_y"`
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Columns    int `yaml:"columns"`
	Rows       int `yaml:"rows"`
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	Padding    int `yaml:"padding"`
	OffsetTop  int `yaml:"offset_top"`
	OffsetLeft int `yaml:"offset_left"`
	Colors     int `yaml:"colors"` // Number of tiles in the bricks sheet
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	TickRate    int `yaml:"tick_rate"`     // Fixed simulation ticks per second
	FPSWindowMS int `yaml:"fps_window_ms"` // Length of the FPS counting window
}

// TerminalConfig defines settings that only apply to the terminal platform.
type TerminalConfig struct {
	PollRate      int `yaml:"poll_rate"`       // Animation callbacks per second
	HoldTimeoutMS int `yaml:"hold_timeout_ms"` // Key release inferred after this long without a repeat
	InitialHoldMS int `yaml:"initial_hold_ms"` // Same, for the first press before auto-repeat kicks in
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a CLI string to a Preset.
// An empty string maps to PresetNormal.
func ParsePreset(s string) (Preset, error) {
	switch s {
	case "", string(PresetNormal):
		return PresetNormal, nil
	case string(PresetEasy):
		return PresetEasy, nil
	case string(PresetHard):
		return PresetHard, nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want easy, normal or hard)", s)
	}
}
