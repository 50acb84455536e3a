package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultConfig returns the default breakout configuration.
func DefaultConfig() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:  448,
			Height: 400,
		},
		Ball: BallConfig{
			Radius:       3,
			StartOffsetY: 30,
			DX:           -3,
			DY:           -3,
		},
		Paddle: PaddleConfig{
			Width:        50,
			Height:       10,
			BottomMargin: 10,
			Sensitivity:  8,
			SpriteX:      29,
			SpriteY:      174,
		},
		Bricks: BricksConfig{
			Columns:    13,
			Rows:       6,
			Width:      32,
			Height:     16,
			Padding:    0,
			OffsetTop:  80,
			OffsetLeft: 16,
			Colors:     8,
		},
		Timing: TimingConfig{
			TickRate:    60,
			FPSWindowMS: 1000,
		},
		Terminal: TerminalConfig{
			PollRate:      240,
			HoldTimeoutMS: 180,
			InitialHoldMS: 320,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
