package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) by Validate for any rejected setting.
var ErrInvalid = errors.New("config: invalid configuration")

// MaxBrickColors is the number of tiles available in the bricks sheet.
const MaxBrickColors = 8

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		add("playfield must be positive, got %dx%d", c.Playfield.Width, c.Playfield.Height)
	}
	if c.Ball.Radius <= 0 {
		add("ball radius must be positive, got %v", c.Ball.Radius)
	}
	if c.Ball.DX == 0 || c.Ball.DY == 0 {
		add("ball velocity components must be non-zero, got (%v, %v)", c.Ball.DX, c.Ball.DY)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		add("paddle must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Width > float64(c.Playfield.Width) {
		add("paddle width %v exceeds playfield width %d", c.Paddle.Width, c.Playfield.Width)
	}
	if c.Paddle.Sensitivity <= 0 {
		add("paddle sensitivity must be positive, got %v", c.Paddle.Sensitivity)
	}
	if c.Paddle.SpriteX < 0 || c.Paddle.SpriteY < 0 {
		add("paddle sprite clip must not be negative, got (%d, %d)", c.Paddle.SpriteX, c.Paddle.SpriteY)
	}

	b := c.Bricks
	if b.Columns <= 0 || b.Rows <= 0 || b.Width <= 0 || b.Height <= 0 {
		add("brick grid must be positive, got %dx%d bricks of %dx%d", b.Columns, b.Rows, b.Width, b.Height)
	} else {
		right := (b.Columns-1)*(b.Width+b.Padding) + b.OffsetLeft + b.Width
		bottom := (b.Rows-1)*(b.Height+b.Padding) + b.OffsetTop + b.Height
		if b.OffsetLeft < 0 || b.OffsetTop < 0 || right > c.Playfield.Width || bottom > c.Playfield.Height {
			add("brick grid (%d..%d, %d..%d) does not fit the playfield", b.OffsetLeft, right, b.OffsetTop, bottom)
		}
	}
	if b.Colors < 1 || b.Colors > MaxBrickColors {
		add("brick colors must be in [1, %d], got %d", MaxBrickColors, b.Colors)
	}

	if c.Timing.TickRate <= 0 {
		add("tick rate must be positive, got %d", c.Timing.TickRate)
	}
	if c.Timing.FPSWindowMS <= 0 {
		add("fps window must be positive, got %dms", c.Timing.FPSWindowMS)
	}
	if c.Terminal.PollRate < c.Timing.TickRate {
		add("terminal poll rate %d is below tick rate %d", c.Terminal.PollRate, c.Timing.TickRate)
	}
	if c.Terminal.HoldTimeoutMS <= 0 {
		add("hold timeout must be positive, got %dms", c.Terminal.HoldTimeoutMS)
	}
	if c.Terminal.InitialHoldMS < c.Terminal.HoldTimeoutMS {
		add("initial hold %dms is shorter than hold timeout %dms", c.Terminal.InitialHoldMS, c.Terminal.HoldTimeoutMS)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
