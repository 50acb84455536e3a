package game

import "github.com/vovakirdan/tui-breakout/internal/config"

// NewBrickGrid lays out the brick grid, indexed [column][row].
// Each brick's corner is index*(size+padding)+offset on both axes and its
// color is drawn uniformly from [0, cfg.Colors).
func NewBrickGrid(cfg config.BricksConfig, rng *SimpleRNG) [][]Brick {
	bricks := make([][]Brick, cfg.Columns)
	for c := range cfg.Columns {
		bricks[c] = make([]Brick, cfg.Rows)
		for r := range cfg.Rows {
			bricks[c][r] = Brick{
				X:      c*(cfg.Width+cfg.Padding) + cfg.OffsetLeft,
				Y:      r*(cfg.Height+cfg.Padding) + cfg.OffsetTop,
				Status: BrickActive,
				Color:  rng.Intn(cfg.Colors),
			}
		}
	}
	return bricks
}

// countActive returns the number of bricks with status ACTIVE.
func countActive(bricks [][]Brick) int {
	count := 0
	for _, column := range bricks {
		for _, b := range column {
			if b.Status == BrickActive {
				count++
			}
		}
	}
	return count
}
