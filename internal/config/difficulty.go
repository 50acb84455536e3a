package config

// ApplyPreset modifies the config based on a difficulty preset.
// PresetNormal leaves the configuration untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Ball.DX = scaleVelocity(cfg.Ball.DX, 2, 3)
		cfg.Ball.DY = scaleVelocity(cfg.Ball.DY, 2, 3)
		cfg.Paddle.Width += 14
		cfg.Paddle.Sensitivity = cfg.Paddle.Sensitivity * 3 / 4
	case PresetHard:
		cfg.Ball.DX = scaleVelocity(cfg.Ball.DX, 4, 3)
		cfg.Ball.DY = scaleVelocity(cfg.Ball.DY, 4, 3)
		cfg.Paddle.Sensitivity = cfg.Paddle.Sensitivity * 5 / 4
	}
}

// scaleVelocity multiplies a velocity component by num/den, keeping at least
// one pixel per tick.
func scaleVelocity(v, num, den float64) float64 {
	scaled := v * num / den
	switch {
	case v > 0 && scaled < 1:
		return 1
	case v < 0 && scaled > -1:
		return -1
	}
	return scaled
}
