// Package loop drives the game at a fixed tick rate from an externally
// scheduled callback and keeps the frames-per-second counter.
package loop

import "time"

// Pacer gates an uncapped callback down to a fixed tick interval.
// Leftover time is carried into the next tick so the rate does not drift.
type Pacer struct {
	interval time.Duration
	window   time.Duration

	prev      time.Time // Last processed tick, minus carried excess
	windowEnd time.Time // End of the current FPS window
	frames    int       // Ticks processed in the current window
	fps       int       // Ticks processed in the last completed window
}

// NewPacer creates a pacer for tickRate ticks per second with an FPS window
// of the given length. The displayed FPS starts at tickRate.
func NewPacer(tickRate int, window time.Duration) *Pacer {
	if tickRate <= 0 {
		tickRate = 60
	}
	if window <= 0 {
		window = time.Second
	}
	return &Pacer{
		interval: time.Second / time.Duration(tickRate),
		window:   window,
		fps:      tickRate,
	}
}

// Start anchors the pacer at now. The first tick is due one interval later.
func (p *Pacer) Start(now time.Time) {
	p.prev = now
	p.windowEnd = now.Add(p.window)
	p.frames = 0
}

// Advance reports whether a tick is due at now. When it is, the tick is
// counted, after rolling the FPS window over if it has ended. Windows stay
// aligned to Start unless a stall skips past a whole window.
func (p *Pacer) Advance(now time.Time) bool {
	passed := now.Sub(p.prev)
	if passed < p.interval {
		return false
	}

	excess := passed % p.interval
	p.prev = now.Add(-excess)

	// The first tick at or past the boundary belongs to the next window
	if !now.Before(p.windowEnd) {
		p.fps = p.frames
		p.frames = 0
		p.windowEnd = p.windowEnd.Add(p.window)
		if !p.windowEnd.After(now) {
			p.windowEnd = now.Add(p.window)
		}
	}
	p.frames++
	return true
}

// Interval returns the fixed tick interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// FPS returns the tick count of the last completed window.
func (p *Pacer) FPS() int {
	return p.fps
}

// Frames returns the ticks counted so far in the current window.
func (p *Pacer) Frames() int {
	return p.frames
}
