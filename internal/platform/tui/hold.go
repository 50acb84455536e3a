package tui

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// holdTimer infers key releases, which terminals never report. A direction
// counts as held until no repeat has arrived for the timeout, or until the
// opposite direction is pressed. The first press waits longer because
// auto-repeat starts after a delay.
type holdTimer struct {
	initial time.Duration
	repeat  time.Duration

	held     [2]bool
	deadline [2]time.Time
}

func newHoldTimer(initial, repeat time.Duration) *holdTimer {
	return &holdTimer{initial: initial, repeat: repeat}
}

// press records a key-down for d at now. It returns the opposite direction
// and true if that direction was held and must be released.
func (h *holdTimer) press(d core.Direction, now time.Time) (core.Direction, bool) {
	timeout := h.initial
	if h.held[d] {
		timeout = h.repeat
	}
	h.held[d] = true
	h.deadline[d] = now.Add(timeout)

	other := opposite(d)
	if h.held[other] {
		h.held[other] = false
		return other, true
	}
	return other, false
}

// expired returns the held directions whose deadline has passed at now and
// forgets them.
func (h *holdTimer) expired(now time.Time) []core.Direction {
	var out []core.Direction
	for _, d := range []core.Direction{core.DirLeft, core.DirRight} {
		if h.held[d] && now.After(h.deadline[d]) {
			h.held[d] = false
			out = append(out, d)
		}
	}
	return out
}

func opposite(d core.Direction) core.Direction {
	if d == core.DirLeft {
		return core.DirRight
	}
	return core.DirLeft
}
