package core

import "strings"

// Direction identifies one of the two paddle movement directions.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputState holds the two independent held-key flags polled once per tick.
// It is written by the key event dispatcher and read by the simulation.
type InputState struct {
	left  bool
	right bool
}

// SetHeld marks a direction as held or released.
func (s *InputState) SetHeld(d Direction, held bool) {
	switch d {
	case DirLeft:
		s.left = held
	case DirRight:
		s.right = held
	}
}

// Held reports whether the direction is currently held.
func (s InputState) Held(d Direction) bool {
	switch d {
	case DirLeft:
		return s.left
	case DirRight:
		return s.right
	default:
		return false
	}
}

// Release clears both flags.
func (s *InputState) Release() {
	s.left = false
	s.right = false
}

// KeyPhase distinguishes key-down from key-up events.
type KeyPhase int

const (
	KeyPress KeyPhase = iota
	KeyRelease
)

func (p KeyPhase) String() string {
	if p == KeyRelease {
		return "up"
	}
	return "down"
}

// KeyEvent is a named key identifier with its press/release phase.
// Key names follow browser conventions ("ArrowLeft", "a", "Right").
type KeyEvent struct {
	Key   string
	Phase KeyPhase
}

// DirectionForKey maps a key name to a paddle direction.
// Arrow aliases match exactly, letter keys case-insensitively.
func DirectionForKey(key string) (Direction, bool) {
	switch {
	case key == "Right" || key == "ArrowRight" || strings.EqualFold(key, "d"):
		return DirRight, true
	case key == "Left" || key == "ArrowLeft" || strings.EqualFold(key, "a"):
		return DirLeft, true
	}
	return DirLeft, false
}

// ApplyKeyEvent updates the input state for a recognized direction key.
// Unrecognized keys are ignored; returns whether the event had any effect.
func ApplyKeyEvent(s *InputState, ev KeyEvent) bool {
	dir, ok := DirectionForKey(ev.Key)
	if !ok {
		return false
	}
	s.SetHeld(dir, ev.Phase == KeyPress)
	return true
}
