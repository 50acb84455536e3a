// Package tui runs the game in a terminal through Bubble Tea, locally or
// over SSH. It stands in for a browser: a fast tick plays the animation
// callback, key messages become key events, and the canvas is drawn with
// half-block characters.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one animation callback.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(pollRate int) tea.Cmd {
	interval := time.Second / time.Duration(pollRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
