// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and the gravity timer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// GravityMsg is sent when the scheduled gravity tick is due.
type GravityMsg time.Time

// gravityCmd returns a Bubble Tea command that fires after the given wait.
// The wait comes from the tick scheduler, so it shrinks as the level rises.
func gravityCmd(waitMS int) tea.Cmd {
	if waitMS < 0 {
		waitMS = 0
	}
	return tea.Tick(time.Duration(waitMS)*time.Millisecond, func(t time.Time) tea.Msg {
		return GravityMsg(t)
	})
}
