package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "j":
		return core.ActionLeft, false
	case "right", "l":
		return core.ActionRight, false
	case "up", "i", "x":
		return core.ActionRotateCW, false
	case "z", "k":
		return core.ActionRotateCCW, false
	case " ":
		return core.ActionDrop, false
	case "r":
		return core.ActionRedraw, false
	case "s":
		return core.ActionStart, false
	case "p", "esc":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}
