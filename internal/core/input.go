package core

// Action represents a semantic game command, abstracted from physical key
// presses. The platform maps keys to actions; the game never sees raw keys.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // J, Left arrow - move piece left
	ActionRight            // L, Right arrow - move piece right
	ActionRotateCW         // I, Up arrow - rotate piece clockwise
	ActionRotateCCW        // K, Z - rotate piece counter-clockwise
	ActionDrop             // Space - hard drop
	ActionRedraw           // R - repaint the screen, no state change
	ActionStart            // S - start or restart a game session
	ActionPause            // P, Escape - pause/unpause
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionDrop:
		return "Drop"
	case ActionRedraw:
		return "Redraw"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
