package core

// Action represents a semantic game command, abstracted from physical key presses.
// Front-ends translate their own input events into actions; the game core only
// ever sees this vector.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveLeft           // Left arrow
	ActionMoveRight          // Right arrow
	ActionSoftDrop           // Down arrow - move down one row
	ActionRotateLeft         // Z
	ActionRotateRight        // X
	ActionHardDrop           // Up arrow - drop and lock
	ActionHold               // Space
	ActionPause              // P, Escape
	ActionRestart            // R key - restart game after game over
	ActionQuit               // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionHardDrop:
		return "HardDrop"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Mutates reports whether the action changes game state when applied.
// Pause, Restart and Quit are handled by the front-end.
func (a Action) Mutates() bool {
	return a >= ActionMoveLeft && a <= ActionHold
}
