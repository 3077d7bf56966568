package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform decodes raw input into these; the engine never sees keys.
type Action int

const (
	ActionNone      Action = iota
	ActionStart            // Space, Enter - start a new game from the title or game-over screen
	ActionMoveLeft         // Left, H, A - shift the falling piece one column left
	ActionMoveRight        // Right, L, D - shift the falling piece one column right
	ActionSoftDrop         // Down, J, S - nudge the falling piece one row down
	ActionRotate           // Up, K, W, X - rotate the falling piece clockwise
	ActionQuit             // Q, Esc, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions produced during one simulation tick.
// Actions are kept in arrival order because the engine applies them
// sequentially: a Start followed by a MoveLeft must start the game first.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make([]Action, 0, 4),
	}
}

// Push appends an action to the frame. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame, keeping the backing storage.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
