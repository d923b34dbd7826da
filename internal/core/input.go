package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionMoveLeft          // A, Left arrow - nudge target left
	ActionMoveRight         // D, Right arrow - nudge target right
	ActionMoveUp            // W, Up arrow - nudge target up
	ActionMoveDown          // S, Down arrow - nudge target down
	ActionFireToggle        // Space, F - toggle autofire on/off
	ActionPause             // P, Escape - pause/unpause game
	ActionRestart           // R key - restart game after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
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
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionFireToggle:
		return "FireToggle"
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

// InputFrame carries everything the player did during one simulation frame.
//
// Actions are counted rather than flagged so that toggle intents keep their
// parity: pressing pause twice inside a single frame window must land the
// session back in its original state, not collapse into one press.
type InputFrame struct {
	// Actions maps action types to how many times they fired this frame.
	Actions map[Action]int

	// PointerActive is true while a pointer drag is in progress. PointerX
	// and PointerY then hold the dragged cell in playfield coordinates and
	// override key nudges as the movement target.
	PointerActive bool
	PointerX      float64
	PointerY      float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one occurrence of an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action fired at least once this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a] > 0
}

// Count returns how many times the action fired this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// SetPointer records a pointer drag position for this frame.
func (f *InputFrame) SetPointer(x, y float64) {
	f.PointerActive = true
	f.PointerX = x
	f.PointerY = y
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerActive = false
	f.PointerX = 0
	f.PointerY = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.PointerActive = f.PointerActive
	clone.PointerX = f.PointerX
	clone.PointerY = f.PointerY
	return clone
}
