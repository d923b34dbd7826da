package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Charu-web/Neon-Drift/internal/core"
)

// toggleDebounce is the window within which a repeated toggle key press is
// treated as terminal key repeat and swallowed. Terminals report no key-up,
// so holding P or Space streams press events; without the guard a held
// toggle key would flip its state every frame.
const toggleDebounce = 250 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	lastToggle map[core.Action]time.Time
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		lastToggle: make(map[core.Action]time.Time),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	// Game actions
	switch key {
	case "a", "left":
		return core.ActionMoveLeft, false
	case "d", "right":
		return core.ActionMoveRight, false
	case "w", "up":
		return core.ActionMoveUp, false
	case "s", "down":
		return core.ActionMoveDown, false
	case " ", "f":
		return core.ActionFireToggle, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// isToggle reports whether an action flips state on each press and therefore
// needs the key-repeat guard. Movement actions are held keys and want every
// repeat event.
func isToggle(a core.Action) bool {
	switch a {
	case core.ActionFireToggle, core.ActionPause, core.ActionRestart:
		return true
	}
	return false
}

// MapKeyToFrame updates an input frame based on a key message. Toggle
// actions repeated within the debounce window are dropped; now is passed in
// so tests can script the clock. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, now time.Time) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	if action == core.ActionNone {
		return false
	}

	if isToggle(action) {
		if last, ok := km.lastToggle[action]; ok && now.Sub(last) < toggleDebounce {
			return false
		}
		km.lastToggle[action] = now
	}

	frame.Set(action)
	return false
}
