package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Charu-web/Neon-Drift/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('a'), core.ActionMoveLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{runeKey('d'), core.ActionMoveRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{runeKey('w'), core.ActionMoveUp},
		{runeKey('s'), core.ActionMoveDown},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionFireToggle},
		{runeKey('f'), core.ActionFireToggle},
		{runeKey('p'), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		if quit {
			t.Errorf("MapKey(%q) flagged quit", tt.msg.String())
		}
		if got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}

	if _, quit := km.MapKey(runeKey('q')); !quit {
		t.Error("q should request quit")
	}
	if _, quit := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC}); !quit {
		t.Error("ctrl+c should request quit")
	}
}

func TestToggleKeyRepeatSwallowed(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	base := time.Now()

	// First press registers, the repeat 50ms later does not
	km.MapKeyToFrame(runeKey('p'), &frame, base)
	km.MapKeyToFrame(runeKey('p'), &frame, base.Add(50*time.Millisecond))
	if got := frame.Count(core.ActionPause); got != 1 {
		t.Errorf("pause count after repeat = %d, want 1", got)
	}

	// A press past the debounce window registers again
	km.MapKeyToFrame(runeKey('p'), &frame, base.Add(400*time.Millisecond))
	if got := frame.Count(core.ActionPause); got != 2 {
		t.Errorf("pause count after window = %d, want 2", got)
	}
}

func TestMovementKeysRepeatFreely(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	base := time.Now()

	// Held keys stream repeats; every one of them must land
	for i := 0; i < 5; i++ {
		km.MapKeyToFrame(runeKey('a'), &frame, base.Add(time.Duration(i)*10*time.Millisecond))
	}
	if got := frame.Count(core.ActionMoveLeft); got != 5 {
		t.Errorf("move-left count = %d, want 5", got)
	}
}

func TestDebounceTracksActionsSeparately(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	base := time.Now()

	// A fire toggle right after a pause press is a different action
	// and must not be swallowed by the pause debounce.
	km.MapKeyToFrame(runeKey('p'), &frame, base)
	km.MapKeyToFrame(runeKey('f'), &frame, base.Add(10*time.Millisecond))
	if !frame.Has(core.ActionPause) || !frame.Has(core.ActionFireToggle) {
		t.Error("independent toggles should both register")
	}
}

func TestQuitKeyDoesNotTouchFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if !km.MapKeyToFrame(runeKey('q'), &frame, time.Now()) {
		t.Fatal("q should report quit")
	}
	if len(frame.Actions) != 0 {
		t.Errorf("quit should not record actions, got %v", frame.Actions)
	}
}
