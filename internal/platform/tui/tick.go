// Package tui provides the Bubble Tea integration for Neon Drift.
// It handles the terminal UI loop, input mapping, frame timing, and the
// styled screen renderer. Game logic stays behind the registry interface.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. The wrapped time is
// the tick's timestamp, which the model uses to derive the frame delta.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
