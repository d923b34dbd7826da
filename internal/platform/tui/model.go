package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Charu-web/Neon-Drift/internal/audio"
	"github.com/Charu-web/Neon-Drift/internal/core"
	"github.com/Charu-web/Neon-Drift/internal/registry"
)

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	audio      *audio.Engine
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	// Frame timing. lastTick is zero until the first tick lands; the first
	// frame then runs on the nominal tick interval.
	lastTick time.Time

	// Pointer drag state. The simulation wants a pointer target every frame
	// while the button is held, but the terminal only reports motion, so the
	// model replays the last position on each tick.
	pointerDown bool
	pointerX    int
	pointerY    int

	// allowBack lets esc/b leave a paused or finished game. Set for SSH
	// sessions, which return to the title screen instead of quitting.
	allowBack   bool
	backToTitle bool

	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The audio engine may be nil for silent sessions.
func NewModel(game registry.Game, eng *audio.Engine, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		audio:      eng,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "esc", "b":
		// Esc doubles as pause; leaving the session needs a settled game
		if m.allowBack && (m.gameState.Paused || m.gameState.GameOver) {
			m.backToTitle = true
			return m, nil
		}
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, time.Now()) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse tracks pointer drags. A left press starts tracking, motion
// retargets while held, release stops.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pointerDown = true
			m.pointerX, m.pointerY = msg.X, msg.Y
		}
	case tea.MouseActionMotion:
		if m.pointerDown {
			m.pointerX, m.pointerY = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		m.pointerDown = false
	}

	return m, nil
}

// handleResize processes window resize events. The session keeps running:
// the game re-clamps its entities to the new playfield.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick advances the simulation by the elapsed wall time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	// A stalled terminal must not turn into one giant step
	if dt < 0 {
		dt = 0
	}
	if dt > core.MaxStep {
		dt = core.MaxStep
	}

	if m.pointerDown {
		m.inputFrame.SetPointer(float64(m.pointerX), float64(m.pointerY))
	}

	result := m.game.Step(dt, m.inputFrame)
	m.gameState = result.State

	if m.audio != nil {
		m.audio.HandleAll(result.Events)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".neondrift", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// BackToTitle returns true if the player asked to leave the game for the
// title screen. Only set when the model was created for an SSH session.
func (m Model) BackToTitle() bool {
	return m.backToTitle
}

// IsQuitting returns true if the player asked to close the session.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, eng *audio.Engine, cfg core.RuntimeConfig) error {
	model := NewModel(game, eng, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // pointer steering
	)

	_, err := p.Run()
	return err
}
