package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TitleKeyMap defines the key bindings for the title screen.
type TitleKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k TitleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k TitleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Quit},
	}
}

// DefaultTitleKeyMap returns default key bindings.
func DefaultTitleKeyMap() TitleKeyMap {
	return TitleKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/w", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/s", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "launch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// difficultyChoice is one entry of the title screen's difficulty picker.
type difficultyChoice struct {
	preset string
	label  string
	blurb  string
}

var difficultyChoices = []difficultyChoice{
	{"easy", "Easy", "gentle spawns, slow ramp"},
	{"normal", "Normal", "the intended run"},
	{"hard", "Hard", "dense waves from the start"},
}

// TitleModel is the Bubble Tea model for the title screen with the
// difficulty picker. Used by SSH sessions before the game starts.
type TitleModel struct {
	cursor   int
	width    int
	height   int
	help     help.Model
	keys     TitleKeyMap
	selected string // chosen preset name, empty until the player launches
	quitting bool
}

// NewTitleModel creates a new title screen model.
func NewTitleModel(width, height int) TitleModel {
	h := help.New()
	h.ShowAll = false

	return TitleModel{
		cursor: 1, // default to Normal
		width:  width,
		height: height,
		help:   h,
		keys:   DefaultTitleKeyMap(),
	}
}

// Init initializes the title model.
func (m TitleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the title screen.
func (m TitleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(difficultyChoices)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Select):
			m.selected = difficultyChoices[m.cursor].preset
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the title screen.
func (m TitleModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("14"))
	taglineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
	cursorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("11"))
	blurbStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(centerText(titleStyle.Render("N E O N   D R I F T"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(taglineStyle.Render("a terminal dodge-and-blast arcade"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty", m.width))
	b.WriteString("\n\n")

	for i, c := range difficultyChoices {
		cursor := "  "
		label := c.label
		if i == m.cursor {
			cursor = "> "
			label = cursorStyle.Render(label)
		}
		line := cursor + label + "  " + blurbStyle.Render(c.blurb)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Selected returns the chosen difficulty preset, or empty if none yet.
func (m TitleModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if the player wants to close the session.
func (m TitleModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width. Styled text is padded by its
// visible width, not its raw byte length.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}
