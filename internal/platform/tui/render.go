package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Charu-web/Neon-Drift/internal/core"
)

// palette maps core colors to terminal color codes. ColorDefault keeps the
// empty code, which leaves the terminal's own color in place.
var palette = map[core.Color]lipgloss.Color{
	core.ColorDefault:       lipgloss.Color(""),
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorMidnight:      lipgloss.Color("233"),
	core.ColorDeepBlue:      lipgloss.Color("17"),
	core.ColorDeepPurple:    lipgloss.Color("54"),
	core.ColorScanline:      lipgloss.Color("236"),
}

// cellStyles holds a precomputed style for every foreground/background pair.
// Precomputing the full matrix keeps RenderScreen allocation-free per run and
// safe to call from concurrent SSH session renders.
var cellStyles = buildCellStyles()

func styleKey(fg, bg core.Color) uint16 {
	return uint16(fg)<<8 | uint16(bg)
}

func buildCellStyles() map[uint16]lipgloss.Style {
	m := make(map[uint16]lipgloss.Style, len(palette)*len(palette))
	for fg, fgCode := range palette {
		for bg, bgCode := range palette {
			style := lipgloss.NewStyle()
			if fgCode != "" {
				style = style.Foreground(fgCode)
			}
			if bgCode != "" {
				style = style.Background(bgCode)
			}
			m[styleKey(fg, bg)] = style
		}
	}
	return m
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startFg, startBg := cell.Fg, cell.Bg

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != startFg || cell.Bg != startBg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := cellStyles[styleKey(startFg, startBg)]
			if !ok {
				style = cellStyles[styleKey(core.ColorDefault, core.ColorDefault)]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
