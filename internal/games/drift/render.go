package drift

import (
	"fmt"
	"math"

	"github.com/Charu-web/Neon-Drift/internal/core"
)

// Playfield glyphs.
const (
	craftGlyph      = '▲'
	projectileGlyph = '•'
	shieldGlyph     = '('
	shieldGlyphR    = ')'
	healthFullChar  = '█'
	healthEmptyChar = '░'
)

// Starfield sprites by depth layer, far to near.
var (
	starGlyphs = [starLayers]rune{'·', '·', '✦'}
	starColors = [starLayers]core.Color{core.ColorGray, core.ColorWhite, core.ColorBrightCyan}
)

// Render draws the full frame: backdrop, entities, craft, HUD, overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorBrightWhite)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorGray)
		return
	}

	// The backdrop scrolls on frame time, not sim time, so it keeps
	// drifting through pause and game over.
	g.stars.Advance(g.frameDT)

	g.renderBackdrop(dst)
	g.renderPickups(dst)
	g.renderObstacles(dst)
	g.renderHostiles(dst)
	g.renderProjectiles(dst)
	g.renderCraft(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderBackdrop lays down the night-sky gradient, a few scanline rows, and
// the parallax stars. Everything else draws on top of it.
func (g *Game) renderBackdrop(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	third := (h - hudRows) / 3

	for y := hudRows; y < h; y++ {
		bg := core.ColorMidnight
		switch {
		case y < hudRows+third:
			bg = core.ColorDeepPurple
		case y < hudRows+2*third:
			bg = core.ColorDeepBlue
		}
		for x := 0; x < w; x++ {
			dst.SetBg(x, y, bg)
		}
	}

	for y := hudRows + 3; y < h; y += 6 {
		for x := 0; x < w; x++ {
			dst.SetBg(x, y, core.ColorScanline)
		}
	}

	for _, st := range g.stars.Stars {
		y := int(math.Round(st.Y))
		if y < hudRows {
			continue
		}
		dst.SetCell(int(math.Round(st.X)), y, starGlyphs[st.Layer], starColors[st.Layer])
	}
}

func (g *Game) renderCraft(dst *core.Screen) {
	x := int(math.Round(g.craft.Pos.X))
	y := int(math.Round(g.craft.Pos.Y))

	color := core.ColorBrightGreen
	if g.craft.RapidLeft > 0 {
		color = core.ColorBrightMagenta
	}
	dst.SetCell(x, y, craftGlyph, color)

	if g.craft.shielded() {
		dst.SetCell(x-2, y, shieldGlyph, core.ColorBrightCyan)
		dst.SetCell(x+2, y, shieldGlyphR, core.ColorBrightCyan)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen) {
	for _, p := range g.projectiles {
		dst.SetCell(int(math.Round(p.Pos.X)), int(math.Round(p.Pos.Y)), projectileGlyph, p.Color)
	}
}

func (g *Game) renderHostiles(dst *core.Screen) {
	for _, h := range g.hostiles {
		glyph, color := hostileSprite(h)
		if h.HP > 1 {
			color = core.ColorBrightWhite
		}
		dst.SetCell(int(math.Round(h.Pos.X)), int(math.Round(h.Pos.Y)), glyph, color)
	}
}

// hostileSprite picks the glyph and color for a hostile. Weavers face the
// way they are sliding.
func hostileSprite(h Hostile) (rune, core.Color) {
	switch h.Variant {
	case VariantWeaver:
		if h.Vel.X < 0 {
			return '◀', core.ColorBrightMagenta
		}
		return '▶', core.ColorBrightMagenta
	case VariantSine:
		return '◆', core.ColorOrange
	default:
		return '▼', core.ColorBrightRed
	}
}

func (g *Game) renderObstacles(dst *core.Screen) {
	for _, o := range g.obstacles {
		x := int(math.Round(o.Pos.X))
		y := int(math.Round(o.Pos.Y))
		dst.SetCell(x, y, o.spinGlyph(), core.ColorWhite)
		if o.Radius >= 2 {
			dst.SetCell(x-1, y, '(', core.ColorGray)
			dst.SetCell(x+1, y, ')', core.ColorGray)
		}
	}
}

func (g *Game) renderPickups(dst *core.Screen) {
	for _, p := range g.pickups {
		glyph, color := pickupSprite(p.Kind)
		dst.SetCell(int(math.Round(p.Pos.X)), int(math.Round(p.Pos.Y)), glyph, color)
	}
}

func pickupSprite(k PickupKind) (rune, core.Color) {
	switch k {
	case PickupRapid:
		return '↯', core.ColorBrightYellow
	case PickupHeal:
		return '✚', core.ColorBrightGreen
	default:
		return '◈', core.ColorBrightCyan
	}
}

// renderHUD fills the top row: score and level on the left, the health bar
// in the middle, fire mode and status timers on the right.
func (g *Game) renderHUD(dst *core.Screen) {
	w := dst.Width()
	for x := 0; x < w; x++ {
		dst.SetBg(x, 0, core.ColorMidnight)
	}

	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorBrightWhite)

	levelText := fmt.Sprintf("Lv %d", g.difficulty.Level(g.score))
	dst.DrawTextColored(1+len(scoreText)+2, 0, levelText, core.ColorBrightCyan)

	g.renderHealthBar(dst)
	g.renderStatus(dst)
}

func (g *Game) renderHealthBar(dst *core.Screen) {
	const barW = 12
	maxHealth := g.cfg.Craft.MaxHealth
	if maxHealth <= 0 {
		return
	}

	filled := core.Clamp(int(math.Round(float64(g.health)/float64(maxHealth)*barW)), 0, barW)

	color := core.ColorBrightGreen
	switch {
	case g.health*4 <= maxHealth:
		color = core.ColorBrightRed
	case g.health*2 <= maxHealth:
		color = core.ColorBrightYellow
	}

	x := (dst.Width() - barW) / 2
	for i := 0; i < barW; i++ {
		if i < filled {
			dst.SetCell(x+i, 0, healthFullChar, color)
		} else {
			dst.SetCell(x+i, 0, healthEmptyChar, core.ColorGray)
		}
	}
}

// renderStatus draws the right-aligned HUD tags, rightmost first.
func (g *Game) renderStatus(dst *core.Screen) {
	x := dst.Width() - 1
	draw := func(text string, fg core.Color) {
		x -= len(text)
		dst.DrawTextColored(x, 0, text, fg)
		x -= 2
	}

	if g.craft.RapidLeft > 0 {
		draw(fmt.Sprintf("RPD %d", int(math.Ceil(g.craft.RapidLeft))), core.ColorBrightMagenta)
	}
	if g.craft.ShieldLeft > 0 {
		draw(fmt.Sprintf("SHD %d", int(math.Ceil(g.craft.ShieldLeft))), core.ColorBrightCyan)
	}
	if g.fireMode {
		draw("FIRE", core.ColorBrightYellow)
	} else {
		draw("HOLD", core.ColorGray)
	}
}

// renderOverlay draws modal message boxes for frozen states.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.FillBg(box, core.ColorMidnight)
	dst.DrawBox(box, core.ColorBrightCyan)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawTextColored(subtitleX, boxY+3, subtitle, core.ColorGray)
}
