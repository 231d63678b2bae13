package breakout

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Rendering glyphs
const (
	BallChar         = '●'
	PaddleChar       = '▀'
	BlockChar        = '█'
	SpecialBlockChar = '▓'
	WallChar         = '│'
	NebulaChar       = '░'
)

// backgroundColor is what faded effects blend toward.
const backgroundColor = "#0a0a14"

var bg, _ = colorful.Hex(backgroundColor)

// fade blends hex toward the background; amount 1 keeps the colour, 0 is
// the background itself. Unparseable colours are returned unchanged.
func fade(hex string, amount float64) core.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.Color(hex)
	}
	return core.Color(bg.BlendRgb(c, core.ClampF(amount, 0, 1)).Clamped().Hex())
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderBackground(dst)
	g.renderWalls(dst)
	g.renderBlocks(dst)
	g.renderParticles(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderBackground draws the nebulae and the twinkling stars.
func (g *Game) renderBackground(dst *core.Screen) {
	for _, n := range g.nebulae {
		cx, cy := g.layout.ToCell(n.Position)
		rx := int(n.Size / g.layout.CellW)
		ry := int(n.Size / g.layout.CellH)
		color := fade(n.Color, n.Opacity)
		for y := cy - ry; y <= cy+ry; y++ {
			for x := cx - rx; x <= cx+rx; x++ {
				if (x+y)%2 != 0 {
					continue
				}
				nx := float64(x-cx) / float64(max(rx, 1))
				ny := float64(y-cy) / float64(max(ry, 1))
				if nx*nx+ny*ny <= 1 {
					dst.SetCell(x, y, NebulaChar, color)
				}
			}
		}
	}

	for _, s := range g.stars {
		// Triangle wave over the phase, eased so stars linger at the extremes.
		t := s.TwinklePhase / (2 * math.Pi)
		tri := 1 - math.Abs(2*t-1)
		twinkle := float64(ease.InOutSine(float32(tri), 0, 1, 1))
		bright := s.Brightness * (0.4 + 0.6*twinkle)

		glyph := '.'
		if bright > 0.6 && s.Size > 1.5 {
			glyph = '+'
		}
		x, y := g.layout.ToCell(s.Position)
		dst.SetCell(x, y, glyph, fade(s.Color, bright))
	}
}

// renderWalls draws the side walls.
func (g *Game) renderWalls(dst *core.Screen) {
	left := int(math.Floor(g.layout.Left/g.layout.CellW)) - 1
	right := int(math.Ceil(g.layout.Right / g.layout.CellW))
	for y := 1; y < dst.Height(); y++ {
		dst.SetCell(max(left, 0), y, WallChar, core.ColorBorder)
		dst.SetCell(min(right, dst.Width()-1), y, WallChar, core.ColorBorder)
	}
}

// renderBlocks draws all alive blocks.
func (g *Game) renderBlocks(dst *core.Screen) {
	for _, blk := range g.blocks {
		if !blk.Alive {
			continue
		}

		glyph := BlockChar
		if blk.IsSpecial {
			glyph = SpecialBlockChar
		}

		from, to := g.layout.SpanCells(blk.Position.X, blk.Width)
		top, bottom := g.layout.rowSpan(blk.Position.Y, blk.Height)
		for y := top; y < bottom; y++ {
			for x := from; x < to; x++ {
				dst.SetCell(x, y, glyph, core.Color(blk.Color))
			}
		}
	}
}

// renderParticles draws particles fading with their remaining life.
func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.particles.Particles() {
		alpha := float64(ease.InQuad(float32(p.Fraction()), 0, 1, 1))

		var glyph rune
		switch {
		case alpha < 0.2:
			glyph = '.'
		case p.Size >= 2:
			glyph = '*'
		default:
			glyph = '·'
		}

		x, y := g.layout.ToCell(p.Position)
		dst.SetCell(x, y, glyph, fade(p.Color, alpha))
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	from, to := g.layout.SpanCells(g.paddle.X, g.paddle.Width)
	_, y := g.layout.ToCell(g.paddle.Rect().Position)
	for x := from; x < to; x++ {
		dst.SetCell(x, y, PaddleChar, core.ColorPaddle)
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	if g.state == StateGameOver {
		return
	}
	x, y := g.layout.ToCell(g.ball.Position)
	dst.SetCell(x, y, BallChar, core.ColorBall)
}

// renderHUD draws the score, lives, and level indicator on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	for x := range dst.Width() {
		dst.SetCell(x, 0, ' ', core.ColorDefault)
	}

	scoreText := fmt.Sprintf("Score: %d", g.hudScore.value())
	dst.DrawColorText(1, 0, scoreText, core.ColorHUD)

	livesText := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawColorText((dst.Width()-len(livesText))/2, 0, livesText, core.ColorHUD)

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.Level())
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", g.levelIndex+1, LevelCount())
	}
	dst.DrawColorText(dst.Width()-len(levelText)-1, 0, levelText, core.ColorHUD)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		if g.serveDelay <= 0 {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		} else {
			dst.DrawTextCentered(dst.Height()-1, "Get ready...")
		}

	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBorder)

	dst.DrawColorText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorHUD)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
