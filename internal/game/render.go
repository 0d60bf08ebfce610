package game

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/crypto-flap/internal/core"
)

// Glyphs used by the renderer.
const (
	CoinGlyph  = '₿'
	CoinFill   = '●'
	GlowGlyph  = '░'
	BarGlyph   = '█'
	BarTopEdge = '▀' // partially covered last row of a top bar
	BarBotEdge = '▄' // partially covered first row of a bottom bar
	TraceGlyph = '·'
)

// minRowsForBigScore is the screen height below which the HUD falls back to
// a single text line.
const minRowsForBigScore = 16

// Render draws the current state into dst. It reads state only; animated
// values (glow, blinking, bounce) are derived from the clock.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	now := g.clock.Now()
	v := g.newView(dst)

	v.drawTrace(g.trace.Samples())

	switch g.phase {
	case PhaseStart:
		g.drawStartScreen(v, now)
	case PhasePlaying:
		v.drawObstacles(g.pipes.Obstacles(), g.pipes.Width())
		v.drawCoin(g.body.X, g.body.Y, g.body.Radius, glowRadius(g.body.Radius, now))
		g.drawHUD(v)
	case PhaseGameOver:
		v.drawObstacles(g.pipes.Obstacles(), g.pipes.Width())
		v.drawCoin(g.body.X, g.body.Y, g.body.Radius, glowRadius(g.body.Radius, now))
		g.drawGameOver(v, now)
	}
}

// view maps world units onto the cells of a screen.
type view struct {
	dst          *core.Screen
	cellW, cellH float64
	vp           core.Viewport
}

func (g *Game) newView(dst *core.Screen) view {
	return view{
		dst:   dst,
		cellW: g.cfg.Render.CellWidth,
		cellH: g.cfg.Render.CellHeight,
		vp:    g.viewport,
	}
}

func (v view) col(x float64) int { return int(math.Floor(x / v.cellW)) }
func (v view) row(y float64) int { return int(math.Floor(y / v.cellH)) }

// cellCenter returns the world position of the center of cell (c, r).
func (v view) cellCenter(c, r int) (float64, float64) {
	return (float64(c) + 0.5) * v.cellW, (float64(r) + 0.5) * v.cellH
}

// drawTrace plots the background chart across the full width, interpolating
// between samples for each column.
func (v view) drawTrace(samples []float64) {
	n := len(samples)
	if n < 2 || v.vp.W <= 0 {
		return
	}
	for c := range v.dst.Width() {
		x, _ := v.cellCenter(c, 0)
		pos := x / v.vp.W * float64(n-1)
		i := core.Clamp(int(pos), 0, n-2)
		frac := pos - float64(i)
		y := samples[i] + (samples[i+1]-samples[i])*frac
		v.dst.Set(c, v.row(y), TraceGlyph, core.ColorTrace)
	}
}

// drawObstacles paints every gate as a top and a bottom bar. The leading
// column is drawn in the lighter shade.
func (v view) drawObstacles(obstacles []Obstacle, width float64) {
	rows := v.dst.Height()
	for _, o := range obstacles {
		c0 := v.col(o.X)
		c1 := int(math.Ceil(o.Right(width)/v.cellW)) - 1

		for c := c0; c <= c1; c++ {
			color := core.ColorRed
			if c == c0 {
				color = core.ColorCrimson
			}

			// Top bar covers rows whose top edge is above TopHeight
			for r := 0; r < rows && float64(r)*v.cellH < o.TopHeight; r++ {
				glyph := BarGlyph
				if covered := o.TopHeight - float64(r)*v.cellH; covered < v.cellH/2 {
					glyph = BarTopEdge
				}
				v.dst.Set(c, r, glyph, color)
			}

			// Bottom bar covers rows whose bottom edge is below BottomY
			for r := max(v.row(o.BottomY), 0); r < rows; r++ {
				glyph := BarGlyph
				if covered := float64(r+1)*v.cellH - o.BottomY; covered < v.cellH/2 {
					glyph = BarBotEdge
				}
				v.dst.Set(c, r, glyph, color)
			}
		}
	}
}

// drawCoin paints the coin with a glow ring. The center cell always shows
// the coin glyph so the coin stays visible at any scale.
func (v view) drawCoin(x, y, radius, glow float64) {
	outer := max(radius, glow)
	for r := v.row(y - outer); r <= v.row(y+outer); r++ {
		for c := v.col(x - outer); c <= v.col(x+outer); c++ {
			cx, cy := v.cellCenter(c, r)
			d := math.Hypot(cx-x, cy-y)
			switch {
			case d <= radius:
				v.dst.Set(c, r, CoinFill, core.ColorGold)
			case d <= glow:
				v.dst.Set(c, r, GlowGlyph, core.ColorAmber)
			}
		}
	}
	v.dst.Set(v.col(x), v.row(y), CoinGlyph, core.ColorWhite)
}

// glowRadius breathes between 1.4 and 1.8 coin radii.
func glowRadius(radius float64, now time.Time) float64 {
	return radius * (1.6 + 0.2*math.Sin(millis(now)/300))
}

// blink returns an opacity in [0, 1] oscillating with the given period scale.
func blink(now time.Time, scale float64) float64 {
	return 0.5 + 0.5*math.Sin(millis(now)/scale)
}

func millis(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// drawBlinking draws centered text whose brightness follows opacity.
// Fully faded text is not drawn.
func (v view) drawBlinking(row int, text string, opacity float64) {
	switch {
	case opacity >= 0.5:
		v.dst.DrawTextCentered(row, text, core.ColorWhite)
	case opacity >= 0.15:
		v.dst.DrawTextCentered(row, text, core.ColorGray)
	}
}

// drawStartScreen shows the title, a bouncing coin and the start prompt.
func (g *Game) drawStartScreen(v view, now time.Time) {
	rows := v.dst.Height()
	base := g.viewport.MinDim()

	title := "C R Y P T O   F L A P"
	titleRow := int(float64(rows) * 0.35)
	v.dst.DrawTextCentered(titleRow, title, core.ColorGold)
	underline := make([]rune, len([]rune(title))+4)
	for i := range underline {
		underline[i] = '═'
	}
	v.dst.DrawTextCentered(titleRow+1, string(underline), core.ColorAmber)

	size := base * 0.05
	coinY := g.viewport.H*0.5 + math.Sin(millis(now)/300)*10
	v.drawCoin(g.viewport.W/2, coinY, size, size*1.5)

	v.drawBlinking(int(float64(rows)*0.75), "Tap to Start", blink(now, 500))
}

// drawHUD shows the score (pulsing after each point) and the best score.
func (g *Game) drawHUD(v view) {
	color := core.ColorGold
	if g.pulse > 1 {
		color = core.ColorWhite
	}

	if v.dst.Height() < minRowsForBigScore {
		v.dst.DrawTextCentered(0, fmt.Sprintf("%d  ·  Best: %d", g.score.Current, g.score.Best), color)
		return
	}

	w := bigNumberWidth(g.score.Current)
	x := (v.dst.Width() - w) / 2
	drawBigNumber(v.dst, x, 1, g.score.Current, color)

	// Sparkles fly outward while the pulse decays
	if g.pulse > 1 {
		spread := int(math.Round((g.pulse - 1) * 10))
		v.dst.Set(x-2-spread, 3, '✦', core.ColorGold)
		v.dst.Set(x+w+1+spread, 3, '✦', core.ColorGold)
	}

	v.dst.DrawTextCentered(1+glyphH+1, fmt.Sprintf("Best: %d", g.score.Best), core.ColorGray)
}

// drawBigNumber draws n with the block font, top-left at (x, y).
func drawBigNumber(dst *core.Screen, x, y, n int, color core.Color) {
	for _, d := range itoaDigits(n) {
		for gy, line := range digitGlyphs[d] {
			gx := 0
			for _, r := range line {
				if r != ' ' {
					dst.Set(x+gx, y+gy, r, color)
				}
				gx++
			}
		}
		x += glyphW + glyphGap
	}
}

// drawGameOver shows the banner, final and best score, and the restart
// prompt once restart is allowed.
func (g *Game) drawGameOver(v view, now time.Time) {
	rows := v.dst.Height()
	mid := rows / 2

	banner := "GAME OVER"
	boxW := len(banner) + 8
	box := core.NewRect((v.dst.Width()-boxW)/2, mid-4, boxW, 3)
	v.dst.FillRect(box, ' ', core.ColorDefault)
	v.dst.DrawBox(box, core.ColorCrimson)
	v.dst.DrawTextCentered(mid-3, banner, core.ColorCrimson)

	v.dst.DrawTextCentered(mid, fmt.Sprintf("Score: %d", g.score.Current), core.ColorGold)
	v.dst.DrawTextCentered(mid+2, fmt.Sprintf("Best: %d", g.score.Best), core.ColorWhite)

	if g.canRestart(now) {
		v.drawBlinking(mid+4, "Tap or Click to Restart", blink(now, 400))
	}
}
