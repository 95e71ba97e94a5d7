package trace

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-trace/internal/core"
)

const helpLine = "drag: trace  s: sound  r: restart  d: demo  n: next  p: pause  q: quit"

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.ctrl == nil {
		msg := "Letter catalog unavailable"
		if g.loadErr != nil {
			msg = g.loadErr.Error()
		}
		g.renderOverlay(dst, "Cannot start", msg)
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Layers, back to front
	g.renderZone(dst)
	g.renderStrokes(dst)
	g.renderStart(dst)
	g.renderFooter(dst)

	switch {
	case g.ctrl.IsComplete():
		l := g.ctrl.Letter()
		hint := "Press N for the next letter"
		if c, ok := g.LastCompletion(); ok {
			hint = fmt.Sprintf("Traced in %.1fs. %s", c.Elapsed.Seconds(), hint)
		}
		g.renderOverlay(dst, l.Reward+" "+g.message, hint)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	snap := g.ctrl.Snapshot()

	stroke := snap.Current + 1
	if stroke > snap.Total {
		stroke = snap.Total
	}
	hud := fmt.Sprintf(" %s - Letter %s  Stroke %d/%d", g.Title(), snap.Glyph, stroke, snap.Total)
	if g.cfg.Display.ShowCoverage && !snap.Complete {
		hud += fmt.Sprintf("  Coverage %3.0f%%", snap.Coverage*100)
	}
	hud += fmt.Sprintf("  Letters: %d", g.lettersDone)
	if g.demo != nil {
		hud += "  [demo]"
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	for x, w := 0, dst.Width(); x < w; x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderZone highlights the live stroke's zone and its activated cells.
func (g *Game) renderZone(dst *core.Screen) {
	if !g.cfg.Display.ShowZone {
		return
	}
	stroke, ok := g.ctrl.CurrentZone()
	if !ok {
		return
	}
	grid := g.ctrl.Grid()

	for y := g.area.Y; y < g.area.Bottom(); y++ {
		for x := g.area.X; x < g.area.Right(); x++ {
			p := g.viewport.CellToNormalized(x, y)
			if !core.PointInPolygon(p, stroke.Zone) {
				continue
			}
			if grid != nil && g.cfg.Display.ShowCoverage && grid.Activated(grid.CellAt(p)) {
				dst.SetColored(x, y, '▓', core.ColorTeal)
			} else {
				dst.SetColored(x, y, '░', core.ColorTeal)
			}
		}
	}
}

// renderStrokes draws faded strokes, the live stroke's guide and revealed strokes.
func (g *Game) renderStrokes(dst *core.Screen) {
	cur := g.ctrl.CurrentStroke()
	for i, lines := range g.paths {
		var (
			r rune
			c core.Color
		)
		switch {
		case g.ctrl.IsStrokeCompleted(i):
			r, c = '█', core.ColorCoral
		case i == cur:
			r, c = '•', core.ColorBrightWhite
		default:
			r, c = '·', core.ColorDimGray
		}
		for _, line := range lines {
			g.plot(dst, line, r, c)
		}
	}
}

// plot draws a polyline, one rune per covered cell, clipped to the letter area.
func (g *Game) plot(dst *core.Screen, line []core.Point, r rune, c core.Color) {
	for _, p := range line {
		x, y := g.viewport.ToCell(p)
		if g.area.Contains(x, y) {
			dst.SetColored(x, y, r, c)
		}
	}
}

// renderStart draws the "begin here" marker for the live stroke.
func (g *Game) renderStart(dst *core.Screen) {
	stroke, ok := g.ctrl.CurrentZone()
	if !ok {
		return
	}
	x, y := g.viewport.ToCell(stroke.StartIndicator)
	x = core.Clamp(x, g.area.X, g.area.Right()-2)
	y = core.Clamp(y, g.area.Y, g.area.Bottom()-1)
	dst.DrawTextColored(x, y, "GO", core.ColorBrightGreen)
}

// renderFooter draws the prompt and key help.
func (g *Game) renderFooter(dst *core.Screen) {
	h := dst.Height()
	if !g.ctrl.IsComplete() {
		dst.DrawTextCentered(h-2, g.message, core.ColorBrightYellow)
	}
	dst.DrawTextCentered(h-1, helpLine, core.ColorGray)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(runewidth.StringWidth(line1), runewidth.StringWidth(line2)) + 4
	if boxW > w {
		boxW = w
	}
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCoral)
	dst.DrawTextCentered(box.Y+1, truncate(line1, boxW-2), core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, truncate(line2, boxW-2), core.ColorGray)
}

// truncate shortens s to at most width display cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// DebugState returns a one-line description of the session.
func (g *Game) DebugState() string {
	if g.ctrl == nil {
		return "no letter"
	}
	snap := g.ctrl.Snapshot()
	var sb strings.Builder
	fmt.Fprintf(&sb, "letter=%s stroke=%d/%d coverage=%.2f done=%v", snap.Glyph, snap.Current, snap.Total, snap.Coverage, snap.Completed)
	if snap.Complete {
		sb.WriteString(" complete")
	}
	return sb.String()
}
