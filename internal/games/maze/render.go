package maze

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-maze/internal/core"
	mc "github.com/vovakirdan/tui-maze/internal/games/maze/core"
)

const (
	hudHeight   = 2
	tileWidth   = 2 // Terminal cells are about half as wide as tall
	batteryBars = 10
	minScreenW  = 24
	minScreenH  = 8
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderHUD(dst)

	if g.genErr != nil {
		g.renderOverlay(dst, "Cannot build maze", g.genErr.Error())
		return
	}

	g.renderMaze(dst)

	// Draw overlays
	switch {
	case g.won:
		g.renderOverlay(dst, "You found the way out!", fmt.Sprintf("Final Score: %d  (R to restart)", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Your light died", fmt.Sprintf("Score: %d  (R to restart)", g.score))
	case g.levelCleared:
		g.renderOverlay(dst, fmt.Sprintf("Maze %d cleared!", g.cleared), "Enter for the next one")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var level string
	if g.mode == ModeEndless {
		level = fmt.Sprintf("Maze %d", g.cleared+1)
	} else {
		level = fmt.Sprintf("Maze %d/%d", min(g.cleared+1, g.cfg.Campaign.Levels), g.cfg.Campaign.Levels)
	}
	hud := fmt.Sprintf(" %s | %s  Score: %d ", g.Title(), level, g.score)
	dst.DrawText(0, 0, hud)

	pct := g.batteryPercent()
	x := len([]rune(hud))
	filled := (pct*batteryBars + 99) / 100
	bar := strings.Repeat("■", filled) + strings.Repeat("·", batteryBars-filled)
	dst.DrawText(x, 0, "[")
	dst.DrawTextColored(x+1, 0, bar, batteryColor(pct))
	dst.DrawText(x+1+batteryBars, 0, fmt.Sprintf("] %3d%%", pct))

	x += batteryBars + 7
	if g.player.Boosted() {
		dst.DrawTextColored(x, 0, " BOOST", core.ColorBrightYellow)
	} else {
		dst.DrawTextColored(x, 0, " beam", core.ColorGray)
	}

	for sx := range dst.Width() {
		dst.Set(sx, 1, '─')
	}
}

func batteryColor(pct int) core.Color {
	switch {
	case pct > 50:
		return core.ColorGreen
	case pct > 20:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// renderMaze draws the lit part of the maze with the camera on the player.
func (g *Game) renderMaze(dst *core.Screen) {
	if g.maze == nil {
		return
	}
	viewW := dst.Width() / tileWidth
	viewH := dst.Height() - hudHeight
	cx, cy := core.NewRect(0, 0, viewW, viewH).Center()
	camX := g.player.Pos.X - cx
	camY := g.player.Pos.Y - cy

	for vy := range viewH {
		for vx := range viewW {
			p := mc.P(camX+vx, camY+vy)
			if !g.maze.InBounds(p) {
				continue
			}
			g.renderTile(dst, vx*tileWidth, hudHeight+vy, p)
		}
	}

	px := cx * tileWidth
	py := hudHeight + cy
	color := core.ColorBrightWhite
	if g.player.Boosted() {
		color = core.ColorBrightYellow
	}
	dst.SetColored(px, py, playerGlyph(g.player.Dir), color)
}

// renderTile draws one maze tile as tileWidth screen cells.
func (g *Game) renderTile(dst *core.Screen, x, y int, p mc.Position) {
	light := g.maze.LightAt(p)
	if light < g.cfg.Light.DarkBelow {
		return
	}
	dim := light < g.cfg.Light.DimBelow

	if g.maze.TileAt(p).Type == mc.Wall {
		color := core.ColorWhite
		if dim {
			color = core.ColorDarkGray
		}
		for i := range tileWidth {
			dst.SetColored(x+i, y, '█', color)
		}
		return
	}

	if p == g.maze.Goal() {
		dst.SetColored(x, y, '◆', core.ColorOrange)
		return
	}
	color := core.ColorGray
	if dim {
		color = core.ColorDarkGray
	}
	dst.SetColored(x, y, '·', color)
}

// playerGlyph returns the arrow for a facing.
func playerGlyph(d mc.Direction) rune {
	switch d {
	case mc.North:
		return '▲'
	case mc.East:
		return '▶'
	case mc.South:
		return '▼'
	case mc.West:
		return '◀'
	default:
		return '@'
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), min(w, dst.Width()), 5)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
