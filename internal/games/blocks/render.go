package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/engine"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.layout(dst.Width(), dst.Height())
	}

	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.boardSize()
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h+hudHeight))
		return
	}

	g.renderBoard(dst)

	switch g.session.State() {
	case engine.StatePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case engine.StateOver:
		if g.started {
			renderOverlay(dst, "Game Over", fmt.Sprintf("Lines: %d  R to restart", g.session.Lines()))
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Blocks  Lines: %d  Speed: %dms", g.session.Lines(), g.gravity.Interval().Milliseconds())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the frame, the settled cells and the active piece.
func (g *Game) renderBoard(dst *core.Screen) {
	w, h := g.boardSize()
	dst.DrawBox(core.NewRect(g.boardX, g.boardY, w, h))

	board := g.session.Board()
	for y := 0; y < board.Rows(); y++ {
		for x := 0; x < board.Columns(); x++ {
			sx, sy := g.cellOrigin(engine.Coord{X: x, Y: y})
			dst.SetColored(sx+1, sy, '.', core.ColorGray)
		}
	}

	for _, c := range board.Cells() {
		g.drawSquare(dst, c.Coord, c.Shape)
	}

	if p := g.session.Current(); p != nil {
		for _, c := range p.Cells() {
			g.drawSquare(dst, c, p.Shape())
		}
	}
}

// drawSquare draws one board cell as a colored "[]". Rows above the top
// edge are not visible.
func (g *Game) drawSquare(dst *core.Screen, c engine.Coord, shape engine.Shape) {
	if c.Y < 0 {
		return
	}
	sx, sy := g.cellOrigin(c)
	color := shape.Color()
	dst.SetColored(sx, sy, '[', color)
	dst.SetColored(sx+1, sy, ']', color)
}

// cellOrigin maps a board coordinate to the screen position of its left half.
func (g *Game) cellOrigin(c engine.Coord) (x, y int) {
	return g.boardX + 1 + c.X*2, g.boardY + 1 + c.Y
}

// renderOverlay draws a centered overlay message.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(box.W-len(line1))/2, box.Y+1, line1)
	dst.DrawText(box.X+(box.W-len(line2))/2, box.Y+3, line2)
}
