package tetris

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the rendered game, in screen cells.
const (
	boardWidth  = RealFieldWidth*2 + 2
	boardHeight = FieldHeight
	infoX       = boardWidth + 1
	infoWidth   = 19
	MinScreenW  = infoX + infoWidth
	MinScreenH  = boardHeight
)

// CellColor returns the display color of a cell code.
func CellColor(code int) core.Color {
	if code == CellEmpty {
		return core.ColorDefault
	}
	return core.Color(FixedCode(ShapeOf(code)))
}

// Render draws the last snapshot.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.last)
}

// RenderSnapshot draws a snapshot: the field on the left and the info panel
// on the right, with overlays for the start, pause and end screens.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	dst.DrawBox(0, 0, boardWidth, boardHeight)
	dst.DrawBox(infoX, 0, infoWidth, boardHeight)

	switch {
	case snap.State == ReadyToStart:
		drawLines(dst, 4, map[int]string{9: "Press ENTER to", 11: "start the game"})
		drawWelcome(dst)
		return
	case snap.State == Paused:
		drawLines(dst, 2, map[int]string{9: "  Press ENTER to", 11: "continue the game"})
	case snap.State.Terminal():
		drawEnd(dst, snap)
		return
	default:
		drawField(dst, snap.Grid)
	}
	drawInfo(dst, snap)
}

func drawField(dst *core.Screen, grid Field) {
	for r := 1; r < FieldHeight-1; r++ {
		for c := range RealFieldWidth {
			code := grid[r][c]
			if code == CellEmpty {
				continue
			}
			dst.DrawTextColor(1+c*2, r, "[]", CellColor(code))
		}
	}
}

func drawInfo(dst *core.Screen, snap Snapshot) {
	x := infoX + 2
	dst.DrawText(x, 1, "Next figure")
	for _, p := range snap.Preview.Cells {
		dst.DrawTextColor(infoX+p.Col*2-2, p.Row+3, "[]", core.Color(snap.Preview.Next))
	}

	dst.DrawText(x, 7, "High score:")
	dst.DrawText(x, 8, strconv.Itoa(snap.HighScore))
	dst.DrawText(x, 10, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawText(x, 11, fmt.Sprintf("Level: %d", snap.Level))
	dst.DrawText(x, 12, fmt.Sprintf("Lines: %d", snap.Lines))
	dst.DrawText(x, 13, fmt.Sprintf("Speed: %dms", snap.Speed))
	drawHelp(dst, 15)
}

func drawWelcome(dst *core.Screen) {
	drawLines(dst, infoX+5, map[int]string{2: "WELCOME"})
	drawLines(dst, infoX+8, map[int]string{4: "TO"})
	drawLines(dst, infoX+6, map[int]string{6: "TETRIS"})
	drawHelp(dst, 9)
}

func drawHelp(dst *core.Screen, y int) {
	x := infoX + 2
	for i, line := range []string{
		"<- ->  move",
		"down   drop",
		"space  rotate",
		"p      pause",
		"q      quit",
		"enter  start",
	} {
		dst.DrawTextColor(x, y+i, line, core.ColorGray)
	}
}

func drawEnd(dst *core.Screen, snap Snapshot) {
	drawLines(dst, 6, map[int]string{9: "GAME OVER"})
	drawLines(dst, 4, map[int]string{11: "Your score is"})
	score := strconv.Itoa(snap.Score)
	dst.DrawText((boardWidth-len(score))/2, 13, score)
	if snap.NewRecord() {
		dst.DrawTextColor(5, 15, "NEW RECORD!", core.ColorYellow)
	}
	if snap.State == GameOver {
		dst.DrawTextColor(3, 18, "ENTER play again", core.ColorGray)
	}
	drawInfo(dst, snap)
}

func drawLines(dst *core.Screen, x int, lines map[int]string) {
	for y, text := range lines {
		dst.DrawText(x, y, text)
	}
}
