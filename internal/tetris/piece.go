package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is the falling tetromino. X and Y are the accumulated row and column
// displacement from the spawn origin, not a corner of the shape.
type Piece struct {
	X, Y     int
	Rotation int
	Shape    ShapeType
	Next     ShapeType
}

// Cells returns the absolute grid positions the piece occupies.
func (p Piece) Cells() [PieceCells]core.Point {
	return p.cellsAt(0, 0, p.Rotation)
}

func (p Piece) cellsAt(dx, dy, rotation int) [PieceCells]core.Point {
	cells := Offsets(p.Shape, rotation)
	origin := core.Point{Row: p.X + dx, Col: p.Y + dy}
	for i := range cells {
		cells[i] = cells[i].Add(origin)
	}
	return cells
}

// respawn promotes the queued shape and moves the piece back to the origin.
func (p *Piece) respawn(next ShapeType) {
	p.Shape = p.Next
	p.Next = next
	p.X, p.Y, p.Rotation = 0, 0, 0
}
