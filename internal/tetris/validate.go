package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// MoveKind is a candidate move checked by CanMove.
type MoveKind int

const (
	MoveLeft MoveKind = iota + 1
	MoveRight
	MoveDown
	MoveRotate
)

// String returns the move name.
func (k MoveKind) String() string {
	switch k {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveDown:
		return "down"
	case MoveRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// delta returns the row and column displacement and the rotation the move
// would leave the piece in.
func (k MoveKind) delta(p Piece) (dx, dy, rotation int) {
	rotation = p.Rotation
	switch k {
	case MoveLeft:
		dy = -1
	case MoveRight:
		dy = 1
	case MoveDown:
		dx = 1
	case MoveRotate:
		rotation = (p.Rotation + 1) % RotationCount
	}
	return dx, dy, rotation
}

// CanMove reports whether the piece can make the move on the field.
// It never mutates either argument.
func CanMove(p Piece, f *Field, kind MoveKind) bool {
	dx, dy, rotation := kind.delta(p)
	return fits(f, p.cellsAt(dx, dy, rotation))
}

// fits reports whether every cell is inside the playable area and not on a
// fixed cell. Cells of the falling piece are not obstacles.
func fits(f *Field, cells [PieceCells]core.Point) bool {
	for _, c := range cells {
		if c.Row <= 0 || c.Row >= FieldHeight-1 {
			return false
		}
		if c.Col < 0 || c.Col >= FieldWidth-1 {
			return false
		}
		if IsFixed(f[c.Row][c.Col]) {
			return false
		}
	}
	return true
}
