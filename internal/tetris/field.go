package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Field dimensions. Only the leftmost RealFieldWidth columns and rows
// 1..FieldHeight-2 are playable; row 0, the last row and the last column are
// walls enforced by the validator.
const (
	FieldHeight    = 22
	FieldWidth     = 11
	RealFieldWidth = 10
)

// Cell codes: 0 is empty, 1..7 is a fixed cell of shape code-1, and
// MovingBase+shape marks the falling piece.
const (
	CellEmpty  = 0
	MovingBase = 8
)

// Field is the game grid indexed as [row][col].
type Field [FieldHeight][FieldWidth]int

// FixedCode returns the code of a permanently fixed cell of the given shape.
func FixedCode(s ShapeType) int {
	return int(s) + 1
}

// MovingCode returns the code of a cell occupied by a falling piece.
func MovingCode(s ShapeType) int {
	return MovingBase + int(s)
}

// IsFixed reports whether code belongs to a settled piece.
func IsFixed(code int) bool {
	return code > CellEmpty && code <= ShapeCount
}

// IsMoving reports whether code belongs to the falling piece.
func IsMoving(code int) bool {
	return code > ShapeCount
}

// ShapeOf returns the shape that produced a non-empty cell code.
func ShapeOf(code int) ShapeType {
	if IsMoving(code) {
		return ShapeType(code - MovingBase)
	}
	return ShapeType(code - 1)
}

// At returns the code at p, or CellEmpty outside the grid.
func (f Field) At(p core.Point) int {
	if p.Row < 0 || p.Row >= FieldHeight || p.Col < 0 || p.Col >= FieldWidth {
		return CellEmpty
	}
	return f[p.Row][p.Col]
}

// Filled counts the non-empty cells of the grid.
func (f Field) Filled() int {
	n := 0
	for r := range FieldHeight {
		for c := range FieldWidth {
			if f[r][c] != CellEmpty {
				n++
			}
		}
	}
	return n
}

// MovingCells counts the cells that hold a falling-piece code.
func (f Field) MovingCells() int {
	n := 0
	for r := range FieldHeight {
		for c := range FieldWidth {
			if IsMoving(f[r][c]) {
				n++
			}
		}
	}
	return n
}

// RowEmpty reports whether every cell of row r is empty.
func (f Field) RowEmpty(r int) bool {
	for c := range FieldWidth {
		if f[r][c] != CellEmpty {
			return false
		}
	}
	return true
}
