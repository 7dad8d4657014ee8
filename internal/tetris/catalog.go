// Package tetris implements the Tetris game engine: the field grid, the
// falling piece, movement validation, line clearing and scoring, the fall
// timer and the state machine that turns discrete actions into field
// mutations. It has no terminal or Bubble Tea dependencies.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// ShapeType identifies one of the seven tetrominoes.
type ShapeType int

const (
	ShapeI ShapeType = iota
	ShapeL
	ShapeJ
	ShapeO
	ShapeS
	ShapeZ
	ShapeT
)

const (
	ShapeCount    = 7
	RotationCount = 4
	PieceCells    = 4
)

// String returns the conventional letter for the shape.
func (s ShapeType) String() string {
	if s < 0 || s >= ShapeCount {
		return "?"
	}
	return string("ILJOSZT"[s])
}

// Axis selects the row or column component of a catalog offset.
type Axis int

const (
	AxisRow Axis = iota
	AxisCol
)

// shapes holds the (row, col) offsets of every cell of every shape in every
// rotation. Offsets are relative to the spawn origin, so a piece at (0, 0)
// sits centered at the top of the field.
var shapes = [ShapeCount][RotationCount][PieceCells][2]int{
	ShapeI: {
		{{0, 3}, {0, 4}, {0, 5}, {0, 6}},
		{{-1, 5}, {0, 5}, {1, 5}, {2, 5}},
		{{1, 3}, {1, 4}, {1, 5}, {1, 6}},
		{{-1, 4}, {0, 4}, {1, 4}, {2, 4}},
	},
	ShapeL: {
		{{0, 4}, {1, 4}, {2, 4}, {2, 5}},
		{{2, 3}, {1, 3}, {1, 4}, {1, 5}},
		{{0, 3}, {0, 4}, {1, 4}, {2, 4}},
		{{1, 3}, {1, 4}, {1, 5}, {0, 5}},
	},
	ShapeJ: {
		{{0, 4}, {1, 4}, {2, 4}, {2, 3}},
		{{0, 3}, {1, 3}, {1, 4}, {1, 5}},
		{{0, 5}, {0, 4}, {1, 4}, {2, 4}},
		{{1, 3}, {1, 4}, {1, 5}, {2, 5}},
	},
	ShapeO: {
		{{0, 4}, {1, 4}, {0, 5}, {1, 5}},
		{{0, 4}, {1, 4}, {0, 5}, {1, 5}},
		{{0, 4}, {1, 4}, {0, 5}, {1, 5}},
		{{0, 4}, {1, 4}, {0, 5}, {1, 5}},
	},
	ShapeS: {
		{{1, 3}, {1, 4}, {0, 4}, {0, 5}},
		{{0, 4}, {1, 4}, {1, 5}, {2, 5}},
		{{2, 3}, {2, 4}, {1, 4}, {1, 5}},
		{{0, 3}, {1, 3}, {1, 4}, {2, 4}},
	},
	ShapeZ: {
		{{0, 3}, {0, 4}, {1, 4}, {1, 5}},
		{{0, 5}, {1, 5}, {1, 4}, {2, 4}},
		{{1, 3}, {1, 4}, {2, 4}, {2, 5}},
		{{0, 4}, {1, 4}, {1, 3}, {2, 3}},
	},
	ShapeT: {
		{{0, 4}, {1, 4}, {1, 3}, {1, 5}},
		{{0, 4}, {1, 4}, {2, 4}, {1, 5}},
		{{1, 3}, {1, 4}, {1, 5}, {2, 4}},
		{{0, 4}, {1, 4}, {2, 4}, {1, 3}},
	},
}

// Offset returns one component of one cell offset from the catalog.
// Callers keep every index inside its declared range.
func Offset(shape ShapeType, rotation, part int, axis Axis) int {
	return shapes[shape][rotation][part][axis]
}

// Offsets returns the four cell offsets of a shape in the given rotation.
func Offsets(shape ShapeType, rotation int) [PieceCells]core.Point {
	var out [PieceCells]core.Point
	for i := range PieceCells {
		out[i] = core.Point{
			Row: Offset(shape, rotation, i, AxisRow),
			Col: Offset(shape, rotation, i, AxisCol),
		}
	}
	return out
}
