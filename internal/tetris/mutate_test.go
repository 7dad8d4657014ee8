package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestShiftDownFromOrigin(t *testing.T) {
	var f Field
	p := Piece{Shape: ShapeO}

	require.True(t, ShiftDown(&p, &f))
	assert.Equal(t, 1, p.X)
	assert.Equal(t, 4, f.MovingCells())
	for _, c := range []core.Point{{Row: 1, Col: 4}, {Row: 2, Col: 4}, {Row: 1, Col: 5}, {Row: 2, Col: 5}} {
		assert.Equal(t, MovingCode(ShapeO), f.At(c), "cell %v", c)
	}
	assert.True(t, f.RowEmpty(0))
}

func TestShiftDownFixesBlockedPiece(t *testing.T) {
	var f Field
	p := Piece{X: 19, Shape: ShapeO}
	place(&f, p)

	assert.False(t, ShiftDown(&p, &f))
	assert.Equal(t, 19, p.X)
	assert.Zero(t, f.MovingCells())
	for _, c := range p.Cells() {
		assert.Equal(t, FixedCode(ShapeO), f.At(c))
	}
}

func TestHardDropLandsOnFloor(t *testing.T) {
	tests := []struct {
		name     string
		shape    ShapeType
		expected []core.Point
	}{
		{"square", ShapeO, []core.Point{{Row: 19, Col: 4}, {Row: 20, Col: 4}, {Row: 19, Col: 5}, {Row: 20, Col: 5}}},
		{"line", ShapeI, []core.Point{{Row: 20, Col: 3}, {Row: 20, Col: 4}, {Row: 20, Col: 5}, {Row: 20, Col: 6}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var f Field
			p := Piece{Shape: tc.shape}
			HardDrop(&p, &f)

			assert.Equal(t, PieceCells, f.Filled())
			assert.Zero(t, f.MovingCells())
			for _, c := range tc.expected {
				assert.Equal(t, FixedCode(tc.shape), f.At(c), "cell %v", c)
			}
		})
	}
}

func TestHardDropStopsOnStack(t *testing.T) {
	var f Field
	f[15][4] = FixedCode(ShapeT)
	p := Piece{Shape: ShapeO}

	HardDrop(&p, &f)
	assert.Equal(t, 13, p.X)
	assert.Equal(t, FixedCode(ShapeO), f[14][4])
	assert.Equal(t, FixedCode(ShapeO), f[13][5])
}

func TestMoveLateral(t *testing.T) {
	var f Field
	p := Piece{X: 5, Shape: ShapeO}
	place(&f, p)

	require.True(t, MoveLateral(&p, &f, MoveLeft))
	assert.Equal(t, -1, p.Y)
	assert.Equal(t, MovingCode(ShapeO), f[5][3])
	assert.Equal(t, CellEmpty, f[5][5])
	assert.Equal(t, PieceCells, f.MovingCells())

	require.True(t, MoveLateral(&p, &f, MoveRight))
	assert.Zero(t, p.Y)

	assert.False(t, MoveLateral(&p, &f, MoveDown), "only lateral kinds are accepted")
	assert.Equal(t, 5, p.X)
}

func TestMoveLateralStopsAtWalls(t *testing.T) {
	var f Field
	p := Piece{X: 5, Shape: ShapeO}
	place(&f, p)

	for range FieldWidth {
		MoveLateral(&p, &f, MoveLeft)
	}
	assert.Equal(t, -4, p.Y)
	assert.Equal(t, MovingCode(ShapeO), f[5][0])

	for range FieldWidth {
		MoveLateral(&p, &f, MoveRight)
	}
	assert.Equal(t, 4, p.Y)
	assert.Equal(t, MovingCode(ShapeO), f[5][9])
	assert.Equal(t, CellEmpty, f[5][10], "last column is never playable")
}

func TestRotateInPlace(t *testing.T) {
	var f Field
	p := Piece{X: 5, Shape: ShapeI}
	place(&f, p)

	require.True(t, Rotate(&p, &f))
	assert.Equal(t, 1, p.Rotation)
	assert.Zero(t, p.Y)
	for r := 4; r <= 7; r++ {
		assert.Equal(t, MovingCode(ShapeI), f[r][5])
	}
	assert.Equal(t, PieceCells, f.MovingCells())
}

func TestRotateKicks(t *testing.T) {
	tests := []struct {
		name     string
		piece    Piece
		blocked  []core.Point
		ok       bool
		expected int
	}{
		{
			name:     "right when blocked in place",
			piece:    Piece{X: 5, Shape: ShapeI},
			blocked:  []core.Point{{Row: 7, Col: 5}},
			ok:       true,
			expected: 1,
		},
		{
			name:     "left when right is blocked",
			piece:    Piece{X: 5, Shape: ShapeI},
			blocked:  []core.Point{{Row: 7, Col: 5}, {Row: 7, Col: 6}},
			ok:       true,
			expected: -1,
		},
		{
			name:     "line piece gets the wide kick",
			piece:    Piece{X: 5, Shape: ShapeI},
			blocked:  []core.Point{{Row: 7, Col: 4}, {Row: 7, Col: 5}, {Row: 7, Col: 6}},
			ok:       true,
			expected: 2,
		},
		{
			name:     "off the right wall",
			piece:    Piece{X: 5, Y: 4, Rotation: 1, Shape: ShapeI},
			ok:       true,
			expected: 3,
		},
		{
			name:    "line piece fully blocked",
			piece:   Piece{X: 5, Shape: ShapeI},
			blocked: []core.Point{{Row: 7, Col: 3}, {Row: 7, Col: 4}, {Row: 7, Col: 5}, {Row: 7, Col: 6}, {Row: 7, Col: 7}},
		},
		{
			name:    "other shapes get no wide kick",
			piece:   Piece{X: 5, Shape: ShapeT},
			blocked: []core.Point{{Row: 7, Col: 3}, {Row: 7, Col: 4}, {Row: 7, Col: 5}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var f Field
			for _, c := range tc.blocked {
				f[c.Row][c.Col] = FixedCode(ShapeZ)
			}
			p := tc.piece
			place(&f, p)
			before, piece := f, p

			assert.Equal(t, tc.ok, Rotate(&p, &f))
			if !tc.ok {
				assert.Equal(t, piece, p)
				assert.Equal(t, before, f)
				return
			}
			assert.Equal(t, tc.expected, p.Y)
			assert.Equal(t, (tc.piece.Rotation+1)%RotationCount, p.Rotation)
			assert.Equal(t, PieceCells, f.MovingCells())
			for _, c := range p.Cells() {
				assert.True(t, IsMoving(f.At(c)))
			}
		})
	}
}

func TestEraseKeepsFixedCells(t *testing.T) {
	var f Field
	f[1][4] = FixedCode(ShapeL)
	p := Piece{Shape: ShapeO}

	f.erase(p)
	assert.Equal(t, FixedCode(ShapeL), f[1][4])
}

func TestFixIgnoresCellsOutsideGrid(t *testing.T) {
	var f Field
	p := Piece{X: 0, Rotation: 1, Shape: ShapeI} // top cell at row -1

	assert.NotPanics(t, func() { Fix(p, &f) })
	assert.Equal(t, 3, f.Filled())
}
