package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestFieldReadsOnSnapshotValue(t *testing.T) {
	s, _ := newTestSession(t, nil)
	forceShape(s, ShapeO)
	s.Tick(core.ActionStart)

	assert.Equal(t, PieceCells, s.Snapshot().Grid.Filled())
	assert.Equal(t, PieceCells, s.Snapshot().Grid.MovingCells())
	assert.Equal(t, MovingCode(ShapeO), s.Snapshot().Grid.At(core.Point{Row: 1, Col: 4}))
	assert.True(t, s.Snapshot().Grid.RowEmpty(0))
}

func TestFieldAtOutsideGrid(t *testing.T) {
	var f Field
	f[0][0] = FixedCode(ShapeT)

	assert.Equal(t, FixedCode(ShapeT), f.At(core.Point{Row: 0, Col: 0}))
	assert.Equal(t, CellEmpty, f.At(core.Point{Row: -1, Col: 0}))
	assert.Equal(t, CellEmpty, f.At(core.Point{Row: FieldHeight, Col: 0}))
	assert.Equal(t, CellEmpty, f.At(core.Point{Row: 0, Col: FieldWidth}))
}
