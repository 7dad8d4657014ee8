package tetris

// Scoring and level progression.
const (
	PointsPerLevel = 600
	MaxLevelStep   = 10
	MaxLevel       = MaxLevelStep + 1
)

// lineAwards is indexed by the number of rows cleared by one settle.
var lineAwards = [...]int{0, 100, 300, 700, 1500}

// Award returns the points for clearing n rows at once.
func Award(n int) int {
	if n < 0 || n >= len(lineAwards) {
		return 0
	}
	return lineAwards[n]
}

// LevelFor returns the level for score. Once score passes the last level
// threshold the current level is kept.
func LevelFor(score, current int) int {
	if step := score / PointsPerLevel; step <= MaxLevelStep {
		return step + 1
	}
	return current
}

// rowComplete reports whether the playable part of row r is full.
func (f *Field) rowComplete(r int) bool {
	for c := range RealFieldWidth {
		if f[r][c] == CellEmpty {
			return false
		}
	}
	return true
}

// removeRow drops every row above r by one and empties the top row.
func (f *Field) removeRow(r int) {
	for i := r; i > 0; i-- {
		f[i] = f[i-1]
	}
	f[0] = [FieldWidth]int{}
}

// ClearLines removes every complete row, scanning top to bottom, and returns
// how many were removed. Removing a row only moves rows that were already
// scanned, so rows below are still checked at their original index.
func ClearLines(f *Field) int {
	cleared := 0
	for r := range FieldHeight {
		if f.rowComplete(r) {
			f.removeRow(r)
			cleared++
		}
	}
	return cleared
}

// settle clears complete rows, updates score, level and high score, and
// either requests the next piece or ends the game when the top row is used.
func (s *Session) settle() int {
	s.ctl.pending = commandNextFigure

	cleared := ClearLines(&s.field)
	s.lines += cleared
	s.score += Award(cleared)
	s.level = LevelFor(s.score, s.level)
	s.highScore = max(s.highScore, s.score)

	if !s.field.RowEmpty(0) {
		s.ctl.gameOver()
	}
	return cleared
}
