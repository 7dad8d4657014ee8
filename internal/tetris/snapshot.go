package tetris

// Snapshot is a read-only copy of everything a renderer needs. It shares no
// memory with the session.
type Snapshot struct {
	Grid      Field
	Preview   Preview
	Score     int
	HighScore int
	Level     int
	Speed     int // fall delay in milliseconds
	Lines     int
	State     ControlState
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:      s.field,
		Preview:   s.preview,
		Score:     s.score,
		HighScore: s.highScore,
		Level:     s.level,
		Speed:     int(DelayFor(s.timer.Base(), s.level).Milliseconds()),
		Lines:     s.lines,
		State:     s.ctl.state(),
	}
}

// NewRecord reports whether the finished session set the high score.
func (snap Snapshot) NewRecord() bool {
	return snap.Score > 0 && snap.Score >= snap.HighScore
}
