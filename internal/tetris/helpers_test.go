package tetris

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type memStore struct {
	high  int
	saved []int
	fail  bool
}

func (m *memStore) LoadHighScore() int { return m.high }

func (m *memStore) SaveHighScore(score int) error {
	if m.fail {
		return errors.New("disk full")
	}
	m.saved = append(m.saved, score)
	m.high = score
	return nil
}

// newTestSession returns a session with a frozen clock so the fall timer
// only fires when the test advances it.
func newTestSession(t *testing.T, store HighScoreStore) (*Session, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	s := NewSession(Options{
		Seed:        1,
		BaseTimeout: time.Second,
		HighScores:  store,
		Now:         clock.Now,
	})
	return s, clock
}

// forceShape replaces the shape of a piece that has not been drawn yet.
func forceShape(s *Session, shape ShapeType) {
	s.piece.Shape = shape
	s.preview = newPreview(shape, s.piece.Next)
}

// fillRow fills the playable part of row r with code, skipping gaps.
func fillRow(f *Field, r, code int, gaps ...int) {
	skip := make(map[int]bool, len(gaps))
	for _, c := range gaps {
		skip[c] = true
	}
	for c := range RealFieldWidth {
		if !skip[c] {
			f[r][c] = code
		}
	}
}

func place(f *Field, p Piece) {
	f.paint(p)
}

func cellSet(cells [PieceCells]core.Point) map[core.Point]bool {
	set := make(map[core.Point]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}
