package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// HighScoreStore loads and persists the best score across sessions.
type HighScoreStore interface {
	// LoadHighScore returns the stored high score, or 0 when unavailable.
	LoadHighScore() int
	// SaveHighScore replaces the stored high score.
	SaveHighScore(score int) error
}

// Options configures a new session.
type Options struct {
	Seed        int64            // RNG seed for the piece sequence
	BaseTimeout time.Duration    // fall delay at level 1 (default DefaultBaseTimeout)
	HighScores  HighScoreStore   // optional; nil means high scores start at 0 and are not saved
	Now         func() time.Time // clock; defaults to time.Now
	Logger      *log.Logger      // optional lifecycle logger
}

// Preview describes the upcoming piece for display.
type Preview struct {
	Cells   [PieceCells]core.Point // next shape in rotation 0
	Current int                    // fixed code of the falling shape
	Next    int                    // fixed code of the queued shape
}

func newPreview(current, next ShapeType) Preview {
	return Preview{
		Cells:   Offsets(next, 0),
		Current: FixedCode(current),
		Next:    FixedCode(next),
	}
}

// Session is one game from start to GameOver or Terminated. It owns the
// field, the falling piece, the counters and the fall timer. A Session is not
// safe for concurrent use; callers tick it from a single goroutine.
type Session struct {
	field   Field
	piece   Piece
	preview Preview

	score     int
	highScore int
	level     int
	lines     int

	ctl      controller
	timer    *FallTimer
	rng      *rand.Rand
	store    HighScoreStore
	logger   *log.Logger
	released bool
}

// NewSession starts a session in the ReadyToStart state, loading the high
// score from the store.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		level:  1,
		timer:  NewFallTimer(opts.BaseTimeout, opts.Now),
		rng:    rand.New(rand.NewSource(opts.Seed)),
		store:  opts.HighScores,
		logger: logger,
	}
	if s.store != nil {
		s.highScore = max(0, s.store.LoadHighScore())
	}

	s.piece = Piece{
		Shape: s.randomShape(),
		Next:  s.randomShape(),
	}
	s.preview = newPreview(s.piece.Shape, s.piece.Next)

	s.logger.Debug("session created", "high_score", s.highScore, "first", s.piece.Shape, "next", s.piece.Next)
	return s
}

func (s *Session) randomShape() ShapeType {
	return ShapeType(s.rng.Intn(ShapeCount))
}

// Input translates one external action into the controller state.
// It is ignored once the session has ended.
func (s *Session) Input(a core.Action) {
	if s.released {
		return
	}
	s.ctl.translate(a)
}

// Update runs one tick: the fall timer, dispatch of the pending command,
// settling a landed piece and spawning the next one. When the session ends
// it is released. The returned snapshot reflects the state after the tick.
func (s *Session) Update() Snapshot {
	if s.released {
		return s.Snapshot()
	}

	if s.ctl.live() && s.timer.Poll(s.level) {
		s.ctl.pending = commandAutoShift
	}
	s.dispatch()
	s.orchestrate()

	return s.Snapshot()
}

// Tick feeds an action and runs one update.
func (s *Session) Tick(a core.Action) Snapshot {
	s.Input(a)
	return s.Update()
}

func (s *Session) dispatch() {
	switch s.ctl.pending {
	case commandMoveLeft:
		MoveLateral(&s.piece, &s.field, MoveLeft)
	case commandMoveRight:
		MoveLateral(&s.piece, &s.field, MoveRight)
	case commandFall:
		HardDrop(&s.piece, &s.field)
	case commandRotate:
		Rotate(&s.piece, &s.field)
	case commandAutoShift:
		ShiftDown(&s.piece, &s.field)
	}
	if s.ctl.live() {
		s.ctl.pending = commandNone
	}
}

func (s *Session) orchestrate() {
	if s.ctl.live() && s.ctl.pending == commandNone && !CanMove(s.piece, &s.field, MoveDown) {
		Fix(s.piece, &s.field)
		s.settle()
	}

	if s.ctl.live() && s.ctl.pending == commandNextFigure {
		s.spawn()
		s.ctl.pending = commandAutoShift
	}

	if s.ctl.terminal() {
		s.Close()
	}
}

// spawn promotes the queued piece to the origin and queues a new one.
func (s *Session) spawn() {
	s.piece.respawn(s.randomShape())
	s.preview = newPreview(s.piece.Shape, s.piece.Next)
}

// Close ends the session. The high score is saved if this session reached
// it. Close is idempotent and is called automatically on GameOver and
// Terminated.
func (s *Session) Close() {
	if s.released {
		return
	}
	s.released = true
	if !s.ctl.terminal() {
		s.ctl.phase = phaseTerminated
		s.ctl.pending = commandNone
	}

	if s.store == nil || s.score < s.highScore {
		return
	}
	if err := s.store.SaveHighScore(s.highScore); err != nil {
		s.logger.Warn("could not save high score", "score", s.highScore, "error", err)
		return
	}
	s.logger.Info("high score saved", "score", s.highScore)
}

// Released reports whether the session has ended and persisted its result.
func (s *Session) Released() bool {
	return s.released
}

// State returns the current controller state.
func (s *Session) State() ControlState {
	return s.ctl.state()
}

// Piece returns a copy of the falling piece.
func (s *Session) Piece() Piece {
	return s.piece
}
