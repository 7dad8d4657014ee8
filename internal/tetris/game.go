package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// GameID identifies Tetris in score storage.
const GameID = "tetris"

// Game adapts a Session to the platform loop: it seeds sessions from the
// runtime config, restarts after a game over and renders snapshots.
type Game struct {
	opts    Options
	seeds   *rand.Rand
	session *Session
	last    Snapshot
}

// New creates a game. opts.Seed is ignored; seeds come from Reset.
func New(opts Options) *Game {
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset ends any running session and starts a new one waiting for Start.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.seeds = rand.New(rand.NewSource(seed))
	g.restart()
}

func (g *Game) restart() {
	if g.session != nil {
		g.session.Close()
	}
	if g.seeds == nil {
		g.seeds = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	opts := g.opts
	opts.Seed = g.seeds.Int63()
	g.session = NewSession(opts)
	g.last = g.session.Snapshot()
}

// Step feeds one action and advances the session by one tick. Start after a
// game over begins a fresh session.
func (g *Game) Step(a core.Action) core.StepResult {
	if g.session == nil {
		g.restart()
	}
	if a == core.ActionStart && g.last.State == GameOver {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	g.last = g.session.Tick(a)
	return core.StepResult{State: g.State()}
}

// State returns the platform view of the current session.
func (g *Game) State() core.GameState {
	snap := g.last
	return core.GameState{
		Score:      snap.Score,
		HighScore:  snap.HighScore,
		Level:      snap.Level,
		Lines:      snap.Lines,
		Paused:     snap.State == Paused,
		GameOver:   snap.State == GameOver,
		Terminated: snap.State == Terminated,
	}
}

// Snapshot returns the snapshot taken after the last tick.
func (g *Game) Snapshot() Snapshot {
	return g.last
}

// Close ends the running session, saving the high score if reached.
func (g *Game) Close() {
	if g.session == nil {
		return
	}
	g.session.Close()
	g.last = g.session.Snapshot()
}
