package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// queueLimit bounds the key presses buffered between ticks.
const queueLimit = 8

// Model is the Bubble Tea model that runs one Tetris game. Each tick it feeds
// at most one queued action to the game.
type Model struct {
	game       *tetris.Game
	screen     *core.Screen
	store      *storage.Store
	player     string
	config     core.RuntimeConfig
	queue      core.ActionQueue
	keyMapper  *KeyMapper
	logger     *log.Logger
	gameState  core.GameState
	embedded   bool // ending the game returns to the caller instead of quitting
	done       bool
	quitting   bool
	scoreSaved bool // Whether the finished session has been recorded
}

// NewModel creates a new Bubble Tea model for the given game. store may be
// nil, in which case no score history is kept.
func NewModel(game *tetris.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		player:    player,
		config:    cfg,
		queue:     core.NewActionQueue(queueLimit),
		keyMapper: NewKeyMapper(),
		logger:    log.New(io.Discard),
	}
}

// WithLogger sets the logger used for score recording.
func (m Model) WithLogger(logger *log.Logger) Model {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action bound to the key for the next ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		// Quit preempts buffered moves.
		m.queue.Clear()
	}
	m.queue.Push(action)
	return m, nil
}

// handleTick runs one game step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	result := m.game.Step(m.queue.Pop())
	m.gameState = result.State

	if !m.gameState.Finished() {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.recordScore()
		m.scoreSaved = true
	}

	if m.gameState.Terminated {
		m.done = true
		if m.embedded {
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordScore adds the finished session to the score history.
func (m Model) recordScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.Result{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
		Lines:  m.gameState.Lines,
	})
	if err != nil {
		m.logger.Warn("could not record score", "player", m.player, "error", err)
		return
	}
	m.logger.Info("score recorded", "player", m.player, "score", m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Done reports whether the game was terminated.
func (m Model) Done() bool {
	return m.done
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model and closes the game
// when the program exits, saving the high score if it was reached.
func Run(game *tetris.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewModel(game, store, cfg, player).WithLogger(logger)
	defer game.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
