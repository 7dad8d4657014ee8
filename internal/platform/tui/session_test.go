package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

type staticHighScore int

func (s staticHighScore) LoadHighScore() int { return int(s) }
func (s staticHighScore) SaveHighScore(int) error { return nil }

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func newTestSessionModel() SessionModel {
	return NewSessionModel(SessionOptions{
		Config: testConfig(),
		Player: "tester",
		Game: tetris.Options{
			BaseTimeout: time.Hour,
			HighScores:  staticHighScore(4200),
		},
	})
}

func TestSessionMenuShowsHighScore(t *testing.T) {
	m := newTestSessionModel()
	assert.Equal(t, "menu", m.Mode())
	assert.Contains(t, m.View(), "High score: 4200")
}

func TestSessionPlayAndReturn(t *testing.T) {
	m := newTestSessionModel()

	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "game", m.Mode())
	assert.NotNil(t, cmd, "game starts ticking")

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = sendSession(t, m, TickMsg{})
	assert.Equal(t, tetris.NoSignal, m.game.Snapshot().State)

	m, _ = sendSession(t, m, runeKey('q'))
	m, _ = sendSession(t, m, TickMsg{})
	assert.Equal(t, "menu", m.Mode())
	assert.Nil(t, m.game)
}

func TestSessionScoresAndQuit(t *testing.T) {
	m := newTestSessionModel()

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "scores", m.Mode())
	assert.Contains(t, m.View(), "No scores recorded yet")

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "menu", m.Mode())

	m, cmd := sendSession(t, m, runeKey('q'))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestSessionMenuQuitEntry(t *testing.T) {
	m := newTestSessionModel()
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.True(t, m.menu.IsQuitting())
}
