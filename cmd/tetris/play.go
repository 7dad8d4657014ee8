package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var flagHighScoreFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing Tetris.

Controls:
  Left/Right  - Move
  Down        - Drop
  Space       - Rotate
  Enter       - Start / resume / play again
  P           - Pause
  Q/Ctrl+C    - Quit

Difficulty options (scale the fall delay):
  easy   - 1.5x slower
  normal - config value
  hard   - 0.6x

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --config ./my-tetris.yaml
  tetris play --highscore-file ./high_score.txt`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagHighScoreFile, "highscore-file", "", "High score file (default from config)")
	menuCmd.Flags().StringVar(&flagHighScoreFile, "highscore-file", "", "High score file (default from config)")
}

// gameSetup holds everything a local game needs.
type gameSetup struct {
	cfg     config.TetrisConfig
	runtime core.RuntimeConfig
	store   *storage.Store
	options tetris.Options
}

// prepareGame loads the config, opens storage and builds game options for a
// local terminal session.
func prepareGame(cmd *cobra.Command, logger *log.Logger) (gameSetup, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return gameSetup{}, err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(config.ExpandHome(cfg.Storage.Database))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	hsPath := cfg.Storage.HighScoreFile
	if flagHighScoreFile != "" {
		hsPath = flagHighScoreFile
	}
	highScores := storage.NewHighScoreFile(config.ExpandHome(hsPath))

	return gameSetup{
		cfg: cfg,
		runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Timing.TickRate,
			Seed:     flagSeed,
		},
		store: store,
		options: tetris.Options{
			BaseTimeout: cfg.BaseTimeout(),
			HighScores:  highScores,
			Logger:      logger,
		},
	}, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	setup, err := prepareGame(cmd, logger)
	if err != nil {
		return err
	}
	if setup.store != nil {
		defer setup.store.Close()
	}

	logger.Info("starting game", "difficulty", setup.cfg.Difficulty.Preset, "base_timeout_ms", setup.cfg.Timing.BaseTimeoutMS)

	game := tetris.New(setup.options)
	if err := tui.Run(game, setup.store, setup.runtime, playerName(), logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	snap := game.Snapshot()
	fmt.Printf("Score: %d  Level: %d  Lines: %d\n", snap.Score, snap.Level, snap.Lines)
	if snap.NewRecord() {
		fmt.Println("NEW RECORD!")
	}
	return nil
}
