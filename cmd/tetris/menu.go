package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a menu",
	Long: `Start Tetris in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends (Q), you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
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

	err = tui.RunSession(tui.SessionOptions{
		Store:  setup.store,
		Config: setup.runtime,
		Player: playerName(),
		Game:   setup.options,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
