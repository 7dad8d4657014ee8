package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// Default values used when the config omits or misstates a field.
const (
	DefaultBaseTimeoutMS = 1000
	DefaultTickRate      = 60
	MinTickRate          = 1
	MaxTickRate          = 240
	DefaultHighScoreFile = "high_score.txt"
	DefaultDatabase      = "~/.tetris/scores.db"
)

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			BaseTimeoutMS: DefaultBaseTimeoutMS,
			TickRate:      DefaultTickRate,
		},
		Storage: StorageConfig{
			HighScoreFile: DefaultHighScoreFile,
			Database:      DefaultDatabase,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
