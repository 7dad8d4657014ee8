// Package config provides YAML-based configuration loading and difficulty
// presets for Tetris.
package config

import "time"

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Storage    StorageConfig    `yaml:"storage"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimingConfig defines the fall delay and the UI tick rate.
type TimingConfig struct {
	BaseTimeoutMS int `yaml:"base_timeout_ms"` // fall delay at level 1; divided by the level
	TickRate      int `yaml:"tick_rate"`       // UI ticks per second
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	HighScoreFile string `yaml:"high_score_file"`
	Database      string `yaml:"database"`
}

// DifficultyConfig selects a difficulty preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// BaseTimeout returns the configured level 1 fall delay.
func (c TetrisConfig) BaseTimeout() time.Duration {
	return time.Duration(c.Timing.BaseTimeoutMS) * time.Millisecond
}
