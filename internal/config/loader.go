package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const configFile = "tetris.yaml"

// LoadTetris loads the game configuration and normalizes it.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return Normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath, cfg); ok {
			return Normalize(loaded), nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", configFile), cfg); ok {
		return Normalize(loaded), nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil
	}
	return Normalize(cfg), nil
}

// tryLoad reads path over base. Missing or malformed files are skipped.
func tryLoad(path string, base TetrisConfig) (TetrisConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, false
	}
	return base, true
}

// Normalize replaces invalid values with defaults.
func Normalize(cfg TetrisConfig) TetrisConfig {
	if cfg.Timing.BaseTimeoutMS <= 0 {
		cfg.Timing.BaseTimeoutMS = DefaultBaseTimeoutMS
	}
	cfg.Timing.TickRate = core.Clamp(cfg.Timing.TickRate, MinTickRate, MaxTickRate)
	if cfg.Storage.HighScoreFile == "" {
		cfg.Storage.HighScoreFile = DefaultHighScoreFile
	}
	if cfg.Storage.Database == "" {
		cfg.Storage.Database = DefaultDatabase
	}
	if _, err := ParsePreset(string(cfg.Difficulty.Preset)); err != nil {
		cfg.Difficulty.Preset = DifficultyNormal
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
