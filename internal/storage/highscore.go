package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HighScoreFile keeps the best score in a plain-text file holding a single
// decimal integer with no trailing newline.
type HighScoreFile struct {
	path string
}

// NewHighScoreFile returns a store backed by path. A leading ~ is expanded.
func NewHighScoreFile(path string) *HighScoreFile {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return &HighScoreFile{path: path}
}

// Path returns the file location.
func (h *HighScoreFile) Path() string {
	return h.path
}

// LoadHighScore reads the stored score. A missing file is created empty and
// reads as 0, as does any content without a leading integer.
func (h *HighScoreFile) LoadHighScore() int {
	data, err := os.ReadFile(h.path)
	if errors.Is(err, fs.ErrNotExist) {
		if f, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			f.Close()
		}
		return 0
	}
	if err != nil {
		return 0
	}
	return ParseScore(string(data))
}

// SaveHighScore overwrites the file with score.
func (h *HighScoreFile) SaveHighScore(score int) error {
	if err := os.WriteFile(h.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score %s: %w", h.path, err)
	}
	return nil
}

// ParseScore parses the leading decimal integer of s, skipping leading
// whitespace and accepting one sign. Anything else reads as 0.
func ParseScore(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
