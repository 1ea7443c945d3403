package highscore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// record is the on-disk layout: {"highscore": N}.
type record struct {
	HighScore int `json:"highscore"`
}

// FileStore persists the high score as a single small JSON file at a
// fixed path. Writes go through a temp file and rename so a crash never
// leaves a truncated record behind.
type FileStore struct {
	path string
}

// NewFileStore creates a store for the given path. A leading "~" is
// expanded to the user's home directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("highscore: empty path")
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("highscore: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &FileStore{path: path}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load implements Store.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("highscore: corrupt record in %s: %w", s.path, err)
	}
	if rec.HighScore < 0 {
		return 0, fmt.Errorf("highscore: negative score in %s", s.path)
	}
	return rec.HighScore, nil
}

// Save implements Store.
func (s *FileStore) Save(score int) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	data, err := json.Marshal(record{HighScore: score})
	if err != nil {
		return fmt.Errorf("highscore: cannot encode record: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", s.path, err)
	}
	return nil
}
