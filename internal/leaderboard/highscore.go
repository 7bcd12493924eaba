package leaderboard

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// HighScores keeps the best score seen on this device, independent of the
// server.
type HighScores interface {
	Best() int64
	Record(score int64) (best int64, improved bool, err error)
}

type MemoryHighScores struct {
	mu   sync.Mutex
	best int64
}

func (m *MemoryHighScores) Best() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best
}

func (m *MemoryHighScores) Record(score int64) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.best {
		m.best = score
		return m.best, true, nil
	}
	return m.best, false, nil
}

// FileHighScores persists the best score as a small JSON document.
type FileHighScores struct {
	path string
	mem  MemoryHighScores
}

type highScoreFile struct {
	Best int64 `json:"best"`
}

// DefaultHighScorePath is the per-user location used when none is configured.
func DefaultHighScorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "scoreboard", "highscore.json")
}

// OpenFileHighScores loads path if it exists. A missing or unreadable file
// starts from zero.
func OpenFileHighScores(path string) (*FileHighScores, error) {
	store := &FileHighScores{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return store, err
	}
	var doc highScoreFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return store, err
	}
	store.mem.best = doc.Best
	return store, nil
}

func (f *FileHighScores) Best() int64 {
	return f.mem.Best()
}

// Record keeps the in-memory best even when the file write fails.
func (f *FileHighScores) Record(score int64) (int64, bool, error) {
	f.mem.mu.Lock()
	defer f.mem.mu.Unlock()
	if score <= f.mem.best {
		return f.mem.best, false, nil
	}
	f.mem.best = score
	return f.mem.best, true, f.write(highScoreFile{Best: score})
}

func (f *FileHighScores) write(doc highScoreFile) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
