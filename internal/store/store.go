package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotFound is returned when an asset id does not exist.
var ErrNotFound = errors.New("not found")

// Store is a directory holding the asset database and grid preferences.
type Store struct {
	Dir string
}

// DefaultDir returns ~/.assetgrid.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".assetgrid"), nil
}

func (s Store) Ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("store dir is empty")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(filepath.Clean(s.Dir), "assets.sqlite")
}

// Exists reports whether the store has been initialized.
func (s Store) Exists() bool {
	_, err := os.Stat(s.sqlitePath())
	return err == nil
}

// ModTime returns the latest modification time of the database files. The
// TUI polls it to pick up writes made by CLI commands in another terminal.
func (s Store) ModTime() time.Time {
	var latest time.Time
	for _, p := range []string{s.sqlitePath(), s.sqlitePath() + "-wal"} {
		st, err := os.Stat(p)
		if err != nil {
			continue
		}
		if st.ModTime().After(latest) {
			latest = st.ModTime()
		}
	}
	return latest
}
