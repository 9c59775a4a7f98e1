package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const gridStateFileName = "grid_state.json"

// GridState stores per-grid view preferences (column order, grouping, page
// size) so the grid looks the same on relaunch.
//
// It is best effort: a missing or corrupt file loads as empty state.
type GridState struct {
	Version int                  `json:"version"`
	Grids   map[string]GridPrefs `json:"grids,omitempty"`
}

type GridPrefs struct {
	ColumnOrder []string `json:"columnOrder,omitempty"`
	Grouping    []string `json:"grouping,omitempty"`
	PageSize    int      `json:"pageSize,omitempty"`
}

// Prefs returns the preferences for one grid (zero value when unset).
func (st *GridState) Prefs(grid string) GridPrefs {
	if st == nil || st.Grids == nil {
		return GridPrefs{}
	}
	return st.Grids[grid]
}

// Update applies fn to one grid's preferences.
func (st *GridState) Update(grid string, fn func(*GridPrefs)) {
	if st.Grids == nil {
		st.Grids = map[string]GridPrefs{}
	}
	p := st.Grids[grid]
	fn(&p)
	st.Grids[grid] = p
}

func (s Store) gridStatePath() string {
	return filepath.Join(s.Dir, gridStateFileName)
}

func (s Store) LoadGridState() (*GridState, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return &GridState{Version: 1}, nil
	}
	b, err := os.ReadFile(s.gridStatePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GridState{Version: 1}, nil
		}
		return nil, err
	}
	var st GridState
	if err := json.Unmarshal(b, &st); err != nil {
		// Corrupt file: start over rather than refusing to open the grid.
		return &GridState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return &st, nil
}

func (s Store) SaveGridState(st *GridState) error {
	if st == nil {
		return nil
	}
	if strings.TrimSpace(s.Dir) == "" {
		return nil
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	if st.Version == 0 {
		st.Version = 1
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	path := s.gridStatePath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
