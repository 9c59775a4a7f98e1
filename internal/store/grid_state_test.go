package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGridState_SaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}

	st0, err := s.LoadGridState()
	if err != nil {
		t.Fatalf("LoadGridState: %v", err)
	}
	if st0 == nil || st0.Version != 1 {
		t.Fatalf("expected default Version=1; got %#v", st0)
	}

	want := &GridState{Version: 1}
	want.Update("assets", func(p *GridPrefs) {
		p.ColumnOrder = []string{"select", "name", "tag", "row-actions"}
		p.Grouping = []string{"department"}
		p.PageSize = 25
	})
	if err := s.SaveGridState(want); err != nil {
		t.Fatalf("SaveGridState: %v", err)
	}

	got, err := s.LoadGridState()
	if err != nil {
		t.Fatalf("LoadGridState (after save): %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", want, got)
	}
	if p := got.Prefs("missing"); p.PageSize != 0 || p.ColumnOrder != nil {
		t.Fatalf("expected zero prefs for unknown grid, got %#v", p)
	}
}

func TestGridState_CorruptFileLoadsEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, gridStateFileName), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	st, err := Store{Dir: dir}.LoadGridState()
	if err != nil {
		t.Fatalf("LoadGridState: %v", err)
	}
	if st.Version != 1 || len(st.Grids) != 0 {
		t.Fatalf("expected empty state, got %#v", st)
	}
}
