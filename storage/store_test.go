package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "scores.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file not created: %v", err)
	}
}

func TestOpenMemory(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveRun(Run{Level: "default", Distance: 3}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if best, _ := store.Best("default"); best != 3 {
		t.Fatalf("Best() = %d, want 3", best)
	}
}

func TestSaveRunAndTop(t *testing.T) {
	store := openTemp(t)

	runs := []Run{
		{Level: "default", Distance: 6, Jumps: 0},
		{Level: "default", Distance: 21, Jumps: 2},
		{Level: "default", Distance: 13, Jumps: 1},
		{Level: "default", Distance: 21, Jumps: 3},
		{Level: "endless", Distance: 50, Jumps: 9},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}

	top, err := store.Top("default", 3)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	want := []struct{ distance, jumps int }{{21, 2}, {21, 3}, {13, 1}}
	if len(top) != len(want) {
		t.Fatalf("Top() returned %d runs, want %d", len(top), len(want))
	}
	for i, w := range want {
		if top[i].Distance != w.distance || top[i].Jumps != w.jumps {
			t.Errorf("Top()[%d] = %+v, want distance %d jumps %d", i, top[i], w.distance, w.jumps)
		}
		if top[i].Level != "default" {
			t.Errorf("Top()[%d] level = %q", i, top[i].Level)
		}
	}
}

func TestBest(t *testing.T) {
	store := openTemp(t)

	best, err := store.Best("default")
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Fatalf("Best() on empty store = %d, want 0", best)
	}

	for _, d := range []int{4, 17, 9} {
		if _, err := store.SaveRun(Run{Level: "default", Distance: d}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(Run{Level: "other", Distance: 99}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	best, err = store.Best("default")
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 17 {
		t.Fatalf("Best() = %d, want 17", best)
	}
}

func TestSaveRunRejectsEmptyLevel(t *testing.T) {
	store := openTemp(t)
	if _, err := store.SaveRun(Run{Distance: 1}); err == nil {
		t.Fatalf("expected error for empty level")
	}
}

func TestLevels(t *testing.T) {
	store := openTemp(t)
	for _, lvl := range []string{"endless", "default", "endless"} {
		if _, err := store.SaveRun(Run{Level: lvl, Distance: 1}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	levels, err := store.Levels()
	if err != nil {
		t.Fatalf("Levels() failed: %v", err)
	}
	if len(levels) != 2 || levels[0] != "default" || levels[1] != "endless" {
		t.Fatalf("Levels() = %v", levels)
	}
}
