package gameplay

import (
	"path/filepath"
	"strings"

	"github.com/milk9111/jumpdontdie/levels"
	"github.com/milk9111/jumpdontdie/logging"
)

// LevelSource loads one named level and remembers the last copy that parsed,
// so a half-written file on disk never takes a running game down.
type LevelSource struct {
	name string
	last *levels.Level
}

func NewLevelSource(name string) *LevelSource {
	return &LevelSource{name: name}
}

func (s *LevelSource) Name() string { return s.name }

// Last returns the most recent level that loaded, or nil.
func (s *LevelSource) Last() *levels.Level { return s.last }

// Refresh reads the level again. On failure the last good copy is kept.
func (s *LevelSource) Refresh() error {
	lvl, err := levels.Load(s.name)
	if err != nil {
		return err
	}
	s.last = lvl
	return nil
}

// Load refreshes the level and falls back to the last good copy when the
// file no longer parses. It only fails when nothing has ever loaded.
func (s *LevelSource) Load() (*levels.Level, error) {
	err := s.Refresh()
	if err == nil {
		return s.last, nil
	}
	if s.last == nil {
		return nil, err
	}
	logging.Log.Warnw("level failed to load, using last good copy", "level", s.name, "err", err)
	return s.last, nil
}

// Changed handles a file change reported by the level watcher. It reports
// whether the session should restart: the file must be this level and must
// still load.
func (s *LevelSource) Changed(file string) bool {
	if !sameLevel(file, s.name) {
		return false
	}
	if err := s.Refresh(); err != nil {
		logging.Log.Warnw("changed level does not load, keeping current run", "level", file, "err", err)
		return false
	}
	return true
}

func sameLevel(a, b string) bool {
	norm := func(s string) string {
		s = filepath.Base(s)
		return strings.TrimSuffix(s, filepath.Ext(s))
	}
	return norm(a) == norm(b)
}
