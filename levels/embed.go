package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml *.tengo
var LevelsFS embed.FS

// Level lists the static geometry of a run, in meters with y up.
type Level struct {
	Name   string  `yaml:"name"`
	Start  Point   `yaml:"start"`
	Floors []Floor `yaml:"floors"`
	Spikes []Spike `yaml:"spikes"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Floor spans [X, X+Width] with its walkable top at Y.
type Floor struct {
	X     float64 `yaml:"x"`
	Width float64 `yaml:"width"`
	Y     float64 `yaml:"y"`
}

// Spike sits with its base on Y, centered on X.
type Spike struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

var defaultStart = Point{X: 1.5, Y: 1.5}

// Load reads a level by file name. A file under ./levels on disk wins over
// the embedded copy. Names ending in .tengo are run as level scripts.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := read(clean)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", clean, err)
	}

	var lvl *Level
	if isScriptFile(clean) {
		lvl, err = RunScript(clean, data, 0)
	} else {
		lvl, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", clean, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(clean, filepath.Ext(clean))
	}
	return lvl, nil
}

// Parse decodes a YAML level and validates it.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	var given struct {
		Start *Point `yaml:"start"`
	}
	if err := yaml.Unmarshal(data, &given); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if given.Start == nil {
		lvl.Start = defaultStart
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate rejects geometry the physics world cannot build.
func (l *Level) Validate() error {
	if len(l.Floors) == 0 {
		return fmt.Errorf("level has no floors")
	}
	for i, f := range l.Floors {
		if f.Width <= 0 {
			return fmt.Errorf("floor %d: width must be positive, got %v", i, f.Width)
		}
	}
	return nil
}

// Names lists the bundled levels plus any extra ones found on disk.
func Names() []string {
	seen := map[string]struct{}{}
	add := func(name string) {
		if isLevelFile(name) {
			seen[name] = struct{}{}
		}
	}
	if entries, err := fs.ReadDir(LevelsFS, "."); err == nil {
		for _, e := range entries {
			add(e.Name())
		}
	}
	if entries, err := os.ReadDir(DiskDir); err == nil {
		for _, e := range entries {
			if !e.IsDir() {
				add(e.Name())
			}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DiskDir is where on-disk overrides are looked up and watched.
var DiskDir = "levels"

func read(clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(DiskDir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

func isLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml" || ext == ".tengo"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
