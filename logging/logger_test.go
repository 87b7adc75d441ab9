package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	path := filepath.Join(t.TempDir(), "nested", "game.log")
	if err := Init(Options{File: path, Debug: true}); err != nil {
		t.Fatalf("init: %v", err)
	}
	Log.Infow("session started", "level", "default.yaml")
	_ = Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Fatalf("log file missing entry: %q", data)
	}
}
