package entity

import (
	"fmt"

	"github.com/milk9111/jumpdontdie/config"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
	"github.com/milk9111/jumpdontdie/levels"
)

// BuildLevel populates w with a level's geometry, the player, the camera and
// the sound queue. It returns the player entity.
func BuildLevel(w *ecs.World, lvl *levels.Level, cfg config.Config) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("build level: nil level")
	}
	for _, f := range lvl.Floors {
		if _, err := NewFloor(w, f.X, f.Width, f.Y); err != nil {
			return 0, fmt.Errorf("build level %s: %w", lvl.Name, err)
		}
	}
	for _, s := range lvl.Spikes {
		if _, err := NewSpike(w, s.X, s.Y); err != nil {
			return 0, fmt.Errorf("build level %s: %w", lvl.Name, err)
		}
	}

	player, err := NewPlayer(w, lvl.Start.X, lvl.Start.Y, cfg.Player)
	if err != nil {
		return 0, fmt.Errorf("build level %s: %w", lvl.Name, err)
	}
	if _, err := NewCamera(w, float64(cfg.Window.Width), float64(cfg.Window.Height), cfg.Game.CameraFollow); err != nil {
		return 0, fmt.Errorf("build level %s: %w", lvl.Name, err)
	}

	audio := w.CreateEntity()
	if err := ecs.Add(w, audio, component.SoundQueueComponent, component.SoundQueue{}); err != nil {
		return 0, fmt.Errorf("build level %s: add sound queue: %w", lvl.Name, err)
	}
	return player, nil
}
