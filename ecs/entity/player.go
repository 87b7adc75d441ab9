package entity

import (
	"fmt"

	"github.com/milk9111/jumpdontdie/config"
	"github.com/milk9111/jumpdontdie/contact"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
	"golang.org/x/image/colornames"
)

// NewPlayer creates the 1x1 m runner centered at (x, y).
func NewPlayer(w *ecs.World, x, y float64, cfg config.PlayerConfig) (ecs.Entity, error) {
	e := w.CreateEntity()

	if err := ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent, component.Player{
		Speed:          cfg.Speed,
		JumpImpulse:    cfg.JumpImpulse,
		FallMultiplier: cfg.FallMultiplier,
		StartX:         x,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerStateComponent, component.NewPlayerState()); err != nil {
		return 0, fmt.Errorf("player: add state: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Dynamic:       true,
		Density:       cfg.Density,
		FixedRotation: true,
		Colliders: []component.Collider{
			{Tag: contact.Player, Shape: component.ShapeBox, Width: 1, Height: 1},
		},
	}); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{
		Kind:   component.SpriteBox,
		Width:  1,
		Height: 1,
		Color:  colornames.Orange,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	return e, nil
}
