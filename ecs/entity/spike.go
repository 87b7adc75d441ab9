package entity

import (
	"fmt"

	"github.com/milk9111/jumpdontdie/contact"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
	"golang.org/x/image/colornames"
)

// NewSpike creates a 1 m triangle standing on y, centered on x.
func NewSpike(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e := w.CreateEntity()

	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y + 0.5}); err != nil {
		return 0, fmt.Errorf("spike: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Colliders: []component.Collider{
			{Tag: contact.Spike, Shape: component.ShapeTriangle, Width: 1, Height: 1},
		},
	}); err != nil {
		return 0, fmt.Errorf("spike: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{
		Kind:   component.SpriteSpike,
		Width:  1,
		Height: 1,
		Color:  colornames.Silver,
	}); err != nil {
		return 0, fmt.Errorf("spike: add sprite: %w", err)
	}
	return e, nil
}
