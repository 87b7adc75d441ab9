package entity

import (
	"fmt"

	"github.com/milk9111/jumpdontdie/contact"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	floorThickness = 1.0
	edgeWidth      = 0.04
	edgeHeight     = 0.9
)

// NewFloor creates a platform whose top edge is at y, spanning [x, x+width].
// The platform's left face carries a thin spike collider so running into the
// side of a step kills instead of stopping the player.
func NewFloor(w *ecs.World, x, width, y float64) (ecs.Entity, error) {
	if width <= 0 {
		return 0, fmt.Errorf("floor: width must be positive, got %v", width)
	}
	e := w.CreateEntity()

	cx := x + width/2
	cy := y - floorThickness/2
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: cx, Y: cy}); err != nil {
		return 0, fmt.Errorf("floor: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Colliders: []component.Collider{
			{Tag: contact.Floor, Shape: component.ShapeBox, Width: width, Height: floorThickness},
			{
				Tag:     contact.Spike,
				Shape:   component.ShapeBox,
				Width:   edgeWidth,
				Height:  edgeHeight,
				OffsetX: -width / 2,
				OffsetY: -0.05,
			},
		},
	}); err != nil {
		return 0, fmt.Errorf("floor: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{
		Kind:   component.SpriteFloor,
		Width:  width,
		Height: floorThickness,
		Color:  colornames.Sienna,
	}); err != nil {
		return 0, fmt.Errorf("floor: add sprite: %w", err)
	}
	return e, nil
}
