package entity

import (
	"fmt"

	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
)

// NewCamera creates a camera showing a width x height pixel stage, centered on it.
func NewCamera(w *ecs.World, width, height, followAfter float64) (ecs.Entity, error) {
	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraTagComponent, component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent, component.Camera{
		X:           width / 2,
		Y:           height / 2,
		Width:       width,
		Height:      height,
		FollowAfter: followAfter,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}
