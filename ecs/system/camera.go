package system

import (
	"github.com/milk9111/jumpdontdie/common"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
)

// CameraSystem scrolls the camera at the player's run speed once the player
// has passed the camera's follow line.
type CameraSystem struct {
	units common.Units
	dt    float64
}

func NewCameraSystem(units common.Units, dt float64) *CameraSystem {
	return &CameraSystem{units: units, dt: dt}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent)

	playerEntity, ok := w.First(component.PlayerComponent.Kind(), component.PlayerStateComponent.Kind(), component.TransformComponent.Kind())
	if !ok {
		return
	}
	player, _ := ecs.Get(w, playerEntity, component.PlayerComponent)
	state, _ := ecs.Get(w, playerEntity, component.PlayerStateComponent)
	transform, _ := ecs.Get(w, playerEntity, component.TransformComponent)

	// The follow line is measured on the sprite's left edge, like the stage actor.
	left := cs.units.Pixels(transform.X - 0.5)
	if left > cam.FollowAfter && state.Alive {
		cam.X += cs.units.Pixels(player.Speed * cs.dt)
	}
}
