package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
)

// PlayerControllerSystem resolves jump intents and applies the continuous
// drive and fall forces. It must run before the physics step.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PlayerComponent.Kind(),
		component.PlayerStateComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		player, _ := ecs.Get(w, e, component.PlayerComponent)
		state, _ := ecs.Get(w, e, component.PlayerStateComponent)
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		if bodyComp.Body == nil {
			continue
		}
		body := bodyComp.Body

		var input component.Input
		if in, ok := ecs.Get(w, e, component.InputComponent); ok {
			input = *in
		}

		if input.JustPressed && state.TryJump() {
			p.jump(w, e, body, player)
		}
		if state.ConsumeMustJump() {
			p.jump(w, e, body, player)
		}

		if state.Alive {
			vel := body.Velocity()
			body.SetVelocityVector(cp.Vector{X: player.Speed, Y: vel.Y})
		}

		// Chipmunk clears accumulated force after every step.
		if state.Jumping {
			body.ApplyForceAtLocalPoint(cp.Vector{Y: -player.JumpImpulse * player.FallMultiplier}, cp.Vector{})
		}
	}
}

func (p *PlayerControllerSystem) jump(w *ecs.World, e ecs.Entity, body *cp.Body, player *component.Player) {
	body.ApplyImpulseAtLocalPoint(cp.Vector{Y: player.JumpImpulse}, cp.Vector{})
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerJumped, Entity: e})
}
