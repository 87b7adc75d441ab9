package system

import (
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
)

// SoundPlayer is the fire-and-forget audio collaborator.
type SoundPlayer interface {
	Play(name string)
	Stop(name string)
}

// AudioSystem drains queued sound requests into the player.
type AudioSystem struct {
	player SoundPlayer
}

func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.SoundQueueComponent, func(_ ecs.Entity, q *component.SoundQueue) {
		requests := q.Requests
		q.Requests = nil
		if a.player == nil {
			return
		}
		for _, req := range requests {
			if req.Stop {
				a.player.Stop(req.Name)
				continue
			}
			a.player.Play(req.Name)
		}
	})
}
