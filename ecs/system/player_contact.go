package system

import (
	"github.com/milk9111/jumpdontdie/contact"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
	"github.com/milk9111/jumpdontdie/logging"
)

const (
	SoundJump = "jump"
	SoundDie  = "die"
	SoundSong = "song"
)

// PlayerContactListener turns classified contacts into player state changes.
// It only sets flags and queues requests; the physics space is never touched.
type PlayerContactListener struct {
	deathDelay float64
}

func NewPlayerContactListener(deathDelay float64) *PlayerContactListener {
	return &PlayerContactListener{deathDelay: deathDelay}
}

func (l *PlayerContactListener) BeginContact(w *ecs.World, ev contact.Event) {
	e, state, ok := findPlayerState(w)
	if !ok {
		return
	}

	switch {
	case contact.Matches(ev, contact.PlayerFloor):
		held := false
		if input, ok := ecs.Get(w, e, component.InputComponent); ok {
			held = input.Held
		}
		state.Land(held)
	case contact.Matches(ev, contact.PlayerSpike):
		if !state.Kill() {
			return
		}
		logging.Log.Infow("player died", "entity", e.String(), "jumps", state.Jumps)
		queueSounds(w, func(q *component.SoundQueue) {
			q.Stop(SoundSong)
			q.Play(SoundDie)
		})
		w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied, Entity: e})

		scheduleSessionEnd(w, w.CreateEntity(), e, l.deathDelay)
	}
}

func (l *PlayerContactListener) EndContact(w *ecs.World, ev contact.Event) {
	if !contact.Matches(ev, contact.PlayerFloor) {
		return
	}
	_, state, ok := findPlayerState(w)
	if !ok {
		return
	}
	if state.LeaveFloor() {
		queueSounds(w, func(q *component.SoundQueue) { q.Play(SoundJump) })
	}
}

func findPlayerState(w *ecs.World) (ecs.Entity, *component.PlayerState, bool) {
	e, ok := w.First(component.PlayerTagComponent.Kind(), component.PlayerStateComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	state, ok := ecs.Get(w, e, component.PlayerStateComponent)
	return e, state, ok
}

func queueSounds(w *ecs.World, fn func(q *component.SoundQueue)) {
	ecs.ForEach(w, component.SoundQueueComponent, func(_ ecs.Entity, q *component.SoundQueue) {
		fn(q)
	})
}

// scheduleSessionEnd arms the delayed end of the session on timer. If the
// action cannot be stored the session ends right away so a dead player is
// never left running.
func scheduleSessionEnd(w *ecs.World, timer, player ecs.Entity, delay float64) {
	err := ecs.Add(w, timer, component.ScheduledActionComponent, component.ScheduledAction{
		Action:   component.ActionSessionEnded,
		Delay:    delay,
		Deferred: true,
	})
	if err == nil {
		return
	}
	logging.Log.Errorw("schedule session end", "entity", timer.String(), "err", err)
	w.DestroyEntity(timer)
	w.Events().Push(ecs.Event{Type: ecs.EventSessionEnded, Entity: player})
}
