package system

import (
	"testing"

	"github.com/milk9111/jumpdontdie/contact"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
)

type recordingListener struct {
	begins []contact.Event
	ends   []contact.Event
}

func (r *recordingListener) BeginContact(_ *ecs.World, ev contact.Event) {
	r.begins = append(r.begins, ev)
}

func (r *recordingListener) EndContact(_ *ecs.World, ev contact.Event) {
	r.ends = append(r.ends, ev)
}

func TestPhysicsSyncCreatesBodies(t *testing.T) {
	w, player := loadLevelWorld(t, "default")
	ps := newTestPhysics()
	ps.Sync(w)

	body, _ := ecs.Get(w, player, component.PhysicsBodyComponent)
	if body.Body == nil || len(body.Shapes) != 1 {
		t.Fatalf("player body not created: %+v", body)
	}
	if got := body.Body.Mass(); got != 3 {
		t.Fatalf("player mass = %v, want 3", got)
	}
	if tag := ps.TagOf(body.Shapes[0]); tag != contact.Player {
		t.Fatalf("player shape tag = %v", tag)
	}

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind()) {
		b, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		if len(b.Shapes) != len(b.Colliders) {
			t.Fatalf("entity %s has %d shapes for %d colliders", e, len(b.Shapes), len(b.Colliders))
		}
	}
}

func TestPhysicsDestroyedEntityLosesBody(t *testing.T) {
	w, player := loadLevelWorld(t, "default")
	ps := newTestPhysics()
	ps.Sync(w)

	body, _ := ecs.Get(w, player, component.PhysicsBodyComponent)
	shape := body.Shapes[0]
	w.DestroyEntity(player)
	ps.Sync(w)

	if tag := ps.TagOf(shape); tag != contact.None {
		t.Fatalf("removed shape still tagged %v", tag)
	}
}

func TestPhysicsStepReportsFloorContact(t *testing.T) {
	w, _ := loadLevelWorld(t, "default")
	ps := newTestPhysics()
	rec := &recordingListener{}
	ps.SetContactListener(rec)

	for i := 0; i < 10; i++ {
		ps.Update(w)
	}
	found := false
	for _, ev := range rec.begins {
		if contact.Matches(ev, contact.PlayerFloor) {
			found = true
		}
	}
	if !found {
		t.Fatalf("resting player should touch the floor, got %+v", rec.begins)
	}
}

// A player that runs along the default level hits the first spike, dies once
// and the session ends 1.5 s of frame time later.
func TestRunIntoSpikeEndsSession(t *testing.T) {
	w, player := loadLevelWorld(t, "default")
	ps := newTestPhysics()
	ps.SetContactListener(NewPlayerContactListener(1.5))
	sounds := &fakeSounds{}

	sched := ecs.NewScheduler(
		NewInputSystem(&fakeInput{}),
		NewPlayerControllerSystem(),
		ps,
		NewScheduledActionSystem(testStep),
		NewAudioSystem(sounds),
	)

	diedAt, endedAt := -1, -1
	deaths := 0
	for frame := 0; frame < 600 && endedAt < 0; frame++ {
		sched.Update(w)
		for _, ev := range w.Events().Drain() {
			switch ev.Type {
			case ecs.EventPlayerDied:
				deaths++
				diedAt = frame
			case ecs.EventSessionEnded:
				endedAt = frame
			}
		}
	}

	if deaths != 1 {
		t.Fatalf("expected exactly one death, got %d", deaths)
	}
	if endedAt < 0 {
		t.Fatalf("session never ended")
	}
	if d := endedAt - diedAt; d != 90 {
		t.Fatalf("session ended %d frames after death, want 90", d)
	}
	state, _ := ecs.Get(w, player, component.PlayerStateComponent)
	if state.Alive {
		t.Fatalf("player should be dead")
	}
	if !sounds.played(SoundDie) {
		t.Fatalf("death sound not played: %+v", sounds.calls)
	}
}
