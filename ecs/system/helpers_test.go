package system

import (
	"testing"

	"github.com/milk9111/jumpdontdie/config"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
	"github.com/milk9111/jumpdontdie/ecs/entity"
	"github.com/milk9111/jumpdontdie/levels"
)

const testStep = 1.0 / 60.0

type fakeInput struct {
	held        bool
	justPressed bool
}

func (f *fakeInput) Pressed() bool     { return f.held }
func (f *fakeInput) JustPressed() bool { return f.justPressed }

type recordedSound struct {
	name string
	stop bool
}

type fakeSounds struct {
	calls []recordedSound
}

func (f *fakeSounds) Play(name string) { f.calls = append(f.calls, recordedSound{name: name}) }
func (f *fakeSounds) Stop(name string) { f.calls = append(f.calls, recordedSound{name: name, stop: true}) }

func (f *fakeSounds) played(name string) bool {
	for _, c := range f.calls {
		if c.name == name && !c.stop {
			return true
		}
	}
	return false
}

func newTestPhysics() *PhysicsSystem {
	cfg := config.Default()
	return NewPhysicsSystem(PhysicsOptions{
		Gravity:            cfg.Physics.Gravity,
		VelocityIterations: cfg.Physics.VelocityIterations,
		PositionIterations: cfg.Physics.PositionIterations,
		Step:               testStep,
	})
}

// newFloatingPlayer builds a player with a live body and nothing to collide with.
func newFloatingPlayer(t *testing.T) (*ecs.World, ecs.Entity, *PhysicsSystem) {
	t.Helper()
	w := ecs.NewWorld()
	e, err := entity.NewPlayer(w, 1.5, 1.5, config.Default().Player)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	queue := w.CreateEntity()
	if err := ecs.Add(w, queue, component.SoundQueueComponent, component.SoundQueue{}); err != nil {
		t.Fatalf("add sound queue: %v", err)
	}
	ps := newTestPhysics()
	ps.Sync(w)
	return w, e, ps
}

func loadLevelWorld(t *testing.T, name string) (*ecs.World, ecs.Entity) {
	t.Helper()
	lvl, err := levels.Load(name)
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	w := ecs.NewWorld()
	player, err := entity.BuildLevel(w, lvl, config.Default())
	if err != nil {
		t.Fatalf("build level: %v", err)
	}
	return w, player
}

func countEvents(events []ecs.Event, typ ecs.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}
