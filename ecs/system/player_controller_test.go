package system

import (
	"math"
	"testing"

	"github.com/milk9111/jumpdontdie/contact"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
)

func setInput(t *testing.T, w *ecs.World, e ecs.Entity, held, justPressed bool) {
	t.Helper()
	in, ok := ecs.Get(w, e, component.InputComponent)
	if !ok {
		t.Fatalf("player has no input")
	}
	in.Held = held
	in.JustPressed = justPressed
}

func TestPlayerControllerJumpImpulse(t *testing.T) {
	w, e, _ := newFloatingPlayer(t)
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
	state, _ := ecs.Get(w, e, component.PlayerStateComponent)
	ctrl := NewPlayerControllerSystem()

	setInput(t, w, e, true, true)
	ctrl.Update(w)

	// impulse 20 on a 1x1 body of density 3
	vy := body.Body.Velocity().Y
	if math.Abs(vy-20.0/3.0) > 1e-6 {
		t.Fatalf("vy after jump = %v, want %v", vy, 20.0/3.0)
	}
	if state.Grounded() {
		t.Fatalf("player should be airborne after jumping")
	}

	ctrl.Update(w)
	if got := body.Body.Velocity().Y; math.Abs(got-vy) > 1e-9 {
		t.Fatalf("second press while airborne changed vy from %v to %v", vy, got)
	}
	if n := countEvents(w.Events().Drain(), ecs.EventPlayerJumped); n != 1 {
		t.Fatalf("expected 1 jump event, got %d", n)
	}
}

func TestPlayerControllerDrive(t *testing.T) {
	cases := []struct {
		name  string
		alive bool
		want  float64
	}{
		{"alive_forces_speed", true, 8},
		{"dead_leaves_velocity", false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, e, _ := newFloatingPlayer(t)
			state, _ := ecs.Get(w, e, component.PlayerStateComponent)
			state.Alive = c.alive

			NewPlayerControllerSystem().Update(w)

			body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
			if got := body.Body.Velocity().X; got != c.want {
				t.Fatalf("vx = %v, want %v", got, c.want)
			}
		})
	}
}

func TestPlayerControllerFallForceOnlyWhileAirborne(t *testing.T) {
	cases := []struct {
		name    string
		jumping bool
	}{
		{"grounded", false},
		{"airborne", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, e, _ := newFloatingPlayer(t)
			state, _ := ecs.Get(w, e, component.PlayerStateComponent)
			state.Jumping = c.jumping

			NewPlayerControllerSystem().Update(w)

			body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
			fy := body.Body.Force().Y
			want := 0.0
			if c.jumping {
				want = -20 * 1.15
			}
			if math.Abs(fy-want) > 1e-9 {
				t.Fatalf("force y = %v, want %v", fy, want)
			}
		})
	}
}

// press, step, floor end, step, floor begin while held, step
func TestPlayerJumpScenario(t *testing.T) {
	w, e, ps := newFloatingPlayer(t)
	state, _ := ecs.Get(w, e, component.PlayerStateComponent)
	ctrl := NewPlayerControllerSystem()
	listener := NewPlayerContactListener(1.5)

	var seen []bool
	record := func() { seen = append(seen, state.Grounded()) }

	record()
	setInput(t, w, e, true, true)
	ctrl.Update(w)
	ps.Update(w)
	record()

	setInput(t, w, e, true, false)
	listener.EndContact(w, contact.Event{Phase: contact.End, A: contact.Floor, B: contact.Player})
	ctrl.Update(w)
	ps.Update(w)
	record()

	listener.BeginContact(w, contact.Event{Phase: contact.Begin, A: contact.Player, B: contact.Floor})
	record()
	if !state.MustJump {
		t.Fatalf("landing while held should defer a jump")
	}
	ctrl.Update(w)
	ps.Update(w)
	if state.MustJump {
		t.Fatalf("deferred jump should be consumed on the next tick")
	}

	want := []bool{true, false, false, true}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("grounded sequence = %v, want %v", seen, want)
		}
	}
	if n := countEvents(w.Events().Drain(), ecs.EventPlayerJumped); n != 2 {
		t.Fatalf("expected exactly 2 impulses, got %d", n)
	}
	if state.Jumps != 2 {
		t.Fatalf("expected 2 jumps counted, got %d", state.Jumps)
	}
}
