package gameplay

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpdontdie/config"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
	"github.com/milk9111/jumpdontdie/ecs/system"
	"github.com/milk9111/jumpdontdie/levels"
)

type scriptedInput struct {
	frame   int
	pressAt map[int]bool
}

func (s *scriptedInput) Pressed() bool     { return s.pressAt[s.frame] }
func (s *scriptedInput) JustPressed() bool { return s.pressAt[s.frame] }

type soundLog struct {
	played []string
	stops  []string
}

func (l *soundLog) Play(name string) { l.played = append(l.played, name) }
func (l *soundLog) Stop(name string) { l.stops = append(l.stops, name) }

func newRun(t *testing.T, level string, in system.InputSource, sounds system.SoundPlayer) *Run {
	t.Helper()
	lvl, err := levels.Load(level)
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	r, err := New(Options{Config: config.Default(), Level: lvl, Input: in, Sounds: sounds, Music: true})
	if err != nil {
		t.Fatalf("new run: %v", err)
	}
	t.Cleanup(r.Close)
	return r
}

func TestNewRequiresLevel(t *testing.T) {
	if _, err := New(Options{Config: config.Default()}); err == nil {
		t.Fatalf("expected error without a level")
	}
}

func TestRunStartsMusic(t *testing.T) {
	sounds := &soundLog{}
	r := newRun(t, "default", &scriptedInput{}, sounds)
	r.Tick()
	if len(sounds.played) == 0 || sounds.played[0] != system.SoundSong {
		t.Fatalf("expected the song first, got %v", sounds.played)
	}
}

func TestRunIdlePlayerDiesOnFirstSpike(t *testing.T) {
	sounds := &soundLog{}
	r := newRun(t, "default", &scriptedInput{}, sounds)

	died := false
	for i := 0; i < 600 && !r.Ended(); i++ {
		for _, ev := range r.Tick() {
			if ev.Type == ecs.EventPlayerDied {
				died = true
			}
		}
	}
	if !died || !r.Ended() {
		t.Fatalf("expected death and session end, died=%v ended=%v", died, r.Ended())
	}
	if r.Alive() {
		t.Fatalf("player should be dead")
	}
	// the first spike stands at x=8, the player starts at 1.5
	if d := r.Distance(); d < 4 || d > 7 {
		t.Fatalf("distance = %d, want the first spike's neighbourhood", d)
	}
	if r.Jumps() != 0 {
		t.Fatalf("idle run should not jump, got %d", r.Jumps())
	}
	if len(sounds.stops) == 0 || sounds.stops[0] != system.SoundSong {
		t.Fatalf("death should stop the song, got %v", sounds.stops)
	}
}

func TestRunJumpCountsImpulse(t *testing.T) {
	in := &scriptedInput{pressAt: map[int]bool{5: true}}
	r := newRun(t, "default", in, &soundLog{})

	jumps := 0
	for in.frame = 0; in.frame < 10; in.frame++ {
		for _, ev := range r.Tick() {
			if ev.Type == ecs.EventPlayerJumped {
				jumps++
			}
		}
	}
	if jumps != 1 || r.Jumps() != 1 {
		t.Fatalf("expected one jump, events=%d counted=%d", jumps, r.Jumps())
	}
}

func TestRunCloseClearsSpace(t *testing.T) {
	lvl, err := levels.Load("default")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	r, err := New(Options{Config: config.Default(), Level: lvl})
	if err != nil {
		t.Fatalf("new run: %v", err)
	}
	space := r.Physics.Space()
	countBodies := func(s *cp.Space) int {
		n := 0
		s.EachBody(func(_ *cp.Body) { n++ })
		return n
	}
	if countBodies(space) <= countBodies(cp.NewSpace()) {
		t.Fatalf("level bodies missing from the space")
	}
	r.Close()

	if got, want := countBodies(space), countBodies(cp.NewSpace()); got != want {
		t.Fatalf("expected an empty space after close, got %d bodies, want %d", got, want)
	}
	if r.Tick() != nil {
		t.Fatalf("closed run should not tick")
	}
}

func TestRunLookAt(t *testing.T) {
	lvl, err := levels.Load("physics")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	r, err := New(Options{Config: config.Default(), Level: lvl, PixelsInMeter: 40})
	if err != nil {
		t.Fatalf("new run: %v", err)
	}
	defer r.Close()

	r.LookAt(0, 1)
	e, _ := r.World.First(component.CameraComponent.Kind())
	cam, _ := ecs.Get(r.World, e, component.CameraComponent)
	if cam.X != 0 || cam.Y != 40 {
		t.Fatalf("camera at (%v, %v), want (0, 40)", cam.X, cam.Y)
	}
	if r.Units().PixelsInMeter != 40 {
		t.Fatalf("scale override ignored: %v", r.Units().PixelsInMeter)
	}
}
