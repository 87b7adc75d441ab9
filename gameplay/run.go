// Package gameplay wires one play session: the level's ECS world, its
// physics space and the per-frame system order.
package gameplay

import (
	"fmt"
	"math"

	"github.com/milk9111/jumpdontdie/common"
	"github.com/milk9111/jumpdontdie/config"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
	"github.com/milk9111/jumpdontdie/ecs/entity"
	"github.com/milk9111/jumpdontdie/ecs/system"
	"github.com/milk9111/jumpdontdie/levels"
	"github.com/milk9111/jumpdontdie/logging"
)

// Options configures a Run.
type Options struct {
	Config config.Config
	Level  *levels.Level
	Input  system.InputSource
	Sounds system.SoundPlayer
	// Music starts the looping song when the run begins.
	Music bool
	// PixelsInMeter overrides the configured scale when positive.
	PixelsInMeter float64
}

// Run is one play session from spawn to the session ended event.
type Run struct {
	World   *ecs.World
	Physics *system.PhysicsSystem
	Player  ecs.Entity
	Level   *levels.Level

	units     common.Units
	scheduler *ecs.Scheduler
	ended     bool
}

// New builds the level and returns a run ready for its first tick.
func New(opts Options) (*Run, error) {
	if opts.Level == nil {
		return nil, fmt.Errorf("gameplay: nil level")
	}
	cfg := opts.Config
	dt := cfg.StepSeconds()

	w := ecs.NewWorld()
	player, err := entity.BuildLevel(w, opts.Level, cfg)
	if err != nil {
		return nil, fmt.Errorf("gameplay: %w", err)
	}

	physics := system.NewPhysicsSystem(system.PhysicsOptions{
		Gravity:            cfg.Physics.Gravity,
		VelocityIterations: cfg.Physics.VelocityIterations,
		PositionIterations: cfg.Physics.PositionIterations,
		Step:               dt,
	})
	physics.SetContactListener(system.NewPlayerContactListener(cfg.Game.DeathDelay))
	physics.Sync(w)

	scale := cfg.Physics.PixelsInMeter
	if opts.PixelsInMeter > 0 {
		scale = opts.PixelsInMeter
	}
	units := common.Units{
		PixelsInMeter: scale,
		ScreenWidth:   float64(cfg.Window.Width),
		ScreenHeight:  float64(cfg.Window.Height),
	}

	// input and jump intents, forces, step, delayed actions, camera, audio
	scheduler := ecs.NewScheduler(
		system.NewInputSystem(opts.Input),
		system.NewPlayerControllerSystem(),
		physics,
		system.NewScheduledActionSystem(dt),
		system.NewCameraSystem(units, dt),
		system.NewAudioSystem(opts.Sounds),
	)

	if opts.Music {
		ecs.ForEach(w, component.SoundQueueComponent, func(_ ecs.Entity, q *component.SoundQueue) {
			q.Play(system.SoundSong)
		})
	}

	logging.Log.Infow("run started", "level", opts.Level.Name, "floors", len(opts.Level.Floors), "spikes", len(opts.Level.Spikes))
	return &Run{
		World:     w,
		Physics:   physics,
		Player:    player,
		Level:     opts.Level,
		units:     units,
		scheduler: scheduler,
	}, nil
}

// Tick advances one frame and returns the world events it produced.
func (r *Run) Tick() []ecs.Event {
	if r == nil || r.World == nil {
		return nil
	}
	r.scheduler.Update(r.World)
	events := r.World.Events().Drain()
	for _, ev := range events {
		if ev.Type == ecs.EventSessionEnded {
			r.ended = true
		}
	}
	return events
}

// Ended reports whether the session ended event has fired.
func (r *Run) Ended() bool {
	return r != nil && r.ended
}

func (r *Run) Units() common.Units {
	return r.units
}

// LookAt centers the camera on a point in meters.
func (r *Run) LookAt(x, y float64) {
	e, ok := r.World.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(r.World, e, component.CameraComponent)
	cam.X = r.units.Pixels(x)
	cam.Y = r.units.Pixels(y)
}

// Alive reports whether the player is still running.
func (r *Run) Alive() bool {
	state, ok := ecs.Get(r.World, r.Player, component.PlayerStateComponent)
	return ok && state.Alive
}

// Distance is the number of whole meters the player has travelled from the start.
func (r *Run) Distance() int {
	tr, ok := ecs.Get(r.World, r.Player, component.TransformComponent)
	if !ok {
		return 0
	}
	d := math.Floor(tr.X - r.Level.Start.X)
	if d < 0 {
		return 0
	}
	return int(d)
}

// Jumps is the number of jump impulses applied so far.
func (r *Run) Jumps() int {
	state, ok := ecs.Get(r.World, r.Player, component.PlayerStateComponent)
	if !ok {
		return 0
	}
	return state.Jumps
}

// Close removes every body from the space and drops the world.
func (r *Run) Close() {
	if r == nil {
		return
	}
	if r.Physics != nil {
		r.Physics.Clear()
	}
	r.World = nil
}
