package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/render"
	"github.com/milk9111/jumpdontdie/gameplay"
	"github.com/milk9111/jumpdontdie/levels"
	"github.com/milk9111/jumpdontdie/session"
)

const (
	demoLevel = "physics.yaml"
	// the demo shows a 16 m wide slice of the world
	demoWidthMeters = 16
)

// PhysicsDemo is the bare physics playground: the same player rules drawn as
// collision outlines, restarting after every death.
type PhysicsDemo struct {
	deps *Deps
	run  *gameplay.Run
	// Standalone quits the program instead of returning to the menu.
	Standalone bool
}

func NewPhysicsDemo(deps *Deps) *PhysicsDemo {
	return &PhysicsDemo{deps: deps}
}

func (p *PhysicsDemo) Show() error {
	lvl, err := levels.Load(demoLevel)
	if err != nil {
		return err
	}
	run, err := gameplay.New(gameplay.Options{
		Config:        p.deps.Config,
		Level:         lvl,
		Input:         p.deps.Input,
		Sounds:        p.deps.Sounds,
		PixelsInMeter: float64(p.deps.Config.Window.Width) / demoWidthMeters,
	})
	if err != nil {
		return err
	}
	run.LookAt(0, 1)
	p.run = run
	return nil
}

func (p *PhysicsDemo) Hide() {
	if p.run != nil {
		p.run.Close()
		p.run = nil
	}
}

func (p *PhysicsDemo) Update() error {
	if p.run == nil {
		return nil
	}
	if p.deps.Input.BackPressed() {
		if p.Standalone {
			return ebiten.Termination
		}
		p.deps.Session.Request(session.ModeMenu)
		return nil
	}
	for _, ev := range p.run.Tick() {
		if ev.Type == ecs.EventSessionEnded {
			p.deps.Session.RequestFrom(p.deps.Session.Session(), session.ModePhysicsDemo)
		}
	}
	return nil
}

func (p *PhysicsDemo) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if p.run == nil {
		return
	}
	render.DrawPhysicsDebug(p.run.Physics.Space(), p.run.World, screen, p.run.Units())
	render.DrawPlayerStateDebug(p.run.World, screen)
}
