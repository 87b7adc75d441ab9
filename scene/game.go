package scene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/render"
	"github.com/milk9111/jumpdontdie/ecs/system"
	"github.com/milk9111/jumpdontdie/gameplay"
	"github.com/milk9111/jumpdontdie/logging"
	"github.com/milk9111/jumpdontdie/session"
	"github.com/milk9111/jumpdontdie/storage"
)

// Game is the playing screen. Each Show starts a fresh session.
type Game struct {
	deps    *Deps
	run     *gameplay.Run
	session uint64
	level   *gameplay.LevelSource
	debug   bool
}

func NewGame(deps *Deps) *Game {
	return &Game{deps: deps, level: gameplay.NewLevelSource(deps.Config.Game.Level), debug: deps.Debug}
}

func (g *Game) Show() error {
	lvl, err := g.level.Load()
	if err != nil {
		return err
	}
	run, err := gameplay.New(gameplay.Options{
		Config: g.deps.Config,
		Level:  lvl,
		Input:  g.deps.Input,
		Sounds: g.deps.Sounds,
		Music:  true,
	})
	if err != nil {
		return err
	}
	g.run = run
	g.session = g.deps.Session.Session()
	return nil
}

func (g *Game) Hide() {
	if g.run != nil {
		g.run.Close()
		g.run = nil
	}
	g.deps.Sounds.Stop(system.SoundSong)
}

func (g *Game) Update() error {
	if g.run == nil {
		return nil
	}
	if g.deps.Input.BackPressed() {
		g.deps.Session.Request(session.ModeMenu)
		return nil
	}
	if g.deps.Input.DebugToggled() {
		g.debug = !g.debug
	}

	for _, ev := range g.run.Tick() {
		switch ev.Type {
		case ecs.EventPlayerDied:
			logging.Log.Infow("player died", "level", g.run.Level.Name, "distance", g.run.Distance(), "jumps", g.run.Jumps())
		case ecs.EventSessionEnded:
			g.finish()
		}
	}
	return nil
}

// finish records the run and asks for the game over screen on behalf of
// this session only.
func (g *Game) finish() {
	result := session.Result{
		Level:    g.run.Level.Name,
		Distance: g.run.Distance(),
		Jumps:    g.run.Jumps(),
	}
	result.Best = result.Distance
	if g.deps.Store != nil {
		if _, err := g.deps.Store.SaveRun(storage.Run{Level: result.Level, Distance: result.Distance, Jumps: result.Jumps}); err != nil {
			logging.Log.Errorw("save run", "err", err)
		}
		if best, err := g.deps.Store.Best(result.Level); err != nil {
			logging.Log.Errorw("load best", "err", err)
		} else if best > result.Best {
			result.Best = best
		}
	}
	g.deps.Session.SetResult(result)
	g.deps.Session.RequestFrom(g.session, session.ModeGameOver)
}

// Reload restarts the session when the changed file is the level being played
// and still loads. A broken file leaves the current run going.
func (g *Game) Reload(name string) {
	if g.run == nil || !g.level.Changed(name) {
		return
	}
	logging.Log.Infow("level changed on disk, restarting", "level", name)
	g.deps.Session.Request(session.ModePlaying)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if g.run == nil {
		return
	}
	units := g.run.Units()
	render.DrawSprites(g.run.World, screen, units)
	drawText(screen, fmt.Sprintf("%d m", g.run.Distance()), 10, 10, textColor)
	if g.debug {
		render.DrawPhysicsDebug(g.run.Physics.Space(), g.run.World, screen, units)
		render.DrawPlayerStateDebug(g.run.World, screen)
	}
}
