package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jumpdontdie/assets"
	"github.com/milk9111/jumpdontdie/config"
	"github.com/milk9111/jumpdontdie/input"
	"github.com/milk9111/jumpdontdie/levels"
	"github.com/milk9111/jumpdontdie/logging"
	"github.com/milk9111/jumpdontdie/scene"
	"github.com/milk9111/jumpdontdie/session"
	"github.com/milk9111/jumpdontdie/storage"
	"go.uber.org/multierr"
)

type Game struct {
	cfg     config.Config
	deps    *scene.Deps
	session *session.Controller
	play    *scene.Game
	watcher *levels.Watcher
}

type gameOptions struct {
	Config config.Config
	Store  *storage.Store
	Debug  bool
	// Start is the mode shown after loading.
	Start session.Mode
}

func NewGame(opts gameOptions) *Game {
	ctrl := session.NewController()
	deps := &scene.Deps{
		Config:  opts.Config,
		Session: ctrl,
		Input:   input.NewDevice(),
		Sounds:  assets.NewSounds(opts.Config.Audio),
		Store:   opts.Store,
		Debug:   opts.Debug,
	}

	start := opts.Start
	if start == session.ModeNone {
		start = session.ModeMenu
	}

	g := &Game{cfg: opts.Config, deps: deps, session: ctrl, play: scene.NewGame(deps)}
	demo := scene.NewPhysicsDemo(deps)
	demo.Standalone = start == session.ModePhysicsDemo

	ctrl.Register(session.ModeLoading, scene.NewLoading(deps, start))
	ctrl.Register(session.ModeMenu, scene.NewMenu(deps))
	ctrl.Register(session.ModePlaying, g.play)
	ctrl.Register(session.ModeGameOver, scene.NewGameOver(deps))
	ctrl.Register(session.ModeCredits, scene.NewCredits(deps))
	ctrl.Register(session.ModePhysicsDemo, demo)
	ctrl.Request(session.ModeLoading)

	if opts.Debug {
		w, err := levels.NewWatcher(levels.DiskDir)
		if err != nil {
			logging.Log.Warnw("level hot reload disabled", "dir", levels.DiskDir, "err", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

func (g *Game) Update() error {
	g.pollLevels()
	return g.session.Update()
}

func (g *Game) pollLevels() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if ok {
				logging.Log.Warnw("level watcher", "err", err)
			}
		default:
		}
		name, ok := g.watcher.Poll()
		if !ok {
			return
		}
		if g.session.Current() == session.ModePlaying {
			g.play.Reload(name)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if s, ok := g.session.Active().(scene.Screen); ok {
		s.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the screen, audio players, the watcher and the score store.
func (g *Game) Close() error {
	g.session.Close()
	var err error
	err = multierr.Append(err, g.deps.Sounds.Close())
	if g.watcher != nil {
		err = multierr.Append(err, g.watcher.Close())
	}
	if g.deps.Store != nil {
		err = multierr.Append(err, g.deps.Store.Close())
	}
	return err
}
