package scene

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jumpdontdie/session"
)

type GameOver struct {
	deps  *Deps
	ui    *menu
	stats *widget.Text
	best  *widget.Text
}

func NewGameOver(deps *Deps) *GameOver {
	g := &GameOver{deps: deps, ui: newMenu(deps.Config.Window.Width, deps.Config.Window.Height)}
	g.ui.label("Game Over")
	g.stats = g.ui.label("")
	g.best = g.ui.label("")
	g.ui.button("Retry", func() { deps.Session.Request(session.ModePlaying) })
	g.ui.button("Menu", func() { deps.Session.Request(session.ModeMenu) })
	return g
}

func (g *GameOver) Show() error {
	r := g.deps.Session.Result()
	g.stats.Label = fmt.Sprintf("%d m, %d jumps", r.Distance, r.Jumps)
	g.best.Label = fmt.Sprintf("Best on %s: %d m", r.Level, r.Best)
	return nil
}

func (g *GameOver) Hide() {}

func (g *GameOver) Update() error {
	g.ui.Update()
	if g.deps.Input.BackPressed() {
		g.deps.Session.Request(session.ModeMenu)
	}
	return nil
}

func (g *GameOver) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.ui.Draw(screen)
}
