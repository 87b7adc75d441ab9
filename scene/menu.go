package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jumpdontdie/session"
)

// Menu is the title screen.
type Menu struct {
	deps *Deps
	ui   *menu
	quit bool
}

func NewMenu(deps *Deps) *Menu {
	m := &Menu{deps: deps, ui: newMenu(deps.Config.Window.Width, deps.Config.Window.Height)}
	m.ui.label(deps.Config.Window.Title)
	m.ui.button("Play", func() { deps.Session.Request(session.ModePlaying) })
	m.ui.button("Physics", func() { deps.Session.Request(session.ModePhysicsDemo) })
	m.ui.button("Credits", func() { deps.Session.Request(session.ModeCredits) })
	m.ui.button("Quit", func() { m.quit = true })
	return m
}

func (m *Menu) Show() error {
	m.quit = false
	return nil
}

func (m *Menu) Hide() {}

func (m *Menu) Update() error {
	m.ui.Update()
	if m.quit || m.deps.Input.BackPressed() {
		return ebiten.Termination
	}
	return nil
}

func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	m.ui.Draw(screen)
}
