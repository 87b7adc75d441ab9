package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jumpdontdie/session"
)

var creditLines = []string{
	"Jump Don't Die",
	"Press space, click or tap to jump.",
	"Physics: Chipmunk2D (jakecoffman/cp)",
	"Engine: Ebitengine",
	"Music and sounds are synthesized at startup.",
}

type Credits struct {
	deps *Deps
	ui   *menu
}

func NewCredits(deps *Deps) *Credits {
	c := &Credits{deps: deps, ui: newMenu(deps.Config.Window.Width, deps.Config.Window.Height)}
	for _, line := range creditLines {
		c.ui.label(line)
	}
	c.ui.button("Back", func() { deps.Session.Request(session.ModeMenu) })
	return c
}

func (c *Credits) Show() error { return nil }
func (c *Credits) Hide()       {}

func (c *Credits) Update() error {
	c.ui.Update()
	if c.deps.Input.BackPressed() {
		c.deps.Session.Request(session.ModeMenu)
	}
	return nil
}

func (c *Credits) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	c.ui.Draw(screen)
}
