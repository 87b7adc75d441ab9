// Package scene holds the game's top-level screens.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jumpdontdie/assets"
	"github.com/milk9111/jumpdontdie/config"
	"github.com/milk9111/jumpdontdie/input"
	"github.com/milk9111/jumpdontdie/session"
	"github.com/milk9111/jumpdontdie/storage"
)

// Screen is a session screen that can draw itself.
type Screen interface {
	session.Screen
	Draw(screen *ebiten.Image)
}

// Deps are the collaborators every screen shares.
type Deps struct {
	Config  config.Config
	Session *session.Controller
	Input   *input.Device
	Sounds  *assets.Sounds
	// Store may be nil when scores are disabled.
	Store *storage.Store
	Debug bool
}
