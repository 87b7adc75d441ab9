package component

import "image/color"

// SpriteKind selects how the renderer draws an entity.
type SpriteKind uint8

const (
	SpriteBox SpriteKind = iota
	SpriteFloor
	SpriteSpike
)

// Sprite is drawn centered on the Transform with the given size in meters.
type Sprite struct {
	Kind   SpriteKind
	Width  float64
	Height float64
	Color  color.Color
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
