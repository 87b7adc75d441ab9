package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpdontdie/contact"
)

// ShapeKind selects the geometry of a collider.
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeTriangle
)

// Collider describes one tagged shape attached to a body. Offsets are relative
// to the entity's Transform; sizes are full extents in meters.
type Collider struct {
	Tag     contact.Tag
	Shape   ShapeKind
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
type PhysicsBody struct {
	Dynamic       bool
	Density       float64
	FixedRotation bool
	Friction      float64
	Colliders     []Collider

	Body   *cp.Body
	Shapes []*cp.Shape
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
