package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jumpdontdie/contact"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
)

// ContactListener is called synchronously from inside the space step. It may
// change ECS state but must not touch bodies, shapes or forces.
type ContactListener interface {
	BeginContact(w *ecs.World, ev contact.Event)
	EndContact(w *ecs.World, ev contact.Event)
}

const defaultFriction = 0.2

// PhysicsSystem owns the Chipmunk space and mirrors PhysicsBody components into it.
type PhysicsSystem struct {
	space         *cp.Space
	dt            float64
	listener      ContactListener
	handlersReady bool

	entities  map[ecs.Entity]*bodyInfo
	shapeTags map[*cp.Shape]contact.Tag

	// stepping is the world being stepped; contacts outside a step are dropped.
	stepping *ecs.World
}

type bodyInfo struct {
	body    *cp.Body
	shapes  []*cp.Shape
	dynamic bool
}

// PhysicsOptions configures the space.
type PhysicsOptions struct {
	Gravity            float64
	VelocityIterations int
	PositionIterations int
	Step               float64
}

func NewPhysicsSystem(opts PhysicsOptions) *PhysicsSystem {
	space := cp.NewSpace()
	// Chipmunk has a single iterative solver; give it the combined budget.
	iterations := opts.VelocityIterations + opts.PositionIterations
	if iterations <= 0 {
		iterations = 10
	}
	space.Iterations = uint(iterations)
	space.SetGravity(cp.Vector{X: 0, Y: opts.Gravity})

	dt := opts.Step
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	return &PhysicsSystem{
		space:     space,
		dt:        dt,
		entities:  make(map[ecs.Entity]*bodyInfo),
		shapeTags: make(map[*cp.Shape]contact.Tag),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// SetContactListener installs the collision callback target.
func (ps *PhysicsSystem) SetContactListener(l ContactListener) {
	ps.listener = l
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.Sync(w)

	ps.stepping = w
	ps.space.Step(ps.dt)
	ps.stepping = nil

	ps.syncTransforms(w)
}

// Sync creates bodies for new PhysicsBody components and removes bodies whose
// entity is gone, without stepping.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	ps.ensureHandlers()
	ps.cleanupEntities(w)

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		if _, exists := ps.entities[e]; exists {
			continue
		}
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		info := ps.createBodyInfo(transform, bodyComp)
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shapes = info.shapes
	}
}

// Clear removes every body and shape from the space.
func (ps *PhysicsSystem) Clear() {
	if ps == nil {
		return
	}
	for e, info := range ps.entities {
		ps.removeBodyInfo(info)
		delete(ps.entities, e)
	}
}

// TagOf returns the tag attached to a shape, or contact.None.
func (ps *PhysicsSystem) TagOf(shape *cp.Shape) contact.Tag {
	return ps.shapeTags[shape]
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	// Every gameplay collision involves the player, so one wildcard handler
	// on its type sees them all, including contacts with untagged shapes.
	handler := ps.space.NewWildcardCollisionHandler(collisionType(contact.Player))
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if ok {
			sys.dispatch(arb, contact.Begin)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		sys, ok := userData.(*PhysicsSystem)
		if ok {
			sys.dispatch(arb, contact.End)
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) dispatch(arb *cp.Arbiter, phase contact.Phase) {
	if ps.listener == nil || ps.stepping == nil {
		return
	}
	a, b := arb.Shapes()
	ev := contact.Event{Phase: phase, A: ps.shapeTags[a], B: ps.shapeTags[b]}
	if phase == contact.Begin {
		ps.listener.BeginContact(ps.stepping, ev)
		return
	}
	ps.listener.EndContact(ps.stepping, ev)
}

func collisionType(tag contact.Tag) cp.CollisionType {
	return cp.CollisionType(tag) + 1
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	var body *cp.Body
	if bodyComp.Dynamic {
		mass := bodyComp.Density * colliderArea(bodyComp.Colliders)
		if mass <= 0 {
			mass = 1
		}
		moment := math.Inf(1)
		if !bodyComp.FixedRotation {
			w, h := colliderExtents(bodyComp.Colliders)
			moment = cp.MomentForBox(mass, w, h)
		}
		body = cp.NewBody(mass, moment)
	} else {
		body = cp.NewStaticBody()
	}
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	ps.space.AddBody(body)

	friction := bodyComp.Friction
	if friction <= 0 {
		friction = defaultFriction
	}

	info := &bodyInfo{body: body, dynamic: bodyComp.Dynamic}
	for _, c := range bodyComp.Colliders {
		shape := newColliderShape(body, c)
		shape.SetFriction(friction)
		shape.SetCollisionType(collisionType(c.Tag))
		ps.space.AddShape(shape)
		ps.shapeTags[shape] = c.Tag
		info.shapes = append(info.shapes, shape)
	}
	return info
}

func newColliderShape(body *cp.Body, c component.Collider) *cp.Shape {
	hw, hh := c.Width/2, c.Height/2
	switch c.Shape {
	case component.ShapeTriangle:
		// counter-clockwise in y-up space
		verts := []cp.Vector{
			{X: c.OffsetX - hw, Y: c.OffsetY - hh},
			{X: c.OffsetX + hw, Y: c.OffsetY - hh},
			{X: c.OffsetX, Y: c.OffsetY + hh},
		}
		return cp.NewPolyShapeRaw(body, 3, verts, 0)
	default:
		bb := cp.BB{L: c.OffsetX - hw, B: c.OffsetY - hh, R: c.OffsetX + hw, T: c.OffsetY + hh}
		return cp.NewBox2(body, bb, 0)
	}
}

func colliderArea(colliders []component.Collider) float64 {
	area := 0.0
	for _, c := range colliders {
		a := c.Width * c.Height
		if c.Shape == component.ShapeTriangle {
			a /= 2
		}
		area += a
	}
	return area
}

func colliderExtents(colliders []component.Collider) (float64, float64) {
	w, h := 0.0, 0.0
	for _, c := range colliders {
		w = math.Max(w, c.Width)
		h = math.Max(h, c.Height)
	}
	return w, h
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if !info.dynamic {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = info.body.Angle()
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		ps.removeBodyInfo(info)
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) removeBodyInfo(info *bodyInfo) {
	for _, shape := range info.shapes {
		ps.space.RemoveShape(shape)
		delete(ps.shapeTags, shape)
	}
	ps.space.RemoveBody(info.body)
}
