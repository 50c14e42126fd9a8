package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/barreljumper/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeBody
	collisionTypeGroundSensor
)

// Contact is the per-tick vertical contact state of a body.
type Contact struct {
	// BlockedBelow is set when a solved contact pushes the body up.
	BlockedBelow bool
	// TouchingBelow is set when the feet sensor overlaps a solid shape.
	TouchingBelow bool
}

// Grounded is blocked-below OR touching-below.
func (c Contact) Grounded() bool {
	return c.BlockedBelow || c.TouchingBelow
}

type bodyInfo struct {
	body     *cp.Body
	shape    *cp.Shape
	ground   *cp.Shape
	category component.Category
	static   bool
	enabled  bool
}

// PhysicsWorld owns the Chipmunk space. Entities are added with a collision
// category; which categories block each other is decided by SetSolid.
type PhysicsWorld struct {
	space         *cp.Space
	handlersReady bool

	bodies       map[Entity]*bodyInfo
	groundShapes map[*cp.Shape]Entity
	contacts     map[Entity]*Contact
	masks        map[component.Category]uint
	bounds       []*cp.Shape
}

// NewPhysicsWorld creates a space with downward gravity (screen coordinates,
// y grows down).
func NewPhysicsWorld(gravity float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	pw := &PhysicsWorld{
		space:        space,
		bodies:       make(map[Entity]*bodyInfo),
		groundShapes: make(map[*cp.Shape]Entity),
		contacts:     make(map[Entity]*Contact),
		masks:        make(map[component.Category]uint),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// SetSolid makes categories a and b block each other.
func (pw *PhysicsWorld) SetSolid(a, b component.Category) {
	if pw == nil {
		return
	}
	pw.masks[a] |= b.Bit()
	pw.masks[b] |= a.Bit()
	for _, info := range pw.bodies {
		pw.applyFilter(info)
	}
	for _, shape := range pw.bounds {
		shape.SetFilter(pw.filterFor(component.CategoryPlatform))
	}
}

// Solid reports whether a and b block each other.
func (pw *PhysicsWorld) Solid(a, b component.Category) bool {
	if pw == nil {
		return false
	}
	return pw.masks[a]&b.Bit() != 0 && pw.masks[b]&a.Bit() != 0
}

func (pw *PhysicsWorld) filterFor(c component.Category) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, c.Bit(), pw.masks[c])
}

func (pw *PhysicsWorld) applyFilter(info *bodyInfo) {
	if info.shape != nil {
		info.shape.SetFilter(pw.filterFor(info.category))
	}
	if info.ground != nil {
		// the feet sensor only reports platforms
		info.ground.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, info.category.Bit(), pw.masks[info.category]&component.CategoryPlatform.Bit()))
	}
}

// AddStatic adds an immovable box centred on (x, y).
func (pw *PhysicsWorld) AddStatic(e Entity, c component.Category, x, y, w, h float64) *component.PhysicsBody {
	if pw == nil || pw.space == nil {
		return nil
	}
	bb := cp.BB{L: x - w/2, B: y - h/2, R: x + w/2, T: y + h/2}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	info := &bodyInfo{body: pw.space.StaticBody, shape: shape, category: c, static: true}
	pw.applyFilter(info)
	pw.space.AddShape(shape)
	info.enabled = true
	pw.bodies[e] = info
	return &component.PhysicsBody{Body: info.body, Shape: shape, Width: w, Height: h, Friction: 0.8, Static: true, Enabled: true}
}

// AddDynamic adds a non-rotating box centred on (x, y). When feet is true a
// thin sensor under the box reports ground contact. The body starts disabled
// when enabled is false (pooled entities).
func (pw *PhysicsWorld) AddDynamic(e Entity, c component.Category, x, y, w, h, friction float64, feet, enabled bool) *component.PhysicsBody {
	if pw == nil || pw.space == nil {
		return nil
	}
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := cp.NewBox(body, w, h, 0)
	shape.SetFriction(friction)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeBody)

	info := &bodyInfo{body: body, shape: shape, category: c}
	if feet {
		bb := cp.BB{L: -w * 0.45, B: h / 2, R: w * 0.45, T: h/2 + 2}
		ground := cp.NewBox2(body, bb, 0)
		ground.SetSensor(true)
		ground.SetCollisionType(collisionTypeGroundSensor)
		info.ground = ground
		pw.groundShapes[ground] = e
		pw.contacts[e] = &Contact{}
	}
	pw.applyFilter(info)
	pw.bodies[e] = info
	if enabled {
		pw.Enable(e)
	}
	return &component.PhysicsBody{Body: body, Shape: shape, Width: w, Height: h, Friction: friction, Enabled: enabled}
}

// Enable puts the entity's body and shapes back into the space.
func (pw *PhysicsWorld) Enable(e Entity) bool {
	info := pw.info(e)
	if info == nil || info.enabled {
		return false
	}
	if !info.static {
		pw.space.AddBody(info.body)
	}
	pw.space.AddShape(info.shape)
	if info.ground != nil {
		pw.space.AddShape(info.ground)
	}
	info.enabled = true
	return true
}

// Disable removes the entity's body and shapes from the space without
// forgetting them; Enable restores them.
func (pw *PhysicsWorld) Disable(e Entity) bool {
	info := pw.info(e)
	if info == nil || !info.enabled {
		return false
	}
	if info.ground != nil {
		pw.space.RemoveShape(info.ground)
	}
	pw.space.RemoveShape(info.shape)
	if !info.static {
		pw.space.RemoveBody(info.body)
	}
	info.enabled = false
	if c := pw.contacts[e]; c != nil {
		*c = Contact{}
	}
	return true
}

// Enabled reports whether the entity currently takes part in the simulation.
func (pw *PhysicsWorld) Enabled(e Entity) bool {
	info := pw.info(e)
	return info != nil && info.enabled
}

func (pw *PhysicsWorld) info(e Entity) *bodyInfo {
	if pw == nil || pw.space == nil {
		return nil
	}
	return pw.bodies[e]
}

// SetBounds encloses the world in four static segments treated as platforms.
func (pw *PhysicsWorld) SetBounds(worldW, worldH float64) {
	if pw == nil || pw.space == nil || worldW <= 0 || worldH <= 0 {
		return
	}
	for _, shape := range pw.bounds {
		pw.space.RemoveShape(shape)
	}
	pw.bounds = pw.bounds[:0]

	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}}, // bottom
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(pw.filterFor(component.CategoryPlatform))
		pw.space.AddShape(shape)
		pw.bounds = append(pw.bounds, shape)
	}
}

// Step advances the simulation by dt seconds and recomputes contacts.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	for _, c := range pw.contacts {
		*c = Contact{}
	}
	pw.space.Step(dt)

	for e, c := range pw.contacts {
		info := pw.bodies[e]
		if info == nil || !info.enabled {
			continue
		}
		info.body.EachArbiter(func(arb *cp.Arbiter) {
			a, b := arb.Shapes()
			if a.Sensor() || b.Sensor() {
				return
			}
			// normal points from this body towards the other one
			if arb.Normal().Y > 0.5 {
				c.BlockedBelow = true
			}
		})
	}
}

// Contact returns the contact state recorded by the last Step.
func (pw *PhysicsWorld) Contact(e Entity) Contact {
	if pw == nil {
		return Contact{}
	}
	if c := pw.contacts[e]; c != nil {
		return *c
	}
	return Contact{}
}

// Remove forgets an entity entirely.
func (pw *PhysicsWorld) Remove(e Entity) {
	if pw == nil {
		return
	}
	info := pw.bodies[e]
	if info == nil {
		return
	}
	pw.Disable(e)
	if info.ground != nil {
		delete(pw.groundShapes, info.ground)
	}
	delete(pw.contacts, e)
	delete(pw.bodies, e)
}

// Close drops every body and the space itself.
func (pw *PhysicsWorld) Close() {
	if pw == nil || pw.space == nil {
		return
	}
	for e := range pw.bodies {
		pw.Remove(e)
	}
	for _, shape := range pw.bounds {
		pw.space.RemoveShape(shape)
	}
	pw.bounds = nil
	pw.space = nil
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	groundHandler := pw.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeSolid)
	groundHandler.UserData = pw
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		e, okA := world.groundShapes[shapeA]
		if !okA {
			var okB bool
			e, okB = world.groundShapes[shapeB]
			if !okB {
				return true
			}
		}
		if c := world.contacts[e]; c != nil {
			c.TouchingBelow = true
		}
		return true
	}

	pw.handlersReady = true
}
