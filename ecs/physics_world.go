package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/actionrpg/common"
	"github.com/milk9111/actionrpg/ecs/component"
)

// The arena is simulated top-down: Chipmunk's X/Y plane is the world X/Z
// ground plane. Vertical velocity is carried alongside the Chipmunk body.
const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeCharacter
	collisionTypeSensor
)

// PhysicsWorld owns the Chipmunk space, arena walls, character bodies and
// trigger sensors.
type PhysicsWorld struct {
	space *cp.Space

	shapeToEntity map[*cp.Shape]Entity
	bodies        map[Entity]*component.PhysicsBody
	sensors       map[Entity]*cp.Shape
	triggers      []TriggerEnter
}

// NewPhysicsWorld creates a walled arena spanning [0,width] x [0,depth].
func NewPhysicsWorld(width, depth float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	pw := &PhysicsWorld{
		space:         space,
		shapeToEntity: make(map[*cp.Shape]Entity),
		bodies:        make(map[Entity]*component.PhysicsBody),
		sensors:       make(map[Entity]*cp.Shape),
	}
	pw.buildWalls(width, depth)
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

func (pw *PhysicsWorld) buildWalls(width, depth float64) {
	if width <= 0 || depth <= 0 {
		return
	}
	segments := []struct{ a, b cp.Vector }{
		{cp.Vector{X: 0, Y: 0}, cp.Vector{X: width, Y: 0}},
		{cp.Vector{X: 0, Y: depth}, cp.Vector{X: width, Y: depth}},
		{cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: depth}},
		{cp.Vector{X: width, Y: 0}, cp.Vector{X: width, Y: depth}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, 0.1)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeWall)
		pw.space.AddShape(shape)
	}
}

// AddCharacter creates a non-rotating dynamic circle body for e.
func (pw *PhysicsWorld) AddCharacter(e Entity, pos common.Vec3, radius, mass float64) *component.PhysicsBody {
	b := &component.PhysicsBody{Radius: radius, Mass: mass}
	if !pw.AttachBody(e, b, pos) {
		return nil
	}
	return pw.bodies[e]
}

// AttachBody builds the Chipmunk body and circle shape described by b at pos
// and registers it for e. An entity keeps its first body.
func (pw *PhysicsWorld) AttachBody(e Entity, b *component.PhysicsBody, pos common.Vec3) bool {
	if pw == nil || pw.space == nil || b == nil {
		return false
	}
	if _, ok := pw.bodies[e]; ok {
		return true
	}
	if b.Mass <= 0 {
		b.Mass = 1
	}
	if b.Radius <= 0 {
		b.Radius = 0.2
	}

	body := cp.NewBody(b.Mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Z})
	shape := cp.NewCircle(body, b.Radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeCharacter)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e

	b.Body = body
	b.Shape = shape
	pw.bodies[e] = b
	return true
}

// HasSensor reports whether e owns a trigger volume.
func (pw *PhysicsWorld) HasSensor(e Entity) bool {
	if pw == nil {
		return false
	}
	_, ok := pw.sensors[e]
	return ok
}

// AddSensor creates a static trigger volume for e.
func (pw *PhysicsWorld) AddSensor(e Entity, pos common.Vec3, radius float64) {
	if pw == nil || pw.space == nil {
		return
	}
	if _, ok := pw.sensors[e]; ok {
		return
	}
	shape := cp.NewCircle(pw.space.StaticBody, radius, cp.Vector{X: pos.X, Y: pos.Z})
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeSensor)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	pw.sensors[e] = shape
}

// Body returns the physics body registered for e.
func (pw *PhysicsWorld) Body(e Entity) (*component.PhysicsBody, bool) {
	if pw == nil {
		return nil, false
	}
	b, ok := pw.bodies[e]
	return b, ok
}

// Forget removes every shape and body owned by e.
func (pw *PhysicsWorld) Forget(e Entity) {
	if pw == nil || pw.space == nil {
		return
	}
	if b, ok := pw.bodies[e]; ok {
		pw.space.RemoveShape(b.Shape)
		pw.space.RemoveBody(b.Body)
		delete(pw.shapeToEntity, b.Shape)
		delete(pw.bodies, e)
	}
	if s, ok := pw.sensors[e]; ok {
		pw.space.RemoveShape(s)
		delete(pw.shapeToEntity, s)
		delete(pw.sensors, e)
	}
}

// Step advances the simulation by dt seconds.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

// DrainTriggers returns trigger-enter contacts recorded since the last call.
func (pw *PhysicsWorld) DrainTriggers() []TriggerEnter {
	if pw == nil || len(pw.triggers) == 0 {
		return nil
	}
	out := pw.triggers
	pw.triggers = nil
	return out
}

func (pw *PhysicsWorld) setupHandlers() {
	handler := pw.space.NewCollisionHandler(collisionTypeSensor, collisionTypeCharacter)
	handler.UserData = pw
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		sensor, okA := world.shapeToEntity[shapeA]
		other, okB := world.shapeToEntity[shapeB]
		if !okA || !okB {
			return true
		}
		world.triggers = append(world.triggers, TriggerEnter{Sensor: sensor, Other: other})
		return true
	}
}
