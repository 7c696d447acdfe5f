package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/actionrpg/common"
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Chipmunk simulates the ground plane; Vertical carries the Y velocity.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Radius   float64
	Mass     float64
	Vertical float64
}

func (b *PhysicsBody) Velocity() common.Vec3 {
	if b == nil || b.Body == nil {
		return common.Vec3{}
	}
	v := b.Body.Velocity()
	return common.Vec3{X: v.X, Y: b.Vertical, Z: v.Y}
}

func (b *PhysicsBody) SetVelocity(v common.Vec3) {
	if b == nil || b.Body == nil {
		return
	}
	b.Body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Z})
	b.Vertical = v.Y
}

// GroundPosition is the body position on the ground plane.
func (b *PhysicsBody) GroundPosition() common.Vec3 {
	if b == nil || b.Body == nil {
		return common.Vec3{}
	}
	p := b.Body.Position()
	return common.Vec3{X: p.X, Z: p.Y}
}

func (b *PhysicsBody) SetGroundPosition(p common.Vec3) {
	if b == nil || b.Body == nil {
		return
	}
	b.Body.SetPosition(cp.Vector{X: p.X, Y: p.Z})
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
