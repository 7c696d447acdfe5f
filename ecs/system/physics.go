package system

import (
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/component"
	"go.uber.org/zap"
)

// PhysicsSystem registers new bodies and pickup sensors with the world's
// Chipmunk space, steps it, copies body positions back to transforms and
// raises trigger-enter events.
type PhysicsSystem struct {
	log *zap.Logger
}

func NewPhysicsSystem(log *zap.Logger) *PhysicsSystem {
	return &PhysicsSystem{log: loggerOrNop(log)}
}

func (s *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body == nil || t == nil || body.Body != nil {
			return
		}
		if pw.AttachBody(e, body, t.Position()) {
			s.log.Debug("physics body attached", entityField(e), zap.Float64("radius", body.Radius))
		}
	})
	ecs.ForEach2(w, component.WeaponPickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.WeaponPickup, t *component.Transform) {
		if pickup == nil || t == nil || pickup.Consumed || pw.HasSensor(e) {
			return
		}
		radius := pickup.Radius
		if radius <= 0 {
			radius = 0.5
		}
		pw.AddSensor(e, t.Position(), radius)
	})

	pw.Step(dt)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body == nil || t == nil || body.Body == nil {
			return
		}
		p := body.GroundPosition()
		t.X = p.X
		t.Z = p.Z
		if dt > 0 {
			t.Y += body.Vertical * dt
		}
	})

	for _, trig := range pw.DrainTriggers() {
		w.Events().Push(ecs.Event{Type: ecs.EventTriggerEnter, Data: trig})
	}
}
