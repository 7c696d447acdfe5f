package system

import (
	rpg "github.com/milk9111/actionrpg/component"
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/component"
)

// RootMotionSystem overrides each body's ground velocity with the
// animator's root displacement scaled by the move speed multiplier. The
// vertical velocity is kept.
type RootMotionSystem struct{}

func NewRootMotionSystem() *RootMotionSystem { return &RootMotionSystem{} }

func (s *RootMotionSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	ecs.ForEach3(w, component.AnimationComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.LocomotorComponent.Kind(), func(_ ecs.Entity, anim *component.Animation, body *component.PhysicsBody, loco *rpg.Locomotor) {
		if anim == nil || body == nil || body.Body == nil || loco == nil {
			return
		}
		rpg.ApplyRootMotion(body, anim.DeltaPos, loco.Settings.MoveSpeedMultiplier, dt)
	})
}
