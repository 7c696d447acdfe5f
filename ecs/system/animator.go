package system

import (
	"github.com/milk9111/actionrpg/common"
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/component"
)

// AnimatorSystem samples root motion from each animator and applies the
// root rotation to the transform. Root translation is left for
// RootMotionSystem.
type AnimatorSystem struct{}

func NewAnimatorSystem() *AnimatorSystem { return &AnimatorSystem{} }

func (s *AnimatorSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, anim *component.Animation, t *component.Transform) {
		if anim == nil || t == nil {
			return
		}
		anim.Trigger = ""
		if anim.Animator == nil {
			anim.DeltaPos = common.Vec3{}
			anim.DeltaYaw = 0
			return
		}
		anim.DeltaYaw = anim.Animator.DeltaYaw(dt)
		t.SetYaw(common.WrapDegrees(t.Yaw() + anim.DeltaYaw))
		anim.DeltaPos = anim.Animator.DeltaPosition(t.Yaw(), dt)
	})
}
