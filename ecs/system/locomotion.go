package system

import (
	rpg "github.com/milk9111/actionrpg/component"
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/component"
)

// LocomotionSystem turns agent steering into heading changes and animator
// parameters. Characters stop driving once inside their stopping distance.
type LocomotionSystem struct{}

func NewLocomotionSystem() *LocomotionSystem { return &LocomotionSystem{} }

func (s *LocomotionSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	ecs.ForEach3(w, component.LocomotorComponent.Kind(), component.AgentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, loco *rpg.Locomotor, agent *rpg.Agent, t *component.Transform) {
		if loco == nil || agent == nil || t == nil {
			return
		}
		alive := isAlive(w, e)
		move := rpg.DesiredMovement(agent, alive)

		var sink rpg.AnimatorSink
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok && anim != nil && anim.Animator != nil {
			sink = anim.Animator
		}
		loco.Move(move, t, sink, alive, dt)
	})
}
