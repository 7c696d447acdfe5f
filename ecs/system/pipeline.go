package system

import (
	"math/rand/v2"

	"github.com/milk9111/actionrpg/ecs"
	"go.uber.org/zap"
)

type Options struct {
	Weapons WeaponCatalog
	Rand    *rand.Rand
	Logger  *zap.Logger
	// CorpseSeconds removes dead NPCs after that long; zero keeps them.
	CorpseSeconds float64
}

// Pipeline exposes the installed systems that hosts reconfigure at runtime.
type Pipeline struct {
	Pickup  *PickupSystem
	Ability *AbilitySystem
}

// Install adds the character systems to w in update order.
func Install(w *ecs.World, opts Options) *Pipeline {
	log := loggerOrNop(opts.Logger)
	p := &Pipeline{
		Pickup:  NewPickupSystem(opts.Weapons, log.Named("pickup")),
		Ability: NewAbilitySystem(opts.Rand, log.Named("ability")),
	}
	w.AddSystem(NewEnergySystem())
	w.AddSystem(NewAgentSystem())
	w.AddSystem(NewLocomotionSystem())
	w.AddSystem(NewAnimatorSystem())
	w.AddSystem(NewRootMotionSystem())
	w.AddSystem(NewPhysicsSystem(log.Named("physics")))
	w.AddSystem(p.Pickup)
	w.AddSystem(p.Ability)
	w.AddSystem(NewChaseSystem(log.Named("chase")))
	death := NewDeathSystem(log.Named("death"))
	death.CorpseSeconds = opts.CorpseSeconds
	w.AddSystem(death)
	w.AddSystem(NewTTLSystem(log.Named("ttl")))
	return p
}
