package system

import (
	"errors"
	"math/rand/v2"

	rpg "github.com/milk9111/actionrpg/component"
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/component"
	"go.uber.org/zap"
)

var ErrCasterDead = errors.New("ability: caster is dead")

// AbilitySystem consumes ability requests. A successful use deducts the
// ability's energy cost, applies its effect, starts its animation and picks
// one of its audio clips.
type AbilitySystem struct {
	rng *rand.Rand
	log *zap.Logger
}

func NewAbilitySystem(rng *rand.Rand, log *zap.Logger) *AbilitySystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &AbilitySystem{rng: rng, log: loggerOrNop(log)}
}

func (s *AbilitySystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.AbilityRequestComponent.Kind(), func(e ecs.Entity, req *component.AbilityRequest) {
		ecs.Remove(w, e, component.AbilityRequestComponent.Kind())
		if req == nil {
			return
		}
		s.use(w, e, *req)
	})
}

func (s *AbilitySystem) use(w *ecs.World, caster ecs.Entity, req component.AbilityRequest) {
	fail := func(err error) {
		w.Events().Push(ecs.Event{Type: ecs.EventAbilityFailed, Data: AbilityFailed{Caster: caster, Slot: req.Slot, Err: err}})
		s.log.Debug("ability failed", entityField(caster), zap.Int("slot", req.Slot), zap.Error(err))
	}

	if !isAlive(w, caster) {
		fail(ErrCasterDead)
		return
	}
	abilities, ok := ecs.Get(w, caster, component.AbilitiesComponent.Kind())
	if !ok || abilities.Abilities() == nil {
		fail(rpg.ErrNoAbility)
		return
	}

	use := rpg.AbilityUse{}
	if energy, ok := ecs.Get(w, caster, component.EnergyComponent.Kind()); ok && energy != nil {
		use.Energy = energy
	}
	if health, ok := ecs.Get(w, caster, component.HealthComponent.Kind()); ok && health != nil {
		use.CasterHealth = health
	}
	if t, ok := ecs.Get(w, caster, component.TransformComponent.Kind()); ok && t != nil {
		use.Origin = t.Position()
		use.TargetPos = use.Origin
	}

	target := ecs.Entity(req.Target)
	if target.Valid() && ecs.IsAlive(w, target) {
		if health, ok := ecs.Get(w, target, component.HealthComponent.Kind()); ok && health != nil {
			use.Target = health
		}
		if t, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok && t != nil {
			use.TargetPos = t.Position()
		}
	}

	res, err := abilities.Slots.Use(req.Slot, use)
	if err != nil {
		fail(err)
		return
	}

	b, _ := abilities.Slots.Get(req.Slot)
	cfg := b.Config()
	clip, err := cfg.RandomAudioClip(s.rng)
	if err != nil {
		clip = ""
	}
	if anim, ok := ecs.Get(w, caster, component.AnimationComponent.Kind()); ok && anim != nil {
		anim.Trigger = cfg.Animation
	}

	w.Events().Push(ecs.Event{Type: ecs.EventAbilityUsed, Data: AbilityUsed{
		Caster:  caster,
		Target:  target,
		Slot:    req.Slot,
		Ability: cfg.Name,
		Clip:    clip,
		Result:  res,
	}})
	s.log.Info("ability used",
		entityField(caster),
		zap.String("ability", cfg.Name),
		zap.Int("slot", req.Slot),
		zap.Float64("spent", res.Spent),
		zap.Float64("damage", res.Damage),
		zap.Bool("hit", res.Hit),
		zap.String("clip", clip),
	)
}
