package component

import "github.com/google/uuid"

type behaviourBase struct {
	id     string
	config *AbilityConfig
}

func newBehaviourBase() behaviourBase {
	return behaviourBase{id: uuid.NewString()}
}

func (b *behaviourBase) ID() string { return b.id }

func (b *behaviourBase) Config() *AbilityConfig { return b.config }

func (b *behaviourBase) SetConfig(cfg *AbilityConfig) { b.config = cfg }

// spend checks and deducts the energy cost. Nothing is deducted on failure.
func (b *behaviourBase) spend(energy ResourcePool) (float64, error) {
	if b.config == nil {
		return 0, ErrNilConfig
	}
	cost := b.config.EnergyCost
	if energy == nil || !energy.Has(cost) {
		return 0, ErrInsufficientEnergy
	}
	if !energy.Deduct(cost) {
		return 0, ErrInsufficientEnergy
	}
	return cost, nil
}

func damageTarget(target HealthComponent, amount float64, res *AbilityResult) {
	if target == nil || !target.IsAlive() || amount <= 0 {
		return
	}
	if target.ApplyDamage(amount) {
		res.Hit = true
		res.Damage = amount
	}
}

// AreaEffectBehaviour damages a target inside a radius around the caster.
type AreaEffectBehaviour struct {
	behaviourBase
	radiusModifier float64
}

func newAreaEffectBehaviour() *AreaEffectBehaviour {
	return &AreaEffectBehaviour{behaviourBase: newBehaviourBase(), radiusModifier: 1}
}

func (b *AreaEffectBehaviour) SetRadiusModifier(mod float64) {
	if mod <= 0 {
		mod = 1
	}
	b.radiusModifier = mod
}

// Radius is the configured radius scaled by the caster's modifier.
func (b *AreaEffectBehaviour) Radius() float64 {
	if b.config == nil {
		return 0
	}
	return b.config.AreaEffect.Radius * b.radiusModifier
}

func (b *AreaEffectBehaviour) Use(u AbilityUse) (AbilityResult, error) {
	spent, err := b.spend(u.Energy)
	if err != nil {
		return AbilityResult{}, err
	}
	res := AbilityResult{Spent: spent}
	if u.TargetPos.Sub(u.Origin).Length() <= b.Radius() {
		damageTarget(u.Target, b.config.AreaEffect.Damage, &res)
	}
	return res, nil
}

// ProjectileBehaviour damages a single target within range.
type ProjectileBehaviour struct {
	behaviourBase
}

func newProjectileBehaviour() *ProjectileBehaviour {
	return &ProjectileBehaviour{behaviourBase: newBehaviourBase()}
}

func (b *ProjectileBehaviour) Use(u AbilityUse) (AbilityResult, error) {
	spent, err := b.spend(u.Energy)
	if err != nil {
		return AbilityResult{}, err
	}
	res := AbilityResult{Spent: spent}
	p := b.config.Projectile
	if p.Range <= 0 || u.TargetPos.Sub(u.Origin).Length() <= p.Range {
		damageTarget(u.Target, p.Damage, &res)
	}
	return res, nil
}

// BuffBehaviour heals the caster and refunds energy.
type BuffBehaviour struct {
	behaviourBase
}

func newBuffBehaviour() *BuffBehaviour {
	return &BuffBehaviour{behaviourBase: newBehaviourBase()}
}

type energyRestorer interface {
	Restore(amount float64)
}

func (b *BuffBehaviour) Use(u AbilityUse) (AbilityResult, error) {
	spent, err := b.spend(u.Energy)
	if err != nil {
		return AbilityResult{}, err
	}
	res := AbilityResult{Spent: spent}
	buff := b.config.Buff
	if u.CasterHealth != nil && u.CasterHealth.IsAlive() && buff.Heal > 0 {
		before := u.CasterHealth.CurrentHP()
		u.CasterHealth.Heal(buff.Heal)
		res.Healed = u.CasterHealth.CurrentHP() - before
	}
	if r, ok := u.Energy.(energyRestorer); ok && buff.EnergyRestore > 0 {
		r.Restore(buff.EnergyRestore)
		res.Restored = buff.EnergyRestore
	}
	return res, nil
}
