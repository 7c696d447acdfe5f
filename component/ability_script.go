package component

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script globals. Inputs are set before each run; the script assigns damage
// and heal.
var scriptInputs = []string{"cost", "caster_energy", "caster_hp", "target_hp", "target_max_hp", "distance"}

// ScriptedBehaviour computes its effect with a tengo script from the config.
type ScriptedBehaviour struct {
	behaviourBase
	compiled *tengo.Compiled
	source   string
}

func newScriptedBehaviour() *ScriptedBehaviour {
	return &ScriptedBehaviour{behaviourBase: newBehaviourBase()}
}

func (b *ScriptedBehaviour) compile() error {
	if b.config == nil {
		return ErrNilConfig
	}
	src := b.config.Scripted.Source
	if b.compiled != nil && b.source == src {
		return nil
	}

	script := tengo.NewScript([]byte(src))
	for _, name := range append(scriptInputs, "damage", "heal") {
		if err := script.Add(name, 0.0); err != nil {
			return fmt.Errorf("ability %q: add %s: %w", b.config.Name, name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("ability %q: compile script: %w", b.config.Name, err)
	}
	b.compiled = compiled
	b.source = src
	return nil
}

func hp(h HealthComponent) (float64, float64) {
	if h == nil {
		return 0, 0
	}
	return h.CurrentHP(), h.MaxHP()
}

func (b *ScriptedBehaviour) Use(u AbilityUse) (AbilityResult, error) {
	if err := b.compile(); err != nil {
		return AbilityResult{}, err
	}

	var energyBefore float64
	if e, ok := u.Energy.(interface{ Fraction() float64 }); ok {
		energyBefore = e.Fraction()
	}

	cost := b.config.EnergyCost
	if u.Energy == nil || !u.Energy.Has(cost) {
		return AbilityResult{}, ErrInsufficientEnergy
	}

	casterHP, _ := hp(u.CasterHealth)
	targetHP, targetMax := hp(u.Target)
	inputs := map[string]float64{
		"cost":          cost,
		"caster_energy": energyBefore,
		"caster_hp":     casterHP,
		"target_hp":     targetHP,
		"target_max_hp": targetMax,
		"distance":      u.TargetPos.Sub(u.Origin).Length(),
		"damage":        0,
		"heal":          0,
	}
	for name, v := range inputs {
		if err := b.compiled.Set(name, v); err != nil {
			return AbilityResult{}, fmt.Errorf("ability %q: set %s: %w", b.config.Name, name, err)
		}
	}
	// The pool is only charged once the script has produced an effect.
	if err := b.compiled.Run(); err != nil {
		return AbilityResult{}, fmt.Errorf("ability %q: run script: %w", b.config.Name, err)
	}

	spent, err := b.spend(u.Energy)
	if err != nil {
		return AbilityResult{}, err
	}
	res := AbilityResult{Spent: spent}

	damageTarget(u.Target, b.compiled.Get("damage").Float(), &res)
	if heal := b.compiled.Get("heal").Float(); heal > 0 && u.CasterHealth != nil && u.CasterHealth.IsAlive() {
		u.CasterHealth.Heal(heal)
		res.Healed = u.CasterHealth.CurrentHP() - casterHP
	}
	return res, nil
}
