package component

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/actionrpg/common"
)

func TestAttachAbilityTo(t *testing.T) {
	cases := []struct {
		name    string
		cfg     *AbilityConfig
		wantErr error
	}{
		{"area_effect", &AbilityConfig{Name: "quake", Kind: AbilityAreaEffect, EnergyCost: 10}, nil},
		{"projectile", &AbilityConfig{Name: "bolt", Kind: AbilityProjectile, EnergyCost: 5}, nil},
		{"buff", &AbilityConfig{Name: "heal", Kind: AbilityBuff, EnergyCost: 5}, nil},
		{"scripted", &AbilityConfig{Name: "drain", Kind: AbilityScripted, Scripted: ScriptedParams{Source: "damage = 1"}}, nil},
		{"nil_config", nil, ErrNilConfig},
		{"unknown_kind", &AbilityConfig{Name: "bogus", Kind: "teleport"}, ErrUnknownAbilityKind},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			slots := NewAbilitySlots()
			b, err := c.cfg.AttachAbilityTo(slots, 0)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("err = %v, want %v", err, c.wantErr)
				}
				if slots.Len() != 0 {
					t.Fatalf("failed attach must not store a behaviour")
				}
				return
			}
			if err != nil {
				t.Fatalf("attach: %v", err)
			}
			if b.Config() != c.cfg {
				t.Fatalf("behaviour not bound to its config")
			}
			got, ok := slots.Get(0)
			if !ok || got != b {
				t.Fatalf("behaviour not stored in slot")
			}
		})
	}
}

func TestAttachReplacesSlot(t *testing.T) {
	slots := NewAbilitySlots()
	first := &AbilityConfig{Name: "a", Kind: AbilityBuff}
	second := &AbilityConfig{Name: "b", Kind: AbilityProjectile}

	if _, err := first.AttachAbilityTo(slots, 2); err != nil {
		t.Fatalf("attach: %v", err)
	}
	b2, err := second.AttachAbilityTo(slots, 2)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if slots.Len() != 1 {
		t.Fatalf("expected one behaviour per slot, got %d", slots.Len())
	}
	if got, _ := slots.Get(2); got != b2 {
		t.Fatalf("slot should hold the latest behaviour")
	}
}

func TestSharedConfigBacksManyBehaviours(t *testing.T) {
	cfg := &AbilityConfig{Name: "bolt", Kind: AbilityProjectile, EnergyCost: 1}
	a, b := NewAbilitySlots(), NewAbilitySlots()
	ba, _ := cfg.AttachAbilityTo(a, 0)
	bb, _ := cfg.AttachAbilityTo(b, 0)
	if ba == bb || ba.ID() == bb.ID() {
		t.Fatalf("each character needs its own behaviour instance")
	}
	if ba.Config() != bb.Config() {
		t.Fatalf("behaviours should share the config")
	}
}

func TestUseGatesOnEnergy(t *testing.T) {
	cases := []struct {
		name       string
		energy     float64
		wantErr    error
		wantEnergy float64
		wantHP     float64
	}{
		{"enough", 50, nil, 40, 75},
		{"exact", 10, nil, 0, 75},
		{"short", 9.5, ErrInsufficientEnergy, 9.5, 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := &AbilityConfig{Name: "bolt", Kind: AbilityProjectile, EnergyCost: 10, Projectile: ProjectileParams{Damage: 25}}
			slots := NewAbilitySlots()
			if _, err := cfg.AttachAbilityTo(slots, 1); err != nil {
				t.Fatalf("attach: %v", err)
			}
			energy := &Energy{Max: 100, Current: c.energy}
			target := NewHealth(100)

			res, err := slots.Use(1, AbilityUse{Energy: energy, Target: target})
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("err = %v, want %v", err, c.wantErr)
			}
			if energy.Current != c.wantEnergy {
				t.Fatalf("energy = %v, want %v", energy.Current, c.wantEnergy)
			}
			if target.Current != c.wantHP {
				t.Fatalf("target hp = %v, want %v", target.Current, c.wantHP)
			}
			if err == nil && res.Spent != 10 {
				t.Fatalf("spent = %v", res.Spent)
			}
		})
	}
}

func TestUseEmptySlot(t *testing.T) {
	if _, err := NewAbilitySlots().Use(3, AbilityUse{}); !errors.Is(err, ErrNoAbility) {
		t.Fatalf("err = %v", err)
	}
}

func TestAreaEffectRadiusAndModifier(t *testing.T) {
	cfg := &AbilityConfig{Name: "quake", Kind: AbilityAreaEffect, EnergyCost: 1, AreaEffect: AreaEffectParams{Radius: 2, Damage: 10}}
	slots := NewAbilitySlots()
	if _, err := cfg.AttachAbilityTo(slots, 0); err != nil {
		t.Fatalf("attach: %v", err)
	}
	target := NewHealth(50)
	use := AbilityUse{Energy: NewEnergy(100, 0), Target: target, TargetPos: common.V3(3, 0, 0)}

	res, err := slots.Use(0, use)
	if err != nil || res.Hit {
		t.Fatalf("target at 3 should be outside radius 2: res=%+v err=%v", res, err)
	}

	if n := ApplyAoEModifier(slots, CharacterStats{AoEModifier: 2}); n != 1 {
		t.Fatalf("modified %d behaviours", n)
	}
	res, err = slots.Use(0, use)
	if err != nil || !res.Hit || target.Current != 40 {
		t.Fatalf("expected hit with doubled radius: res=%+v hp=%v err=%v", res, target.Current, err)
	}
}

func TestBuffHealsAndRestores(t *testing.T) {
	cfg := &AbilityConfig{Name: "second wind", Kind: AbilityBuff, EnergyCost: 20, Buff: BuffParams{Heal: 30, EnergyRestore: 5}}
	slots := NewAbilitySlots()
	if _, err := cfg.AttachAbilityTo(slots, 0); err != nil {
		t.Fatalf("attach: %v", err)
	}
	health := &Health{Max: 100, Current: 80}
	energy := NewEnergy(50, 0)

	res, err := slots.Use(0, AbilityUse{Energy: energy, CasterHealth: health})
	if err != nil {
		t.Fatalf("use: %v", err)
	}
	if health.Current != 100 || res.Healed != 20 {
		t.Fatalf("healed %v to %v", res.Healed, health.Current)
	}
	if energy.Current != 35 {
		t.Fatalf("energy = %v, want 35", energy.Current)
	}
}

func TestScriptedAbility(t *testing.T) {
	src := `damage = target_max_hp * 0.25
heal = cost`
	cfg := &AbilityConfig{Name: "drain", Kind: AbilityScripted, EnergyCost: 4, Scripted: ScriptedParams{Source: src}}
	slots := NewAbilitySlots()
	if _, err := cfg.AttachAbilityTo(slots, 0); err != nil {
		t.Fatalf("attach: %v", err)
	}
	caster := &Health{Max: 100, Current: 50}
	target := NewHealth(80)

	res, err := slots.Use(0, AbilityUse{Energy: NewEnergy(10, 0), CasterHealth: caster, Target: target})
	if err != nil {
		t.Fatalf("use: %v", err)
	}
	if target.Current != 60 || res.Damage != 20 {
		t.Fatalf("target hp = %v, damage = %v", target.Current, res.Damage)
	}
	if caster.Current != 54 {
		t.Fatalf("caster hp = %v, want 54", caster.Current)
	}
}

func TestScriptedAbilityFailureSpendsNothing(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"compile_error", "damage = ("},
		{"runtime_error", "f := 5\ndamage = f()"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := &AbilityConfig{Name: "broken", Kind: AbilityScripted, EnergyCost: 4, Scripted: ScriptedParams{Source: c.src}}
			slots := NewAbilitySlots()
			if _, err := cfg.AttachAbilityTo(slots, 0); err != nil {
				t.Fatalf("attach: %v", err)
			}
			energy := NewEnergy(10, 0)
			target := NewHealth(30)
			if _, err := slots.Use(0, AbilityUse{Energy: energy, Target: target}); err == nil {
				t.Fatalf("expected script error")
			}
			if energy.Current != 10 {
				t.Fatalf("energy spent on a failed script: %v", energy.Current)
			}
			if target.Current != 30 {
				t.Fatalf("failed script applied damage: %v", target.Current)
			}
		})
	}
}

func TestScriptedAbilityShortOnEnergySkipsScript(t *testing.T) {
	cfg := &AbilityConfig{Name: "drain", Kind: AbilityScripted, EnergyCost: 8, Scripted: ScriptedParams{Source: "damage = 10"}}
	slots := NewAbilitySlots()
	if _, err := cfg.AttachAbilityTo(slots, 0); err != nil {
		t.Fatalf("attach: %v", err)
	}
	target := NewHealth(30)
	if _, err := slots.Use(0, AbilityUse{Energy: NewEnergy(5, 0), Target: target}); !errors.Is(err, ErrInsufficientEnergy) {
		t.Fatalf("err = %v", err)
	}
	if target.Current != 30 {
		t.Fatalf("target hp = %v", target.Current)
	}
}

func TestRandomAudioClip(t *testing.T) {
	cfg := &AbilityConfig{AudioClips: []string{"a.wav", "b.wav", "c.wav"}}
	rng := rand.New(rand.NewPCG(1, 2))
	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		clip, err := cfg.RandomAudioClip(rng)
		if err != nil {
			t.Fatalf("clip: %v", err)
		}
		seen[clip]++
	}
	if len(seen) != 3 {
		t.Fatalf("expected every clip to be picked, got %v", seen)
	}

	empty := &AbilityConfig{}
	if _, err := empty.RandomAudioClip(rng); !errors.Is(err, ErrNoAudioClips) {
		t.Fatalf("err = %v", err)
	}
}
