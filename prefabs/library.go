package prefabs

import (
	"errors"
	"fmt"
	"sort"

	rpg "github.com/milk9111/actionrpg/component"
)

var (
	ErrDuplicateName = errors.New("prefabs: duplicate name")
	ErrUnnamed       = errors.New("prefabs: entry has no name")
)

const (
	AbilitiesFile = "abilities.yaml"
	WeaponsFile   = "weapons.yaml"
)

type AreaEffectSpec struct {
	Radius float64 `yaml:"radius"`
	Damage float64 `yaml:"damage"`
}

type ProjectileSpec struct {
	Damage float64 `yaml:"damage"`
	Speed  float64 `yaml:"speed"`
	Range  float64 `yaml:"range"`
}

type BuffSpec struct {
	Heal          float64 `yaml:"heal"`
	EnergyRestore float64 `yaml:"energy_restore"`
}

// AbilitySpec is one entry of abilities.yaml. An omitted energy_cost uses
// the default cost; an explicit 0 makes the ability free.
type AbilitySpec struct {
	Name           string          `yaml:"name"`
	Kind           string          `yaml:"kind"`
	EnergyCost     *float64        `yaml:"energy_cost"`
	ParticlePrefab string          `yaml:"particle_prefab"`
	Animation      string          `yaml:"animation"`
	AudioClips     []string        `yaml:"audio_clips"`
	AreaEffect     *AreaEffectSpec `yaml:"area_effect"`
	Projectile     *ProjectileSpec `yaml:"projectile"`
	Buff           *BuffSpec       `yaml:"buff"`
	Script         string          `yaml:"script"`
}

type AbilitiesSpec struct {
	Abilities []AbilitySpec `yaml:"abilities"`
}

type WeaponSpec struct {
	Name            string  `yaml:"name"`
	MaxAttackRange  float64 `yaml:"max_attack_range"`
	Damage          float64 `yaml:"damage"`
	TimeBetweenHits float64 `yaml:"time_between_hits"`
	Prefab          string  `yaml:"prefab"`
	AttackAnimation string  `yaml:"attack_animation"`
}

type WeaponsSpec struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

// Config converts the spec into a validated ability config, reading the
// script source for scripted abilities.
func (s AbilitySpec) Config() (*rpg.AbilityConfig, error) {
	if s.Name == "" {
		return nil, ErrUnnamed
	}
	cfg := &rpg.AbilityConfig{
		Name:           s.Name,
		Kind:           rpg.AbilityKind(s.Kind),
		EnergyCost:     rpg.DefaultEnergyCost,
		ParticlePrefab: s.ParticlePrefab,
		Animation:      s.Animation,
		AudioClips:     append([]string(nil), s.AudioClips...),
	}
	if s.EnergyCost != nil {
		cfg.EnergyCost = *s.EnergyCost
	}
	if s.AreaEffect != nil {
		cfg.AreaEffect = rpg.AreaEffectParams{Radius: s.AreaEffect.Radius, Damage: s.AreaEffect.Damage}
	}
	if s.Projectile != nil {
		cfg.Projectile = rpg.ProjectileParams{Damage: s.Projectile.Damage, Speed: s.Projectile.Speed, Range: s.Projectile.Range}
	}
	if s.Buff != nil {
		cfg.Buff = rpg.BuffParams{Heal: s.Buff.Heal, EnergyRestore: s.Buff.EnergyRestore}
	}
	if s.Script != "" {
		src, err := LoadScript(s.Script)
		if err != nil {
			return nil, fmt.Errorf("prefabs: ability %q: load script %s: %w", s.Name, s.Script, err)
		}
		cfg.Scripted = rpg.ScriptedParams{Path: s.Script, Source: string(src)}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %w", err)
	}
	return cfg, nil
}

func (s WeaponSpec) Config() (*rpg.WeaponConfig, error) {
	if s.Name == "" {
		return nil, ErrUnnamed
	}
	if s.MaxAttackRange < 0 || s.TimeBetweenHits < 0 {
		return nil, fmt.Errorf("prefabs: weapon %q: negative range or cooldown", s.Name)
	}
	return &rpg.WeaponConfig{
		Name:            s.Name,
		MaxAttackRange:  s.MaxAttackRange,
		Damage:          s.Damage,
		TimeBetweenHits: s.TimeBetweenHits,
		Prefab:          s.Prefab,
		AttackAnimation: s.AttackAnimation,
	}, nil
}

// Library holds the shared ability and weapon configs. A library is never
// mutated after loading; a reload builds a new one.
type Library struct {
	abilities map[string]*rpg.AbilityConfig
	weapons   map[string]*rpg.WeaponConfig
}

func NewLibrary(abilities AbilitiesSpec, weapons WeaponsSpec) (*Library, error) {
	lib := &Library{
		abilities: make(map[string]*rpg.AbilityConfig, len(abilities.Abilities)),
		weapons:   make(map[string]*rpg.WeaponConfig, len(weapons.Weapons)),
	}
	for _, spec := range abilities.Abilities {
		cfg, err := spec.Config()
		if err != nil {
			return nil, err
		}
		if _, ok := lib.abilities[cfg.Name]; ok {
			return nil, fmt.Errorf("%w: ability %q", ErrDuplicateName, cfg.Name)
		}
		lib.abilities[cfg.Name] = cfg
	}
	for _, spec := range weapons.Weapons {
		cfg, err := spec.Config()
		if err != nil {
			return nil, err
		}
		if _, ok := lib.weapons[cfg.Name]; ok {
			return nil, fmt.Errorf("%w: weapon %q", ErrDuplicateName, cfg.Name)
		}
		lib.weapons[cfg.Name] = cfg
	}
	return lib, nil
}

// LoadLibrary reads abilities.yaml and weapons.yaml.
func LoadLibrary() (*Library, error) {
	abilities, err := LoadSpec[AbilitiesSpec](AbilitiesFile)
	if err != nil {
		return nil, err
	}
	weapons, err := LoadSpec[WeaponsSpec](WeaponsFile)
	if err != nil {
		return nil, err
	}
	return NewLibrary(abilities, weapons)
}

func (l *Library) Ability(name string) (*rpg.AbilityConfig, bool) {
	if l == nil {
		return nil, false
	}
	cfg, ok := l.abilities[name]
	return cfg, ok
}

func (l *Library) Weapon(name string) (*rpg.WeaponConfig, bool) {
	if l == nil {
		return nil, false
	}
	cfg, ok := l.weapons[name]
	return cfg, ok
}

func (l *Library) AbilityNames() []string {
	if l == nil {
		return nil
	}
	return sortedKeys(l.abilities)
}

func (l *Library) WeaponNames() []string {
	if l == nil {
		return nil
	}
	return sortedKeys(l.weapons)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
