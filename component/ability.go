package component

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/milk9111/actionrpg/common"
)

var (
	ErrNilConfig          = errors.New("ability: config is nil")
	ErrNilHost            = errors.New("ability: host is nil")
	ErrUnknownAbilityKind = errors.New("ability: unknown ability kind")
	ErrNoAbility          = errors.New("ability: no ability in slot")
	ErrInsufficientEnergy = errors.New("ability: insufficient energy")
	ErrNoAudioClips       = errors.New("ability: no audio clips configured")
)

// DefaultEnergyCost is used when a config leaves the cost unset.
const DefaultEnergyCost = 10

// AbilityKind tags which payload of an AbilityConfig is meaningful.
type AbilityKind string

const (
	AbilityAreaEffect AbilityKind = "area_effect"
	AbilityProjectile AbilityKind = "projectile"
	AbilityBuff       AbilityKind = "buff"
	AbilityScripted   AbilityKind = "scripted"
)

type AreaEffectParams struct {
	Radius float64
	Damage float64
}

type ProjectileParams struct {
	Damage float64
	Speed  float64
	// Range of 0 means unlimited.
	Range float64
}

type BuffParams struct {
	Heal          float64
	EnergyRestore float64
}

type ScriptedParams struct {
	Path   string
	Source string
}

// AbilityConfig is shared, read-only design data for one special ability.
// Many characters may attach behaviours backed by the same config.
type AbilityConfig struct {
	Name           string
	Kind           AbilityKind
	EnergyCost     float64
	ParticlePrefab string
	Animation      string
	AudioClips     []string

	AreaEffect AreaEffectParams
	Projectile ProjectileParams
	Buff       BuffParams
	Scripted   ScriptedParams
}

func (c *AbilityConfig) GetEnergyCost() float64 {
	if c == nil {
		return 0
	}
	return c.EnergyCost
}

// Validate checks the config can back a behaviour.
func (c *AbilityConfig) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	switch c.Kind {
	case AbilityAreaEffect, AbilityProjectile, AbilityBuff:
	case AbilityScripted:
		if c.Scripted.Source == "" {
			return fmt.Errorf("ability %q: scripted ability has no source", c.Name)
		}
	default:
		return fmt.Errorf("ability %q: %w: %q", c.Name, ErrUnknownAbilityKind, c.Kind)
	}
	if c.EnergyCost < 0 {
		return fmt.Errorf("ability %q: negative energy cost %v", c.Name, c.EnergyCost)
	}
	return nil
}

// NewBehaviour produces an unbound runtime behaviour for this config's kind.
func (c *AbilityConfig) NewBehaviour() (AbilityBehaviour, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Kind {
	case AbilityAreaEffect:
		return newAreaEffectBehaviour(), nil
	case AbilityProjectile:
		return newProjectileBehaviour(), nil
	case AbilityBuff:
		return newBuffBehaviour(), nil
	case AbilityScripted:
		return newScriptedBehaviour(), nil
	}
	return nil, fmt.Errorf("ability %q: %w: %q", c.Name, ErrUnknownAbilityKind, c.Kind)
}

// AttachAbilityTo produces a behaviour, binds it back to this config and
// stores it in the host's slot, replacing whatever was there. On error the
// host is left untouched.
func (c *AbilityConfig) AttachAbilityTo(host AbilityHost, slot int) (AbilityBehaviour, error) {
	if host == nil || host.Abilities() == nil {
		return nil, ErrNilHost
	}
	b, err := c.NewBehaviour()
	if err != nil {
		return nil, err
	}
	b.SetConfig(c)
	host.Abilities().set(slot, b)
	return b, nil
}

// RandomAudioClip picks one configured clip uniformly. The clip list must be
// non-empty.
func (c *AbilityConfig) RandomAudioClip(rng *rand.Rand) (string, error) {
	if c == nil || len(c.AudioClips) == 0 {
		return "", ErrNoAudioClips
	}
	if rng == nil {
		return c.AudioClips[rand.IntN(len(c.AudioClips))], nil
	}
	return c.AudioClips[rng.IntN(len(c.AudioClips))], nil
}

// AbilityUse carries the collaborators an ability acts on.
type AbilityUse struct {
	Energy       ResourcePool
	CasterHealth HealthComponent
	Target       HealthComponent
	Origin       common.Vec3
	TargetPos    common.Vec3
}

// AbilityResult reports what an ability did.
type AbilityResult struct {
	Spent    float64
	Damage   float64
	Healed   float64
	Restored float64
	Hit      bool
}

// AbilityBehaviour is the per-character runtime instance of an ability.
type AbilityBehaviour interface {
	ID() string
	Config() *AbilityConfig
	SetConfig(cfg *AbilityConfig)
	Use(u AbilityUse) (AbilityResult, error)
}

// AbilityHost is anything owning a set of ability slots.
type AbilityHost interface {
	Abilities() *AbilitySlots
}

// AbilitySlots holds at most one behaviour per slot.
type AbilitySlots struct {
	slots map[int]AbilityBehaviour
}

func NewAbilitySlots() *AbilitySlots {
	return &AbilitySlots{slots: map[int]AbilityBehaviour{}}
}

func (s *AbilitySlots) Abilities() *AbilitySlots {
	return s
}

func (s *AbilitySlots) set(slot int, b AbilityBehaviour) {
	if s.slots == nil {
		s.slots = map[int]AbilityBehaviour{}
	}
	s.slots[slot] = b
}

func (s *AbilitySlots) Get(slot int) (AbilityBehaviour, bool) {
	if s == nil {
		return nil, false
	}
	b, ok := s.slots[slot]
	return b, ok
}

// Detach removes the behaviour in slot. Returns false if the slot was empty.
func (s *AbilitySlots) Detach(slot int) bool {
	if s == nil {
		return false
	}
	if _, ok := s.slots[slot]; !ok {
		return false
	}
	delete(s.slots, slot)
	return true
}

func (s *AbilitySlots) Len() int {
	if s == nil {
		return 0
	}
	return len(s.slots)
}

// Slots returns occupied slot indices in ascending order.
func (s *AbilitySlots) Slots() []int {
	if s == nil {
		return nil
	}
	out := make([]int, 0, len(s.slots))
	for k := range s.slots {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Use delegates to the behaviour attached in slot.
func (s *AbilitySlots) Use(slot int, u AbilityUse) (AbilityResult, error) {
	b, ok := s.Get(slot)
	if !ok {
		return AbilityResult{}, ErrNoAbility
	}
	return b.Use(u)
}

// ApplyAoEModifier scales the radius of every attached area effect by the
// character's AoE modifier.
func ApplyAoEModifier(s *AbilitySlots, stats CharacterStats) int {
	n := 0
	for _, slot := range s.Slots() {
		b, _ := s.Get(slot)
		if aoe, ok := b.(*AreaEffectBehaviour); ok {
			aoe.SetRadiusModifier(stats.AoEModifier)
			n++
		}
	}
	return n
}
