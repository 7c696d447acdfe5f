package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/actionrpg/common"
	rpg "github.com/milk9111/actionrpg/component"
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/component"
	"github.com/milk9111/actionrpg/prefabs"
)

var (
	ErrNoLibrary      = errors.New("build entity: no ability/weapon library")
	ErrUnknownWeapon  = errors.New("build entity: unknown weapon")
	ErrUnknownAbility = errors.New("build entity: unknown ability")
)

type entityPrefabSpec = prefabs.EntityBuildSpec

// Options places a prefab instance and supplies the shared configs its
// weapon and ability components refer to.
type Options struct {
	Library  *prefabs.Library
	Position common.Vec3
	Yaw      float64
}

type buildContext struct {
	PrefabPath string
	Options
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":    addPlayerTag,
	"enemy_tag":     addEnemyTag,
	"transform":     addTransform,
	"character":     addCharacter,
	"health":        addHealth,
	"energy":        addEnergy,
	"locomotion":    addLocomotion,
	"agent":         addAgent,
	"animator":      addAnimator,
	"physics_body":  addPhysicsBody,
	"weapon":        addWeapon,
	"abilities":     addAbilities,
	"weapon_pickup": addWeaponPickup,
	"chase":         addChase,
}

// Abilities reads the character's stats, so it is built after character.
var componentBuildOrder = []string{
	"player_tag",
	"enemy_tag",
	"transform",
	"character",
	"health",
	"energy",
	"locomotion",
	"agent",
	"animator",
	"physics_body",
	"weapon",
	"abilities",
	"weapon_pickup",
	"chase",
}

func BuildEntity(w *ecs.World, prefabPath string, opts Options) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildFromSpec(w, prefabPath, spec, opts)
}

// BuildFromSpec builds an entity from an already decoded prefab.
func BuildFromSpec(w *ecs.World, prefabPath string, spec entityPrefabSpec, opts Options) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Options: opts}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %v", prefabPath, names)
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, pos common.Vec3, yaw float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.SetPosition(pos)
	t.SetYaw(common.WrapDegrees(yaw))
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addEnemyTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
}

// addTransform offsets the prefab's local transform by the spawn placement.
func addTransform(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	pos := common.V3(spec.X, spec.Y, spec.Z).Add(ctx.Position)
	return SetEntityTransform(w, e, pos, spec.Yaw+ctx.Yaw)
}

func addCharacter(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CharacterComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode character spec: %w", err)
	}
	name := spec.Name
	if name == "" {
		name = ctx.PrefabPath
	}
	return ecs.Add(w, e, component.CharacterComponent.Kind(), rpg.NewCharacter(name, rpg.CharacterStats{AoEModifier: spec.AoEModifier}))
}

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.HealthComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Max <= 0 {
		return fmt.Errorf("health max must be positive, got %v", spec.Max)
	}
	h := rpg.NewHealth(spec.Max)
	if spec.Current != nil {
		h.Current = common.Clamp(*spec.Current, 0, spec.Max)
		h.Dead = h.Current <= 0
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), h)
}

func addEnergy(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EnergyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode energy spec: %w", err)
	}
	if spec.Max <= 0 {
		return fmt.Errorf("energy max must be positive, got %v", spec.Max)
	}
	energy := rpg.NewEnergy(spec.Max, spec.Regen)
	if spec.Current != nil {
		energy.Current = common.Clamp(*spec.Current, 0, spec.Max)
	}
	return ecs.Add(w, e, component.EnergyComponent.Kind(), energy)
}

func addLocomotion(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.LocomotionComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode locomotion spec: %w", err)
	}
	s := rpg.DefaultLocomotionSettings()
	override := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	override(&s.MoveThreshold, spec.MoveThreshold)
	override(&s.StationaryTurnSpeed, spec.StationaryTurnSpeed)
	override(&s.MovingTurnSpeed, spec.MovingTurnSpeed)
	override(&s.MoveSpeedMultiplier, spec.MoveSpeedMultiplier)
	override(&s.AnimatorSpeedMultiplier, spec.AnimatorSpeedMultiplier)
	override(&s.AnimatorDampTime, spec.AnimatorDampTime)
	return ecs.Add(w, e, component.LocomotorComponent.Kind(), rpg.NewLocomotor(s))
}

// DefaultStoppingDistance is the agent stopping distance when a prefab
// leaves it unset.
const DefaultStoppingDistance = 1.3

func addAgent(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AgentComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode agent spec: %w", err)
	}
	stopping := DefaultStoppingDistance
	if spec.StoppingDistance != nil {
		stopping = *spec.StoppingDistance
	}
	if spec.Speed <= 0 {
		spec.Speed = 1
	}
	agent := rpg.NewAgent(spec.Speed, stopping)
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok && t != nil {
		agent.Warp(t.Position())
	}
	return ecs.Add(w, e, component.AgentComponent.Kind(), agent)
}

func addAnimator(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AnimatorComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animator spec: %w", err)
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Animator: rpg.NewAnimator(spec.ForwardSpeed, spec.TurnSpeed),
	})
}

// addPhysicsBody only records the collider; PhysicsSystem creates the
// Chipmunk body on its next update.
func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PhysicsBodyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Radius < 0 || spec.Mass < 0 {
		return fmt.Errorf("physics body radius and mass must not be negative")
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: spec.Radius, Mass: spec.Mass})
}

func addWeapon(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.WeaponComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode weapon spec: %w", err)
	}
	var start *rpg.WeaponConfig
	if spec.Start != "" {
		if ctx.Library == nil {
			return ErrNoLibrary
		}
		cfg, ok := ctx.Library.Weapon(spec.Start)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownWeapon, spec.Start)
		}
		start = cfg
	}
	return ecs.Add(w, e, component.WeaponComponent.Kind(), rpg.NewWeaponSystem(start))
}

func addAbilities(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AbilitiesComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode abilities spec: %w", err)
	}
	abilities := &component.Abilities{Slots: rpg.NewAbilitySlots(), Names: map[int]string{}}
	if len(spec.Slots) > 0 && ctx.Library == nil {
		return ErrNoLibrary
	}
	for slot, name := range spec.Slots {
		cfg, ok := ctx.Library.Ability(name)
		if !ok {
			return fmt.Errorf("%w: %q in slot %d", ErrUnknownAbility, name, slot)
		}
		if _, err := cfg.AttachAbilityTo(abilities, slot); err != nil {
			return fmt.Errorf("attach %q to slot %d: %w", name, slot, err)
		}
		abilities.Names[slot] = name
	}
	applyStats(w, e, abilities)
	return ecs.Add(w, e, component.AbilitiesComponent.Kind(), abilities)
}

func applyStats(w *ecs.World, e ecs.Entity, abilities *component.Abilities) {
	if c, ok := ecs.Get(w, e, component.CharacterComponent.Kind()); ok && c != nil {
		rpg.ApplyAoEModifier(abilities.Slots, c.Stats)
	}
}

func addWeaponPickup(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.WeaponPickupComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode weapon pickup spec: %w", err)
	}
	if spec.Weapon == "" {
		return fmt.Errorf("weapon pickup names no weapon")
	}
	if ctx.Library != nil {
		if _, ok := ctx.Library.Weapon(spec.Weapon); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownWeapon, spec.Weapon)
		}
	}
	return ecs.Add(w, e, component.WeaponPickupComponent.Kind(), &component.WeaponPickup{
		Weapon: spec.Weapon,
		Sound:  spec.Sound,
		Radius: spec.Radius,
	})
}

func addChase(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ChaseComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode chase spec: %w", err)
	}
	slot := -1
	if spec.AbilitySlot != nil {
		slot = *spec.AbilitySlot
	}
	return ecs.Add(w, e, component.ChaseComponent.Kind(), &component.Chase{AggroRange: spec.AggroRange, AbilitySlot: slot})
}
