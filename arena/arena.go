package arena

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/milk9111/actionrpg/common"
	rpg "github.com/milk9111/actionrpg/component"
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/component"
	"github.com/milk9111/actionrpg/ecs/entity"
	"github.com/milk9111/actionrpg/ecs/system"
	"github.com/milk9111/actionrpg/prefabs"
	"go.uber.org/zap"
)

// Arena is a running simulation: the world, its systems and the shared
// configs it was spawned from. Hosts drive it with Step and feed input
// through MovePlayerTo and UseAbility.
type Arena struct {
	World *ecs.World
	Game  *prefabs.GameSpec

	lib      *prefabs.Library
	pipeline *system.Pipeline
	log      *zap.Logger
}

// Load reads game.yaml and the ability/weapon library and builds an arena.
func Load(log *zap.Logger) (*Arena, error) {
	game, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	lib, err := prefabs.LoadLibrary()
	if err != nil {
		return nil, err
	}
	return New(game, lib, log)
}

func New(game *prefabs.GameSpec, lib *prefabs.Library, log *zap.Logger) (*Arena, error) {
	if game == nil {
		return nil, fmt.Errorf("arena: game spec is nil")
	}
	if err := game.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(game.Arena.Width, game.Arena.Depth))
	pipeline := system.Install(w, system.Options{
		Weapons: lib,
		Rand:    rand.New(rand.NewPCG(game.Seed, game.Seed^0x9e3779b97f4a7c15)),
		Logger:  log,

		CorpseSeconds: game.CorpseSeconds,
	})

	if _, err := entity.SpawnAll(w, game, lib, log.Named("spawn")); err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}

	return &Arena{World: w, Game: game, lib: lib, pipeline: pipeline, log: log}, nil
}

// Step advances the simulation by one fixed tick and returns the events it
// raised.
func (a *Arena) Step() []ecs.Event {
	a.World.Update(a.Game.TickSeconds())
	return a.World.Published()
}

func (a *Arena) Library() *prefabs.Library {
	return a.lib
}

func (a *Arena) Player() (ecs.Entity, bool) {
	return ecs.First(a.World, component.PlayerTagComponent.Kind())
}

// MovePlayerTo sets the player's navigation destination on the ground plane.
func (a *Arena) MovePlayerTo(p common.Vec3) bool {
	player, ok := a.Player()
	if !ok {
		return false
	}
	agent, ok := ecs.Get(a.World, player, component.AgentComponent.Kind())
	if !ok || agent == nil {
		return false
	}
	p.Y = 0
	p.X = common.Clamp(p.X, 0, a.Game.Arena.Width)
	p.Z = common.Clamp(p.Z, 0, a.Game.Arena.Depth)
	agent.SetDestination(p)
	return true
}

// UseAbility queues the player's ability in slot, aimed at the nearest
// living enemy. The result arrives as an event on the next Step.
func (a *Arena) UseAbility(slot int) bool {
	player, ok := a.Player()
	if !ok {
		return false
	}
	req := &component.AbilityRequest{Slot: slot}
	if target, ok := a.NearestEnemy(); ok {
		req.Target = uint64(target)
	}
	return ecs.Add(a.World, player, component.AbilityRequestComponent.Kind(), req) == nil
}

// NearestEnemy returns the living enemy closest to the player.
func (a *Arena) NearestEnemy() (ecs.Entity, bool) {
	player, ok := a.Player()
	if !ok {
		return 0, false
	}
	pt, ok := ecs.Get(a.World, player, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}
	var best ecs.Entity
	bestDist := -1.0
	ecs.ForEach2(a.World, component.EnemyTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.EnemyTag, t *component.Transform) {
		if c, ok := ecs.Get(a.World, e, component.CharacterComponent.Kind()); ok && !c.IsAlive() {
			return
		}
		d := t.Position().Distance(pt.Position())
		if bestDist < 0 || d < bestDist {
			best, bestDist = e, d
		}
	})
	return best, bestDist >= 0
}

// Reload applies a changed prefab file. Library files and scripts rebuild
// the ability/weapon library and rebind every character to it; other files
// only affect future spawns.
func (a *Arena) Reload(path string) error {
	if !prefabs.AffectsLibrary(path) {
		a.log.Info("prefab changed; applies to new spawns", zap.String("file", path))
		return nil
	}
	lib, err := prefabs.LoadLibrary()
	if err != nil {
		return fmt.Errorf("arena: reload %s: %w", path, err)
	}
	n, err := entity.Rebind(a.World, lib)
	a.lib = lib
	a.pipeline.Pickup.SetCatalog(lib)
	a.log.Info("library reloaded", zap.String("file", path), zap.Int("rebound", n))
	if err != nil {
		return fmt.Errorf("arena: reload %s: %w", path, err)
	}
	return nil
}

// Actor is a read-only view of one entity for drawing.
type Actor struct {
	Entity    ecs.Entity
	Name      string
	Position  common.Vec3
	Yaw       float64
	Radius    float64
	Player    bool
	Enemy     bool
	Pickup    bool
	Alive     bool
	HP        float64
	MaxHP     float64
	Energy    float64
	MaxEnergy float64
	Weapon    string
	Moving    bool
	Forward   float64
	Turn      float64
}

// Snapshot lists every entity with a transform, ordered by entity.
func (a *Arena) Snapshot() []Actor {
	w := a.World
	var out []Actor
	ecs.ForEach(w, component.TransformComponent.Kind(), func(e ecs.Entity, t *component.Transform) {
		actor := Actor{
			Entity:   e,
			Position: t.Position(),
			Yaw:      t.Yaw(),
			Alive:    true,
			Player:   ecs.Has(w, e, component.PlayerTagComponent.Kind()),
			Enemy:    ecs.Has(w, e, component.EnemyTagComponent.Kind()),
		}
		if c, ok := ecs.Get(w, e, component.CharacterComponent.Kind()); ok {
			actor.Name = c.Name
			actor.Alive = c.IsAlive()
		}
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			actor.HP, actor.MaxHP = h.CurrentHP(), h.MaxHP()
		}
		if en, ok := ecs.Get(w, e, component.EnergyComponent.Kind()); ok {
			actor.Energy, actor.MaxEnergy = en.Current, en.Max
		}
		if ws, ok := ecs.Get(w, e, component.WeaponComponent.Kind()); ok {
			if cfg := ws.CurrentWeaponConfig(); cfg != nil {
				actor.Weapon = cfg.Name
			}
		}
		if b, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			actor.Radius = b.Radius
		}
		if p, ok := ecs.Get(w, e, component.WeaponPickupComponent.Kind()); ok {
			actor.Pickup = true
			actor.Name = p.Weapon
			actor.Radius = p.Radius
		}
		if l, ok := ecs.Get(w, e, component.LocomotorComponent.Kind()); ok {
			actor.Moving = l.State.Moving
			actor.Forward = l.State.Forward
			actor.Turn = l.State.Turn
		}
		out = append(out, actor)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Entity < out[j].Entity })
	return out
}

// AbilitySlots lists the player's slot -> ability name bindings in slot
// order.
func (a *Arena) AbilitySlots() []SlotInfo {
	player, ok := a.Player()
	if !ok {
		return nil
	}
	abilities, ok := ecs.Get(a.World, player, component.AbilitiesComponent.Kind())
	if !ok || abilities.Slots == nil {
		return nil
	}
	var out []SlotInfo
	for _, slot := range abilities.Slots.Slots() {
		b, _ := abilities.Slots.Get(slot)
		out = append(out, SlotInfo{Slot: slot, Name: b.Config().Name, Cost: b.Config().GetEnergyCost(), Kind: b.Config().Kind})
	}
	return out
}

type SlotInfo struct {
	Slot int
	Name string
	Cost float64
	Kind rpg.AbilityKind
}
