package system

import (
	"math"

	rpg "github.com/milk9111/actionrpg/component"
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/component"
	"go.uber.org/zap"
)

// ChaseSystem steers NPCs toward the player. The destination is pulled back
// by the weapon's reach so the NPC stops where it can strike; once the player
// is in range the NPC swings its weapon and, when energy allows, requests its
// ability.
type ChaseSystem struct {
	log *zap.Logger
}

func NewChaseSystem(log *zap.Logger) *ChaseSystem {
	return &ChaseSystem{log: loggerOrNop(log)}
}

func (s *ChaseSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	playerT, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok || playerT == nil {
		return
	}
	playerHealth, _ := ecs.Get(w, player, component.HealthComponent.Kind())
	playerAlive := isAlive(w, player)
	target := playerT.Position()

	ecs.ForEach3(w, component.ChaseComponent.Kind(), component.AgentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, chase *component.Chase, agent *rpg.Agent, t *component.Transform) {
		if chase == nil || agent == nil || t == nil || e == player {
			return
		}
		pos := t.Position()
		if !isAlive(w, e) || !playerAlive || pos.Flat().Distance(target.Flat()) > chase.AggroRange {
			if chase.Target != 0 {
				s.log.Debug("chase lost target", entityField(e))
			}
			chase.Target = 0
			agent.ClearDestination()
			return
		}
		if chase.Target == 0 {
			s.log.Debug("chase acquired target", entityField(e), zap.Stringer("target", player))
		}
		chase.Target = uint64(player)

		weapons, _ := ecs.Get(w, e, component.WeaponComponent.Kind())
		reach := 0.0
		if cfg := weapons.CurrentWeaponConfig(); cfg != nil {
			reach = cfg.MaxAttackRange
		}
		agent.SetDestination(rpg.ShortenDestination(pos, target, math.Max(0, reach-agent.StoppingDistance())))

		if weapons == nil || !rpg.IsTargetInRange(pos, target, weapons) {
			return
		}
		if playerHealth != nil && weapons.Attack(playerHealth, w.Elapsed()) {
			cfg := weapons.CurrentWeaponConfig()
			if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok && anim != nil {
				anim.Trigger = cfg.AttackAnimation
			}
			w.Events().Push(ecs.Event{Type: ecs.EventWeaponHit, Data: WeaponHit{
				Attacker: e,
				Target:   player,
				Weapon:   cfg.Name,
				Damage:   cfg.Damage,
			}})
			s.log.Debug("weapon hit", entityField(e), zap.String("weapon", cfg.Name), zap.Float64("damage", cfg.Damage))
		}
		s.requestAbility(w, e, chase)
	})
}

func (s *ChaseSystem) requestAbility(w *ecs.World, e ecs.Entity, chase *component.Chase) {
	if chase.AbilitySlot < 0 || ecs.Has(w, e, component.AbilityRequestComponent.Kind()) {
		return
	}
	abilities, ok := ecs.Get(w, e, component.AbilitiesComponent.Kind())
	if !ok || abilities.Abilities() == nil {
		return
	}
	b, ok := abilities.Slots.Get(chase.AbilitySlot)
	if !ok {
		return
	}
	energy, ok := ecs.Get(w, e, component.EnergyComponent.Kind())
	if !ok || energy == nil || !energy.Has(b.Config().EnergyCost) {
		return
	}
	_ = ecs.Add(w, e, component.AbilityRequestComponent.Kind(), &component.AbilityRequest{Slot: chase.AbilitySlot, Target: chase.Target})
}
