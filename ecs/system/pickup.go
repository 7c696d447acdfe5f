package system

import (
	rpg "github.com/milk9111/actionrpg/component"
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/component"
	"go.uber.org/zap"
)

// WeaponCatalog resolves weapon names to shared configs.
type WeaponCatalog interface {
	Weapon(name string) (*rpg.WeaponConfig, bool)
}

// PickupSystem equips the weapon of a pickup point when a player enters its
// sensor, reports the pickup sound and destroys the pickup. Each pickup fires
// once.
type PickupSystem struct {
	weapons WeaponCatalog
	log     *zap.Logger
}

func NewPickupSystem(weapons WeaponCatalog, log *zap.Logger) *PickupSystem {
	return &PickupSystem{weapons: weapons, log: loggerOrNop(log)}
}

// SetCatalog swaps the weapon catalog, e.g. after a prefab reload.
func (s *PickupSystem) SetCatalog(weapons WeaponCatalog) {
	s.weapons = weapons
}

func (s *PickupSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	var consumed []ecs.Entity
	w.Events().Each(ecs.EventTriggerEnter, func(evt ecs.Event) {
		trig, ok := evt.Data.(ecs.TriggerEnter)
		if !ok {
			return
		}
		pickup, ok := ecs.Get(w, trig.Sensor, component.WeaponPickupComponent.Kind())
		if !ok || pickup == nil || pickup.Consumed {
			return
		}
		if !ecs.Has(w, trig.Other, component.PlayerTagComponent.Kind()) {
			return
		}
		weapons, ok := ecs.Get(w, trig.Other, component.WeaponComponent.Kind())
		if !ok || weapons == nil {
			return
		}
		if s.weapons == nil {
			s.log.Warn("weapon pickup without catalog", entityField(trig.Sensor))
			return
		}
		cfg, ok := s.weapons.Weapon(pickup.Weapon)
		if !ok {
			s.log.Warn("unknown pickup weapon", entityField(trig.Sensor), zap.String("weapon", pickup.Weapon))
			return
		}

		weapons.PutWeaponInHand(cfg)
		pickup.Consumed = true
		consumed = append(consumed, trig.Sensor)

		w.Events().Push(ecs.Event{Type: ecs.EventWeaponEquipped, Data: WeaponEquipped{
			Entity: trig.Other,
			Pickup: trig.Sensor,
			Weapon: cfg.Name,
			Sound:  pickup.Sound,
		}})
		s.log.Info("weapon picked up",
			entityField(trig.Other),
			zap.String("weapon", cfg.Name),
			zap.String("sound", pickup.Sound),
		)
	})

	for _, e := range consumed {
		ecs.DestroyEntity(w, e)
	}
}
