package arena

import (
	"fmt"

	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/system"
	"go.uber.org/zap"
)

// EventText renders an event as a one-line message for HUDs. Trigger
// contacts return "".
func EventText(evt ecs.Event) string {
	switch d := evt.Data.(type) {
	case system.WeaponEquipped:
		return fmt.Sprintf("%v picked up %s", d.Entity, d.Weapon)
	case system.AbilityUsed:
		if d.Result.Hit {
			return fmt.Sprintf("%v used %s for %.0f damage", d.Caster, d.Ability, d.Result.Damage)
		}
		return fmt.Sprintf("%v used %s", d.Caster, d.Ability)
	case system.AbilityFailed:
		return fmt.Sprintf("%v ability %d failed: %v", d.Caster, d.Slot, d.Err)
	case system.WeaponHit:
		return fmt.Sprintf("%v hit %v with %s for %.0f", d.Attacker, d.Target, d.Weapon, d.Damage)
	case system.CharacterDied:
		return fmt.Sprintf("%s died", d.Name)
	}
	return ""
}

// LogEvent writes evt as a structured log entry.
func LogEvent(log *zap.Logger, tick uint64, evt ecs.Event) {
	if log == nil {
		return
	}
	fields := []zap.Field{zap.Uint64("tick", tick), zap.String("type", evt.Type)}
	switch d := evt.Data.(type) {
	case ecs.TriggerEnter:
		log.Debug("event", append(fields, zap.Stringer("sensor", d.Sensor), zap.Stringer("other", d.Other))...)
		return
	case system.WeaponEquipped:
		fields = append(fields, zap.Stringer("entity", d.Entity), zap.String("weapon", d.Weapon), zap.String("sound", d.Sound))
	case system.AbilityUsed:
		fields = append(fields,
			zap.Stringer("caster", d.Caster),
			zap.String("ability", d.Ability),
			zap.String("clip", d.Clip),
			zap.Float64("damage", d.Result.Damage),
			zap.Float64("healed", d.Result.Healed),
		)
	case system.AbilityFailed:
		fields = append(fields, zap.Stringer("caster", d.Caster), zap.Int("slot", d.Slot), zap.Error(d.Err))
	case system.WeaponHit:
		fields = append(fields, zap.Stringer("attacker", d.Attacker), zap.Stringer("target", d.Target), zap.Float64("damage", d.Damage))
	case system.CharacterDied:
		fields = append(fields, zap.Stringer("entity", d.Entity), zap.String("name", d.Name))
	}
	log.Info("event", fields...)
}
