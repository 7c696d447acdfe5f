package system

import (
	rpg "github.com/milk9111/actionrpg/component"
	"github.com/milk9111/actionrpg/ecs"
	"go.uber.org/zap"
)

// WeaponEquipped is the payload of ecs.EventWeaponEquipped.
type WeaponEquipped struct {
	Entity ecs.Entity
	Pickup ecs.Entity
	Weapon string
	Sound  string
}

// AbilityUsed is the payload of ecs.EventAbilityUsed.
type AbilityUsed struct {
	Caster  ecs.Entity
	Target  ecs.Entity
	Slot    int
	Ability string
	Clip    string
	Result  rpg.AbilityResult
}

// AbilityFailed is the payload of ecs.EventAbilityFailed.
type AbilityFailed struct {
	Caster ecs.Entity
	Slot   int
	Err    error
}

// WeaponHit is the payload of ecs.EventWeaponHit.
type WeaponHit struct {
	Attacker ecs.Entity
	Target   ecs.Entity
	Weapon   string
	Damage   float64
}

// CharacterDied is the payload of ecs.EventCharacterDied.
type CharacterDied struct {
	Entity ecs.Entity
	Name   string
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func entityField(e ecs.Entity) zap.Field {
	return zap.Stringer("entity", e)
}

// isAlive treats entities without a Character as alive.
func isAlive(w *ecs.World, e ecs.Entity) bool {
	if c, ok := ecs.Get(w, e, characterKind); ok && c != nil {
		return c.IsAlive()
	}
	return true
}
