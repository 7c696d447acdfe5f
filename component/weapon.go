package component

import "github.com/milk9111/actionrpg/common"

// WeaponConfig is shared, read-only weapon design data.
type WeaponConfig struct {
	Name            string
	MaxAttackRange  float64
	Damage          float64
	TimeBetweenHits float64
	Prefab          string
	AttackAnimation string
}

// WeaponSystem holds the weapon currently in a character's hand.
type WeaponSystem struct {
	current *WeaponConfig
	lastHit float64
	hasHit  bool
}

func NewWeaponSystem(start *WeaponConfig) *WeaponSystem {
	return &WeaponSystem{current: start}
}

// PutWeaponInHand equips cfg, replacing any current weapon, and resets the
// hit timer.
func (ws *WeaponSystem) PutWeaponInHand(cfg *WeaponConfig) {
	if ws == nil {
		return
	}
	ws.current = cfg
	ws.hasHit = false
}

// ReloadConfig swaps in a reloaded config for the held weapon. The hit
// timer keeps running.
func (ws *WeaponSystem) ReloadConfig(cfg *WeaponConfig) {
	if ws == nil || cfg == nil {
		return
	}
	ws.current = cfg
}

func (ws *WeaponSystem) CurrentWeaponConfig() *WeaponConfig {
	if ws == nil {
		return nil
	}
	return ws.current
}

// CanHit reports whether the weapon is off cooldown at time now (seconds).
func (ws *WeaponSystem) CanHit(now float64) bool {
	if ws == nil || ws.current == nil {
		return false
	}
	return !ws.hasHit || now-ws.lastHit >= ws.current.TimeBetweenHits
}

// Attack damages target when the weapon is off cooldown. Returns true if a
// hit landed.
func (ws *WeaponSystem) Attack(target HealthComponent, now float64) bool {
	if !ws.CanHit(now) || target == nil || !target.IsAlive() {
		return false
	}
	ws.lastHit = now
	ws.hasHit = true
	return target.ApplyDamage(ws.current.Damage)
}

// IsTargetInRange reports whether b is within the attacker's current weapon
// reach from a. Without a weapon nothing is in range.
func IsTargetInRange(a, b common.Vec3, weapons WeaponProvider) bool {
	if weapons == nil {
		return false
	}
	cfg := weapons.CurrentWeaponConfig()
	if cfg == nil {
		return false
	}
	return b.Sub(a).Length() <= cfg.MaxAttackRange
}
