package entity

import (
	"errors"
	"fmt"

	rpg "github.com/milk9111/actionrpg/component"
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/component"
	"github.com/milk9111/actionrpg/prefabs"
)

// Rebind points every live character at the configs of a freshly loaded
// library: abilities are re-attached by name and held weapons take the new config
// without resetting their hit cooldown.
// Names missing from the new library are detached or left as they were and
// reported in the returned error.
func Rebind(w *ecs.World, lib *prefabs.Library) (int, error) {
	if w == nil {
		return 0, nil
	}
	if lib == nil {
		return 0, ErrNoLibrary
	}

	var errs []error
	n := 0
	ecs.ForEach(w, component.AbilitiesComponent.Kind(), func(e ecs.Entity, abilities *component.Abilities) {
		if abilities == nil || abilities.Slots == nil {
			return
		}
		for slot, name := range abilities.Names {
			cfg, ok := lib.Ability(name)
			if !ok {
				abilities.Slots.Detach(slot)
				delete(abilities.Names, slot)
				errs = append(errs, fmt.Errorf("entity %v: %w: %q", e, ErrUnknownAbility, name))
				continue
			}
			if _, err := cfg.AttachAbilityTo(abilities, slot); err != nil {
				errs = append(errs, fmt.Errorf("entity %v: slot %d: %w", e, slot, err))
				continue
			}
			n++
		}
		applyStats(w, e, abilities)
	})

	ecs.ForEach(w, component.WeaponComponent.Kind(), func(e ecs.Entity, ws *rpg.WeaponSystem) {
		cur := ws.CurrentWeaponConfig()
		if cur == nil {
			return
		}
		cfg, ok := lib.Weapon(cur.Name)
		if !ok {
			errs = append(errs, fmt.Errorf("entity %v: %w: %q", e, ErrUnknownWeapon, cur.Name))
			return
		}
		ws.ReloadConfig(cfg)
		n++
	})

	return n, errors.Join(errs...)
}
