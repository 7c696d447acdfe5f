package component

import rpg "github.com/milk9111/actionrpg/component"

// Abilities holds the special abilities attached to a character, one per slot.
type Abilities struct {
	Slots *rpg.AbilitySlots
	// Names records the config name attached to each slot, so a hot reload
	// can re-attach from the refreshed library.
	Names map[int]string
}

func (a *Abilities) Abilities() *rpg.AbilitySlots {
	if a == nil {
		return nil
	}
	return a.Slots
}

var AbilitiesComponent = NewComponent[Abilities]()

// AbilityRequest asks the ability system to use a slot this tick.
type AbilityRequest struct {
	Slot   int
	Target uint64 // ecs.Entity; 0 targets nothing
}

var AbilityRequestComponent = NewComponent[AbilityRequest]()
