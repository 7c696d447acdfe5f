package system

import (
	rpg "github.com/milk9111/actionrpg/component"
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/component"
)

var characterKind = component.CharacterComponent.Kind()

// EnergySystem regenerates every energy pool.
type EnergySystem struct{}

func NewEnergySystem() *EnergySystem { return &EnergySystem{} }

func (s *EnergySystem) Update(w *ecs.World, dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	ecs.ForEach(w, component.EnergyComponent.Kind(), func(_ ecs.Entity, energy *rpg.Energy) {
		if energy == nil {
			return
		}
		energy.Regen(dt)
	})
}
