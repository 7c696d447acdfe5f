package component

import rpg "github.com/milk9111/actionrpg/component"

var CharacterComponent = NewComponent[rpg.Character]()

var LocomotorComponent = NewComponent[rpg.Locomotor]()

var AgentComponent = NewComponent[rpg.Agent]()

var HealthComponent = NewComponent[rpg.Health]()

var EnergyComponent = NewComponent[rpg.Energy]()

var WeaponComponent = NewComponent[rpg.WeaponSystem]()
