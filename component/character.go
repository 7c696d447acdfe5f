package component

// CharacterStats carries per-character modifiers applied to abilities.
type CharacterStats struct {
	AoEModifier float64
}

// Character owns the aliveness flag read by locomotion.
type Character struct {
	Name  string
	Stats CharacterStats

	dead bool
}

func NewCharacter(name string, stats CharacterStats) *Character {
	if stats.AoEModifier <= 0 {
		stats.AoEModifier = 1
	}
	return &Character{Name: name, Stats: stats}
}

// Kill marks the character dead. Locomotion stops on the next tick.
func (c *Character) Kill() {
	if c == nil {
		return
	}
	c.dead = true
}

func (c *Character) SetAlive(alive bool) {
	if c == nil {
		return
	}
	c.dead = !alive
}

func (c *Character) IsAlive() bool {
	return c != nil && !c.dead
}
