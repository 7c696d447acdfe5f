package component

// Chase makes an NPC pursue the player, stop at weapon reach and attack.
type Chase struct {
	AggroRange float64
	// AbilitySlot is used when the target is in range and energy allows; -1
	// disables abilities.
	AbilitySlot int
	Target      uint64
}

var ChaseComponent = NewComponent[Chase]()
