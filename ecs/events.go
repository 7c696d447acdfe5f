package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventTriggerEnter   = "trigger_enter"
	EventWeaponEquipped = "weapon_equipped"
	EventAbilityUsed    = "ability_used"
	EventAbilityFailed  = "ability_failed"
	EventCharacterDied  = "character_died"
	EventWeaponHit      = "weapon_hit"
)

// TriggerEnter is emitted when a body first overlaps a sensor.
type TriggerEnter struct {
	Sensor Entity
	Other  Entity
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Each calls fn for queued events of the given type without consuming them.
func (q *EventQueue) Each(typ string, fn func(Event)) {
	if q == nil {
		return
	}
	for i := 0; i < len(q.items); i++ {
		if q.items[i].Type == typ {
			fn(q.items[i])
		}
	}
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
