package ecs

import (
	"fmt"

	"github.com/milk9111/actionrpg/ecs/component"
)

// World owns entities, component storage, system order and the event queue.
type World struct {
	entities   entityStore
	components map[component.ComponentID]*SparseSet
	scheduler  *Scheduler
	events     EventQueue
	published  []Event

	physicsWorld *PhysicsWorld
	elapsed      float64
	tick         uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		components: map[component.ComponentID]*SparseSet{},
		scheduler:  NewScheduler(),
	}
}

func (w *World) storage(id component.ComponentID, create bool) *SparseSet {
	if w.components == nil {
		w.components = map[component.ComponentID]*SparseSet{}
	}
	s, ok := w.components[id]
	if !ok && create {
		s = &SparseSet{}
		w.components[id] = s
	}
	return s
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	if w.scheduler == nil {
		w.scheduler = NewScheduler()
	}
	w.scheduler.Add(s)
}

// Update runs all systems once with dt seconds, then publishes the tick's
// events and clears the queue.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	if w.scheduler != nil {
		w.scheduler.Update(w, dt)
	}
	if dt > 0 {
		w.elapsed += dt
	}
	w.tick++
	w.published = w.events.Drain()
}

// Events returns the queue systems push to during a tick.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Published returns the events raised during the last Update.
func (w *World) Published() []Event {
	if w == nil {
		return nil
	}
	return w.published
}

// Elapsed is simulated time in seconds.
func (w *World) Elapsed() float64 {
	if w == nil {
		return 0
	}
	return w.elapsed
}

func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

// Query returns entities that have every given component kind.
func (w *World) Query(kinds ...component.KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.storage(k.ID(), false)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	return IntersectEntities(sets...)
}

func (w *World) addComponent(e Entity, id component.ComponentID, v any) error {
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	w.storage(id, true).Set(e, v)
	return nil
}

func (w *World) removeAll(e Entity) {
	for _, s := range w.components {
		s.Remove(e)
	}
}
