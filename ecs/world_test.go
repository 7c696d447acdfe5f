package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/actionrpg/common"
	"github.com/milk9111/actionrpg/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("double destroy should return false")
				}
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	v := 7
	if err := Add(w, old, h.Kind(), &v); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh == old {
		t.Fatalf("recycled entity should differ from the stale handle")
	}
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("recycled entity inherited a component")
	}
	if err := Add(w, old, h.Kind(), &v); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("add to stale entity: %v", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if got := w.Query(h2.Kind()); len(got) != 2 {
					t.Fatalf("query returned %d entities", len(got))
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}

	if err := Add[int](w, e1, h1.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("nil component: %v", err)
	}
}

func TestForEach2SkipsPartialMatches(t *testing.T) {
	w := NewWorld()
	hi := component.NewComponent[int]()
	hs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	_ = Add(w, e1, hi.Kind(), intPtr(1))
	_ = Add(w, e1, hs.Kind(), stringPtr("one"))
	_ = Add(w, e2, hi.Kind(), intPtr(2))

	var seen []Entity
	ForEach2(w, hi.Kind(), hs.Kind(), func(e Entity, _ *int, _ *string) { seen = append(seen, e) })
	if len(seen) != 1 || seen[0] != e1 {
		t.Fatalf("expected only e1, got %v", seen)
	}
}

func TestForEachToleratesDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 4; i++ {
		_ = Add(w, CreateEntity(w), h.Kind(), intPtr(i))
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		visited++
		if *v%2 == 0 {
			DestroyEntity(w, e)
		}
	})
	if visited != 4 {
		t.Fatalf("visited %d entities", visited)
	}
	if n := len(w.Query(h.Kind())); n != 2 {
		t.Fatalf("expected 2 survivors, got %d", n)
	}
}

func TestUpdatePublishesEvents(t *testing.T) {
	w := NewWorld()
	var gotDT float64
	w.AddSystem(SystemFunc(func(w *World, dt float64) {
		gotDT = dt
		w.Events().Push(Event{Type: EventAbilityUsed})
	}))

	w.Update(0.25)
	if gotDT != 0.25 || w.Elapsed() != 0.25 || w.Tick() != 1 {
		t.Fatalf("dt=%v elapsed=%v tick=%v", gotDT, w.Elapsed(), w.Tick())
	}
	if len(w.Published()) != 1 || w.Events().Len() != 0 {
		t.Fatalf("events not published: %v", w.Published())
	}
}

func TestPhysicsWorldTriggersOnce(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld(20, 20)
	w.SetPhysicsWorld(pw)

	hero := CreateEntity(w)
	pickup := CreateEntity(w)
	body := pw.AddCharacter(hero, common.V3(2, 0, 5), 0.3, 1)
	pw.AddSensor(pickup, common.V3(6, 0, 5), 0.5)

	body.SetVelocity(common.V3(4, -1, 0))
	var triggers []TriggerEnter
	for i := 0; i < 120; i++ {
		pw.Step(1.0 / 60)
		triggers = append(triggers, pw.DrainTriggers()...)
	}
	if len(triggers) != 1 {
		t.Fatalf("expected one trigger enter, got %d", len(triggers))
	}
	if triggers[0].Sensor != pickup || triggers[0].Other != hero {
		t.Fatalf("trigger = %+v", triggers[0])
	}
	if body.Velocity().Y != -1 {
		t.Fatalf("vertical velocity not preserved: %v", body.Velocity())
	}

	DestroyEntity(w, pickup)
	if _, ok := pw.sensors[pickup]; ok {
		t.Fatalf("sensor should be removed with its entity")
	}
}

func TestZeroHandlesRejected(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	if !e.Valid() || Entity(0).Valid() {
		t.Fatalf("valid: created=%v zero=%v", e.Valid(), Entity(0).Valid())
	}
	var zero component.ComponentKind[int]
	if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("zero kind: %v", err)
	}
}
