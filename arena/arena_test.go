package arena

import (
	"testing"

	"github.com/milk9111/actionrpg/common"
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/system"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestArenaPlayerWalksToPickup(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	a, err := Load(zap.New(core))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !a.MovePlayerTo(common.V3(12, 0, 8)) {
		t.Fatalf("player has no agent")
	}
	equipped := false
	for i := 0; i < 5*a.Game.TickRate && !equipped; i++ {
		for _, evt := range a.Step() {
			if evt.Type == ecs.EventWeaponEquipped {
				equipped = true
			}
		}
	}
	if !equipped {
		t.Fatalf("player never reached the axe pickup")
	}

	var player Actor
	pickups := 0
	for _, actor := range a.Snapshot() {
		if actor.Player {
			player = actor
		}
		if actor.Pickup {
			pickups++
		}
	}
	if player.Weapon != "axe" {
		t.Fatalf("player weapon = %q", player.Weapon)
	}
	if pickups != 0 {
		t.Fatalf("pickup should be gone, found %d", pickups)
	}
	if logs.FilterMessage("weapon picked up").Len() != 1 {
		t.Fatalf("pickup not logged")
	}
}

func TestArenaUseAbility(t *testing.T) {
	a, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	slots := a.AbilitySlots()
	if len(slots) != 4 {
		t.Fatalf("slots = %+v", slots)
	}

	if !a.UseAbility(3) {
		t.Fatalf("request rejected")
	}
	var used *system.AbilityUsed
	for _, evt := range a.Step() {
		if d, ok := evt.Data.(system.AbilityUsed); ok {
			used = &d
		}
	}
	if used == nil || used.Ability != "rally" {
		t.Fatalf("rally not used: %+v", used)
	}
	if EventText(ecs.Event{Type: ecs.EventAbilityUsed, Data: *used}) == "" {
		t.Fatalf("no HUD text for ability use")
	}

	a.UseAbility(42)
	failed := false
	for _, evt := range a.Step() {
		if evt.Type == ecs.EventAbilityFailed {
			failed = true
		}
	}
	if !failed {
		t.Fatalf("empty slot should fail")
	}
}

func TestArenaReloadIgnoresEntityPrefabs(t *testing.T) {
	a, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	before := a.Library()
	if err := a.Reload("prefabs/player.yaml"); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if a.Library() != before {
		t.Fatalf("entity prefab change should not rebuild the library")
	}
	if err := a.Reload("prefabs/weapons.yaml"); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if a.Library() == before {
		t.Fatalf("library not rebuilt")
	}
}
