package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	rpg "github.com/milk9111/actionrpg/component"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestLoadLibrary(t *testing.T) {
	lib, err := LoadLibrary()
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}

	cases := []struct {
		name string
		kind rpg.AbilityKind
		cost float64
	}{
		{"ground_slam", rpg.AbilityAreaEffect, 25},
		{"fire_bolt", rpg.AbilityProjectile, rpg.DefaultEnergyCost},
		{"rally", rpg.AbilityBuff, 0},
		{"life_drain", rpg.AbilityScripted, 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, ok := lib.Ability(c.name)
			if !ok {
				t.Fatalf("ability %q missing; have %v", c.name, lib.AbilityNames())
			}
			if cfg.Kind != c.kind || cfg.EnergyCost != c.cost {
				t.Fatalf("cfg = %+v", cfg)
			}
			if c.kind == rpg.AbilityScripted && cfg.Scripted.Source == "" {
				t.Fatalf("script source not loaded")
			}
		})
	}

	axe, ok := lib.Weapon("axe")
	if !ok || axe.MaxAttackRange != 2 || axe.AttackAnimation != "chop" {
		t.Fatalf("axe = %+v", axe)
	}
	if _, ok := lib.Weapon("spoon"); ok {
		t.Fatalf("unknown weapon resolved")
	}
}

func TestAbilitySpecConfig(t *testing.T) {
	cases := []struct {
		name    string
		spec    AbilitySpec
		wantErr error
	}{
		{"unnamed", AbilitySpec{Kind: "buff"}, ErrUnnamed},
		{"unknown_kind", AbilitySpec{Name: "blink", Kind: "teleport"}, rpg.ErrUnknownAbilityKind},
		{"missing_script", AbilitySpec{Name: "ghost", Kind: "scripted", Script: "scripts/nope.tengo"}, os.ErrNotExist},
		{"negative_cost", AbilitySpec{Name: "debt", Kind: "buff", EnergyCost: floatPtr(-1)}, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.spec.Config()
			if err == nil {
				t.Fatalf("expected error")
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("err = %v, want %v", err, c.wantErr)
			}
		})
	}
}

func TestNewLibraryRejectsDuplicates(t *testing.T) {
	_, err := NewLibrary(AbilitiesSpec{}, WeaponsSpec{Weapons: []WeaponSpec{{Name: "axe"}, {Name: "axe"}}})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("err = %v", err)
	}
}

func TestLibraryScriptRuns(t *testing.T) {
	lib, err := LoadLibrary()
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	cfg, _ := lib.Ability("life_drain")
	slots := rpg.NewAbilitySlots()
	if _, err := cfg.AttachAbilityTo(slots, 0); err != nil {
		t.Fatalf("attach: %v", err)
	}

	caster := &rpg.Health{Max: 100, Current: 50}
	target := rpg.NewHealth(100)
	res, err := slots.Use(0, rpg.AbilityUse{Energy: rpg.NewEnergy(60, 0), CasterHealth: caster, Target: target})
	if err != nil {
		t.Fatalf("use: %v", err)
	}
	if res.Spent != 20 || res.Damage != 20 || target.Current != 80 {
		t.Fatalf("res = %+v target = %v", res, target.Current)
	}
	if caster.Current != 60 {
		t.Fatalf("caster hp = %v, want 60", caster.Current)
	}
}

func TestLoadGameSpec(t *testing.T) {
	game, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	if game.TickRate != 60 || game.TickSeconds() != 1.0/60 {
		t.Fatalf("tick rate = %d", game.TickRate)
	}
	if len(game.Spawns) == 0 {
		t.Fatalf("no spawns")
	}
	for _, spawn := range game.Spawns {
		spec, err := LoadEntityBuildSpec(spawn.Prefab)
		if err != nil {
			t.Fatalf("spawn %s: %v", spawn.Prefab, err)
		}
		if len(spec.Components) == 0 {
			t.Fatalf("spawn %s has no components", spawn.Prefab)
		}
	}
}

func TestGameSpecValidate(t *testing.T) {
	cases := []struct {
		name string
		spec GameSpec
		want error
	}{
		{"ok", GameSpec{TickRate: 30, Arena: ArenaSpec{Width: 1, Depth: 1}}, nil},
		{"no_arena", GameSpec{TickRate: 30}, ErrNoArena},
		{"bad_tick", GameSpec{TickRate: -1, Arena: ArenaSpec{Width: 1, Depth: 1}}, ErrBadTickRate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.spec.Validate(); !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
		})
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	spec, err := LoadEntityBuildSpec("shaman.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	abilities, err := DecodeComponentSpec[AbilitiesComponentSpec](spec.Components["abilities"])
	if err != nil {
		t.Fatalf("decode abilities: %v", err)
	}
	if abilities.Slots[0] != "life_drain" {
		t.Fatalf("slots = %v", abilities.Slots)
	}
	chase, err := DecodeComponentSpec[ChaseComponentSpec](spec.Components["chase"])
	if err != nil || chase.AbilitySlot == nil || *chase.AbilitySlot != 0 || chase.AggroRange != 11 {
		t.Fatalf("chase = %+v err = %v", chase, err)
	}
	empty, err := DecodeComponentSpec[LocomotionComponentSpec](nil)
	if err != nil || empty.MoveThreshold != nil {
		t.Fatalf("nil raw should decode to zero: %+v %v", empty, err)
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	old := DiskRoot
	DiskRoot = dir
	t.Cleanup(func() { DiskRoot = old })

	override := "weapons:\n  - name: twig\n    max_attack_range: 0.5\n"
	if err := os.WriteFile(filepath.Join(dir, WeaponsFile), []byte(override), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	weapons, err := LoadSpec[WeaponsSpec](WeaponsFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(weapons.Weapons) != 1 || weapons.Weapons[0].Name != "twig" {
		t.Fatalf("disk copy not preferred: %+v", weapons)
	}
	if _, ok := ModTime(WeaponsFile); !ok {
		t.Fatalf("mod time of disk copy missing")
	}
	if _, ok := ModTime(AbilitiesFile); ok {
		t.Fatalf("embedded-only file should have no mod time")
	}
}

func TestAffectsLibrary(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"prefabs/abilities.yaml", true},
		{"prefabs/weapons.yaml", true},
		{"prefabs/scripts/drain.tengo", true},
		{"prefabs/player.yaml", false},
		{"prefabs/notes.txt", false},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			if got := AffectsLibrary(c.path); got != c.want {
				t.Fatalf("AffectsLibrary(%q) = %v", c.path, got)
			}
		})
	}
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, "weapons.yaml")
	if err := os.WriteFile(target, []byte("weapons: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("event for %q, want %q", name, target)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("no watcher event")
	}
}
