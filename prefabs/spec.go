package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/actionrpg/logging"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoArena     = errors.New("prefabs: arena must have positive width and depth")
	ErrBadTickRate = errors.New("prefabs: tick rate must be positive")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec is the top-level game.yaml.
type GameSpec struct {
	TickRate  int    `yaml:"tick_rate"`
	Seed      uint64 `yaml:"seed"`
	HotReload bool   `yaml:"hot_reload"`
	// CorpseSeconds is how long dead NPCs stay in the arena; zero keeps them.
	CorpseSeconds float64        `yaml:"corpse_seconds"`
	Arena         ArenaSpec      `yaml:"arena"`
	Logging       logging.Config `yaml:"logging"`
	Spawns        []SpawnSpec    `yaml:"spawns"`
}

type ArenaSpec struct {
	Width float64 `yaml:"width"`
	Depth float64 `yaml:"depth"`
}

// SpawnSpec places one entity prefab in the arena.
type SpawnSpec struct {
	Prefab string  `yaml:"prefab"`
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Yaw    float64 `yaml:"yaw"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if spec.TickRate == 0 {
		spec.TickRate = 60
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (g *GameSpec) Validate() error {
	if g.TickRate <= 0 {
		return ErrBadTickRate
	}
	if g.Arena.Width <= 0 || g.Arena.Depth <= 0 {
		return ErrNoArena
	}
	return nil
}

// TickSeconds is the fixed simulation step.
func (g *GameSpec) TickSeconds() float64 {
	if g == nil || g.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(g.TickRate)
}
