package entity

import (
	"fmt"

	"github.com/milk9111/actionrpg/common"
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/prefabs"
	"go.uber.org/zap"
)

// SpawnAll builds every spawn in game and returns the created entities in
// spawn order. A failed spawn stops the pass and leaves earlier spawns in
// place.
func SpawnAll(w *ecs.World, game *prefabs.GameSpec, lib *prefabs.Library, log *zap.Logger) ([]ecs.Entity, error) {
	if game == nil {
		return nil, nil
	}
	if log == nil {
		log = zap.NewNop()
	}
	out := make([]ecs.Entity, 0, len(game.Spawns))
	for i, spawn := range game.Spawns {
		e, err := BuildEntity(w, spawn.Prefab, Options{
			Library:  lib,
			Position: common.V3(spawn.X, 0, spawn.Z),
			Yaw:      spawn.Yaw,
		})
		if err != nil {
			return out, fmt.Errorf("spawn %d: %w", i, err)
		}
		log.Debug("spawned", zap.String("prefab", spawn.Prefab), zap.Stringer("entity", e))
		out = append(out, e)
	}
	return out, nil
}
