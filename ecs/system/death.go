package system

import (
	rpg "github.com/milk9111/actionrpg/component"
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/component"
	"go.uber.org/zap"
)

// DeathSystem kills characters whose health ran out. Dead characters stop
// steering and their locomotion parameters fall back to idle. When
// CorpseSeconds is positive, non-player corpses get a TTL.
type DeathSystem struct {
	CorpseSeconds float64

	log *zap.Logger
}

func NewDeathSystem(log *zap.Logger) *DeathSystem {
	return &DeathSystem{log: loggerOrNop(log)}
}

func (s *DeathSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.HealthComponent.Kind(), component.CharacterComponent.Kind(), func(e ecs.Entity, health *rpg.Health, c *rpg.Character) {
		if health == nil || c == nil || health.IsAlive() || !c.IsAlive() {
			return
		}
		c.Kill()
		if agent, ok := ecs.Get(w, e, component.AgentComponent.Kind()); ok && agent != nil {
			agent.ClearDestination()
		}
		if s.CorpseSeconds > 0 && !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: s.CorpseSeconds})
		}
		w.Events().Push(ecs.Event{Type: ecs.EventCharacterDied, Data: CharacterDied{Entity: e, Name: c.Name}})
		s.log.Info("character died", entityField(e), zap.String("name", c.Name))
	})
}
