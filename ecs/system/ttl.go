package system

import (
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/component"
	"go.uber.org/zap"
)

// TTLSystem counts TTL components down by dt and destroys entities whose
// time ran out.
type TTLSystem struct {
	log *zap.Logger
}

func NewTTLSystem(log *zap.Logger) *TTLSystem {
	return &TTLSystem{log: loggerOrNop(log)}
}

func (s *TTLSystem) Update(w *ecs.World, dt float64) {
	if w == nil || dt <= 0 {
		return
	}

	var expired []ecs.Entity
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if ttl == nil {
			return
		}
		ttl.Seconds -= dt
		if ttl.Seconds <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		if ecs.DestroyEntity(w, e) {
			s.log.Debug("entity expired", entityField(e))
		}
	}
}
