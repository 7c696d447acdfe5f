package system

import (
	rpg "github.com/milk9111/actionrpg/component"
	"github.com/milk9111/actionrpg/ecs"
	"github.com/milk9111/actionrpg/ecs/component"
)

// AgentSystem keeps each navigation agent at its transform's position so
// remaining distance and desired velocity are computed from where the
// character actually is.
type AgentSystem struct{}

func NewAgentSystem() *AgentSystem { return &AgentSystem{} }

func (s *AgentSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.AgentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, agent *rpg.Agent, t *component.Transform) {
		if agent == nil || t == nil {
			return
		}
		agent.Warp(t.Position())
		if !isAlive(w, e) {
			agent.ClearDestination()
		}
	})
}
