package component

import "github.com/milk9111/actionrpg/common"

// DesiredMovement gates a path follower's desired velocity: it is passed
// through only while the follower is farther than its stopping distance and
// the character is alive. Otherwise the character should settle to idle.
func DesiredMovement(f PathFollower, alive bool) common.Vec3 {
	if f == nil || !alive {
		return common.Vec3{}
	}
	if f.RemainingDistance() > f.StoppingDistance() {
		return f.DesiredVelocity()
	}
	return common.Vec3{}
}

// ShortenDestination pulls destination back toward from by shortening units.
// Used to stop a weapon's reach short of a target instead of on top of it.
func ShortenDestination(from, destination common.Vec3, shortening float64) common.Vec3 {
	reduction := destination.Sub(from).Normalized().Scale(shortening)
	return destination.Sub(reduction)
}

// Agent is a straight-line path follower on the ground plane. It steers
// directly toward its destination; it does not search around obstacles.
type Agent struct {
	Speed    float64
	Stopping float64

	position    common.Vec3
	destination common.Vec3
	hasDest     bool
}

func NewAgent(speed, stopping float64) *Agent {
	return &Agent{Speed: speed, Stopping: stopping}
}

// SetDestination starts steering toward a world position.
func (a *Agent) SetDestination(p common.Vec3) {
	if a == nil {
		return
	}
	a.destination = p
	a.hasDest = true
}

// ClearDestination stops steering.
func (a *Agent) ClearDestination() {
	if a == nil {
		return
	}
	a.destination = a.position
	a.hasDest = false
}

func (a *Agent) Destination() (common.Vec3, bool) {
	if a == nil {
		return common.Vec3{}, false
	}
	return a.destination, a.hasDest
}

// Warp syncs the agent with the body's current position.
func (a *Agent) Warp(p common.Vec3) {
	if a == nil {
		return
	}
	a.position = p
	if !a.hasDest {
		a.destination = p
	}
}

func (a *Agent) RemainingDistance() float64 {
	if a == nil || !a.hasDest {
		return 0
	}
	return a.destination.Sub(a.position).Flat().Length()
}

func (a *Agent) StoppingDistance() float64 {
	if a == nil {
		return 0
	}
	return a.Stopping
}

func (a *Agent) DesiredVelocity() common.Vec3 {
	if a == nil || !a.hasDest {
		return common.Vec3{}
	}
	return a.destination.Sub(a.position).Flat().Normalized().Scale(a.Speed)
}
