package component

import "github.com/milk9111/actionrpg/common"

// RootMotionVelocity converts an animation positional delta into a body
// velocity. The vertical component of current is kept so gravity and jumps
// owned by the physics step are never overwritten. It reports false and
// leaves current untouched when dt <= 0.
func RootMotionVelocity(current, animDelta common.Vec3, multiplier, dt float64) (common.Vec3, bool) {
	if dt <= 0 {
		return current, false
	}
	return common.Vec3{
		X: animDelta.X * multiplier / dt,
		Y: current.Y,
		Z: animDelta.Z * multiplier / dt,
	}, true
}

// ApplyRootMotion writes the root motion velocity into body.
func ApplyRootMotion(body PhysicsBody, animDelta common.Vec3, multiplier, dt float64) bool {
	if body == nil {
		return false
	}
	v, ok := RootMotionVelocity(body.Velocity(), animDelta, multiplier, dt)
	if !ok {
		return false
	}
	body.SetVelocity(v)
	return true
}
