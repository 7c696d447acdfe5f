package component

import (
	"math"

	"github.com/milk9111/actionrpg/common"
)

// MovingEpsilon is the input magnitude above which a character counts as moving.
const MovingEpsilon = 1e-4

// Animator parameter names driven by locomotion.
const (
	ParamForward = "Forward"
	ParamTurn    = "Turn"
)

// LocomotionSettings tunes how desired movement is mapped to animator input
// and explicit turning. Turn speeds are in degrees per second.
type LocomotionSettings struct {
	MoveThreshold           float64
	StationaryTurnSpeed     float64
	MovingTurnSpeed         float64
	MoveSpeedMultiplier     float64
	AnimatorSpeedMultiplier float64
	AnimatorDampTime        float64
}

// DefaultLocomotionSettings returns the stock humanoid tuning.
func DefaultLocomotionSettings() LocomotionSettings {
	return LocomotionSettings{
		MoveThreshold:           1,
		StationaryTurnSpeed:     180,
		MovingTurnSpeed:         360,
		MoveSpeedMultiplier:     1.2,
		AnimatorSpeedMultiplier: 1,
		AnimatorDampTime:        0.1,
	}
}

// LocomotionState is the per-tick result of mapping a movement vector.
type LocomotionState struct {
	// Forward is the signed local-forward component of the (possibly
	// normalized) movement vector.
	Forward float64
	// Turn is atan2(local.X, local.Z) in radians, within (-pi, pi].
	Turn   float64
	Moving bool
}

// MapLocomotion converts a world-space desired movement into animator inputs
// for a body facing yawDeg. Dead characters always map to the idle state.
func MapLocomotion(move common.Vec3, yawDeg float64, alive bool, s LocomotionSettings) LocomotionState {
	if !alive {
		move = common.Vec3{}
	}

	mag := move.Length()
	if mag > s.MoveThreshold {
		move = move.Normalized()
	}

	local := common.InverseYaw(move, yawDeg)
	turn := math.Atan2(local.X, local.Z)
	if turn == -math.Pi {
		turn = math.Pi
	}
	return LocomotionState{
		Forward: local.Z,
		Turn:    turn,
		Moving:  mag > MovingEpsilon,
	}
}

// TurnRate interpolates between the stationary and moving turn speeds keyed
// by the forward amount. The key is clamped to [0, 1].
func TurnRate(forward float64, s LocomotionSettings) float64 {
	return common.LerpClamped(s.StationaryTurnSpeed, s.MovingTurnSpeed, forward)
}

// TurnDelta is the extra yaw in degrees to apply this tick, on top of any
// rotation coming from root motion.
func TurnDelta(state LocomotionState, s LocomotionSettings, dt float64) float64 {
	return state.Turn * TurnRate(state.Forward, s) * dt
}

// Locomotor drives a frame and an animator sink from desired movement.
type Locomotor struct {
	Settings LocomotionSettings
	State    LocomotionState
}

func NewLocomotor(s LocomotionSettings) *Locomotor {
	return &Locomotor{Settings: s}
}

// Move maps the movement, turns the frame and feeds the animator.
func (l *Locomotor) Move(move common.Vec3, frame Frame, anim AnimatorSink, alive bool, dt float64) LocomotionState {
	if l == nil || frame == nil {
		return LocomotionState{}
	}

	l.State = MapLocomotion(move, frame.Yaw(), alive, l.Settings)
	frame.SetYaw(common.WrapDegrees(frame.Yaw() + TurnDelta(l.State, l.Settings, dt)))

	if anim != nil {
		anim.SetFloat(ParamForward, l.State.Forward, l.Settings.AnimatorDampTime, dt)
		anim.SetFloat(ParamTurn, l.State.Turn, l.Settings.AnimatorDampTime, dt)
		anim.SetSpeed(l.Settings.AnimatorSpeedMultiplier)
	}
	return l.State
}
