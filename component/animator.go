package component

import (
	"math"
	"sort"

	"github.com/milk9111/actionrpg/common"
)

// Animator is a parameter-driven locomotion animator. It damps float
// parameters toward their targets and derives a root-motion delta from the
// blended Forward and Turn parameters, standing in for clip-driven motion.
type Animator struct {
	// ClipForwardSpeed is the ground speed in units/s the locomotion blend
	// produces at Forward == 1.
	ClipForwardSpeed float64
	// ClipTurnSpeed is the root yaw in degrees/s produced at Turn == 1.
	ClipTurnSpeed float64

	speed  float64
	params map[string]float64
}

func NewAnimator(clipForwardSpeed, clipTurnSpeed float64) *Animator {
	return &Animator{
		ClipForwardSpeed: clipForwardSpeed,
		ClipTurnSpeed:    clipTurnSpeed,
		speed:            1,
		params:           map[string]float64{},
	}
}

// SetFloat moves a parameter toward value. With dampTime > 0 the parameter
// approaches value exponentially, reaching ~63% of the gap after dampTime.
func (a *Animator) SetFloat(name string, value, dampTime, dt float64) {
	if a == nil {
		return
	}
	if a.params == nil {
		a.params = map[string]float64{}
	}
	if dampTime <= 0 {
		a.params[name] = value
		return
	}
	if dt <= 0 {
		return
	}
	cur := a.params[name]
	a.params[name] = cur + (value-cur)*(1-math.Exp(-dt/dampTime))
}

func (a *Animator) Float(name string) float64 {
	if a == nil {
		return 0
	}
	return a.params[name]
}

// Params returns parameter names in sorted order.
func (a *Animator) Params() []string {
	if a == nil {
		return nil
	}
	names := make([]string, 0, len(a.params))
	for k := range a.params {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (a *Animator) SetSpeed(speed float64) {
	if a == nil {
		return
	}
	a.speed = speed
}

func (a *Animator) Speed() float64 {
	if a == nil {
		return 0
	}
	return a.speed
}

// DeltaPosition is the root-motion displacement for this tick for a body
// facing yawDeg.
func (a *Animator) DeltaPosition(yawDeg, dt float64) common.Vec3 {
	if a == nil || dt <= 0 {
		return common.Vec3{}
	}
	dist := a.Float(ParamForward) * a.ClipForwardSpeed * a.speed * dt
	return common.YawForward(yawDeg).Scale(dist)
}

// DeltaYaw is the root-motion rotation in degrees for this tick.
func (a *Animator) DeltaYaw(dt float64) float64 {
	if a == nil || dt <= 0 {
		return 0
	}
	return a.Float(ParamTurn) * a.ClipTurnSpeed * a.speed * dt
}
