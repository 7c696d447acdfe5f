package component

import (
	"math"
	"testing"

	"github.com/milk9111/actionrpg/common"
)

const tol = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMapLocomotionBelowThresholdKeepsMagnitude(t *testing.T) {
	s := DefaultLocomotionSettings()
	cases := []struct {
		name string
		move common.Vec3
		yaw  float64
	}{
		{"half_forward", common.V3(0, 0, 0.5), 0},
		{"diagonal_small", common.V3(0.3, 0, 0.4), 0},
		{"rotated_heading", common.V3(0.2, 0, -0.6), 37},
		{"zero", common.Vec3{}, 90},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MapLocomotion(c.move, c.yaw, true, s)
			local := common.InverseYaw(c.move, c.yaw)
			if !near(got.Forward, local.Z) {
				t.Fatalf("forward = %v, want local z %v", got.Forward, local.Z)
			}
		})
	}
}

func TestMapLocomotionAboveThresholdNormalizes(t *testing.T) {
	s := DefaultLocomotionSettings()
	cases := []struct {
		name string
		move common.Vec3
		yaw  float64
	}{
		{"fast_forward", common.V3(0, 0, 4), 0},
		{"fast_strafe", common.V3(3, 0, 3), 15},
		{"behind", common.V3(-2, 0, -7), 200},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MapLocomotion(c.move, c.yaw, true, s)
			local := common.InverseYaw(c.move.Normalized(), c.yaw)
			if sum := got.Forward*got.Forward + local.X*local.X; math.Abs(sum-1) > 1e-6 {
				t.Fatalf("forward^2 + x^2 = %v, want 1", sum)
			}
			if !got.Moving {
				t.Fatalf("expected moving")
			}
		})
	}
}

func TestMapLocomotionTurnAmount(t *testing.T) {
	s := DefaultLocomotionSettings()
	cases := []struct {
		name string
		move common.Vec3
		yaw  float64
		want float64
	}{
		{"straight_ahead", common.V3(0, 0, 1), 0, 0},
		{"ahead_rotated", common.YawForward(123), 123, 0},
		{"right", common.V3(1, 0, 0), 0, math.Pi / 2},
		{"left", common.V3(-1, 0, 0), 0, -math.Pi / 2},
		{"behind", common.V3(0, 0, -1), 0, math.Pi},
		{"right_of_east_facing", common.V3(0, 0, -1), 90, math.Pi / 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MapLocomotion(c.move, c.yaw, true, s)
			if math.Abs(got.Turn-c.want) > 1e-9 {
				t.Fatalf("turn = %v, want %v", got.Turn, c.want)
			}
			if got.Turn <= -math.Pi || got.Turn > math.Pi {
				t.Fatalf("turn %v outside (-pi, pi]", got.Turn)
			}
		})
	}
}

func TestMapLocomotionDeadIsIdle(t *testing.T) {
	got := MapLocomotion(common.V3(5, 0, 5), 0, false, DefaultLocomotionSettings())
	if got.Forward != 0 || got.Turn != 0 || got.Moving {
		t.Fatalf("dead character should be idle, got %+v", got)
	}
}

func TestTurnRate(t *testing.T) {
	s := DefaultLocomotionSettings()
	cases := []struct {
		name    string
		forward float64
		want    float64
	}{
		{"stationary", 0, 180},
		{"full_speed", 1, 360},
		{"half", 0.5, 270},
		{"overspeed_clamped", 1.8, 360},
		{"backwards_clamped", -0.7, 180},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := TurnRate(c.forward, s); !near(got, c.want) {
				t.Fatalf("TurnRate(%v) = %v, want %v", c.forward, got, c.want)
			}
		})
	}
}

func TestTurnDelta(t *testing.T) {
	s := DefaultLocomotionSettings()
	state := LocomotionState{Forward: 0, Turn: math.Pi / 2}
	if got, want := TurnDelta(state, s, 0.1), math.Pi/2*180*0.1; !near(got, want) {
		t.Fatalf("TurnDelta = %v, want %v", got, want)
	}
}

type fakeFrame struct {
	pos common.Vec3
	yaw float64
}

func (f *fakeFrame) Position() common.Vec3 { return f.pos }
func (f *fakeFrame) Yaw() float64          { return f.yaw }
func (f *fakeFrame) SetYaw(deg float64)    { f.yaw = deg }

func TestLocomotorMoveTurnsAndFeedsAnimator(t *testing.T) {
	s := DefaultLocomotionSettings()
	frame := &fakeFrame{}
	anim := NewAnimator(2, 0)
	l := NewLocomotor(s)

	state := l.Move(common.V3(1, 0, 0), frame, anim, true, 0.1)
	if !near(state.Turn, math.Pi/2) {
		t.Fatalf("turn = %v", state.Turn)
	}
	if frame.yaw <= 0 {
		t.Fatalf("expected frame to turn right, yaw = %v", frame.yaw)
	}
	if anim.Float(ParamTurn) <= 0 {
		t.Fatalf("expected animator turn param to move toward target")
	}
	if anim.Speed() != s.AnimatorSpeedMultiplier {
		t.Fatalf("animator speed = %v", anim.Speed())
	}
}
