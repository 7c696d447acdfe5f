package component

import (
	"testing"

	"github.com/milk9111/actionrpg/common"
)

type fakeBody struct {
	v   common.Vec3
	set int
}

func (b *fakeBody) Velocity() common.Vec3     { return b.v }
func (b *fakeBody) SetVelocity(v common.Vec3) { b.v = v; b.set++ }

func TestRootMotionVelocity(t *testing.T) {
	cases := []struct {
		name    string
		current common.Vec3
		delta   common.Vec3
		mult    float64
		dt      float64
		want    common.Vec3
		applied bool
	}{
		{"zero_dt_untouched", common.V3(1, -3, 2), common.V3(5, 5, 5), 1.2, 0, common.V3(1, -3, 2), false},
		{"negative_dt_untouched", common.V3(0, 4, 0), common.V3(1, 0, 1), 1, -0.016, common.V3(0, 4, 0), false},
		{"keeps_vertical", common.V3(9, -9.8, 9), common.V3(0.1, 3, 0.2), 1, 0.1, common.V3(1, -9.8, 2), true},
		{"multiplier", common.V3(0, 0, 0), common.V3(0.5, 0, 0), 1.2, 0.5, common.V3(1.2, 0, 0), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := RootMotionVelocity(c.current, c.delta, c.mult, c.dt)
			if ok != c.applied {
				t.Fatalf("applied = %v, want %v", ok, c.applied)
			}
			if !near(got.X, c.want.X) || !near(got.Y, c.want.Y) || !near(got.Z, c.want.Z) {
				t.Fatalf("velocity = %v, want %v", got, c.want)
			}
		})
	}
}

func TestApplyRootMotionSkipsZeroDelta(t *testing.T) {
	body := &fakeBody{v: common.V3(3, 1, 3)}
	if ApplyRootMotion(body, common.V3(1, 0, 1), 1, 0) {
		t.Fatalf("expected skip on dt == 0")
	}
	if body.set != 0 || body.v != common.V3(3, 1, 3) {
		t.Fatalf("body modified: %+v", body)
	}

	if !ApplyRootMotion(body, common.V3(1, 0, 1), 1, 0.5) {
		t.Fatalf("expected apply")
	}
	if body.v != common.V3(2, 1, 2) {
		t.Fatalf("velocity = %v", body.v)
	}
}
