package component

import (
	"testing"

	"github.com/milk9111/actionrpg/common"
)

type fakeFollower struct {
	remaining, stopping float64
	desired             common.Vec3
}

func (f fakeFollower) RemainingDistance() float64   { return f.remaining }
func (f fakeFollower) StoppingDistance() float64    { return f.stopping }
func (f fakeFollower) DesiredVelocity() common.Vec3 { return f.desired }

func TestDesiredMovement(t *testing.T) {
	desired := common.V3(1, 0, 2)
	cases := []struct {
		name  string
		f     fakeFollower
		alive bool
		want  common.Vec3
	}{
		{"far_alive", fakeFollower{5, 1.3, desired}, true, desired},
		{"far_dead", fakeFollower{5, 1.3, desired}, false, common.Vec3{}},
		{"at_stopping", fakeFollower{1.3, 1.3, desired}, true, common.Vec3{}},
		{"inside_stopping", fakeFollower{0.2, 1.3, desired}, true, common.Vec3{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DesiredMovement(c.f, c.alive); got != c.want {
				t.Fatalf("DesiredMovement = %v, want %v", got, c.want)
			}
		})
	}
}

func TestAgentSteersTowardDestination(t *testing.T) {
	a := NewAgent(2, 1)
	a.Warp(common.V3(0, 0, 0))
	if a.RemainingDistance() != 0 {
		t.Fatalf("no destination should mean nothing remaining")
	}

	a.SetDestination(common.V3(0, 5, 10))
	if got := a.RemainingDistance(); !near(got, 10) {
		t.Fatalf("remaining = %v, want 10 (ground plane only)", got)
	}
	if got := a.DesiredVelocity(); !near(got.Z, 2) || !near(got.X, 0) || got.Y != 0 {
		t.Fatalf("desired = %v", got)
	}

	a.Warp(common.V3(0, 0, 9.5))
	if got := DesiredMovement(a, true); !got.IsZero() {
		t.Fatalf("inside stopping distance should be idle, got %v", got)
	}
}

func TestShortenDestination(t *testing.T) {
	got := ShortenDestination(common.V3(0, 0, 0), common.V3(10, 0, 0), 2)
	if !near(got.X, 8) || got.Z != 0 {
		t.Fatalf("shortened = %v", got)
	}
}
