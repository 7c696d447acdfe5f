package component

import "github.com/milk9111/actionrpg/common"

// Frame exposes a body's world position and heading.
type Frame interface {
	Position() common.Vec3
	Yaw() float64
	SetYaw(deg float64)
}

// PathFollower owns pathing toward a destination.
type PathFollower interface {
	RemainingDistance() float64
	StoppingDistance() float64
	DesiredVelocity() common.Vec3
}

// AnimatorSink accepts damped float parameters and a playback speed.
type AnimatorSink interface {
	SetFloat(name string, value, dampTime, dt float64)
	SetSpeed(speed float64)
}

// PhysicsBody exposes a mutable velocity.
type PhysicsBody interface {
	Velocity() common.Vec3
	SetVelocity(v common.Vec3)
}

// ResourcePool is a spendable resource such as energy.
type ResourcePool interface {
	Has(amount float64) bool
	Deduct(amount float64) bool
}

// WeaponProvider exposes the currently equipped weapon.
type WeaponProvider interface {
	CurrentWeaponConfig() *WeaponConfig
}

// HealthComponent exposes health operations for abilities and weapons.
type HealthComponent interface {
	IsAlive() bool
	ApplyDamage(amount float64) bool
	Heal(amount float64)
	CurrentHP() float64
	MaxHP() float64
}
