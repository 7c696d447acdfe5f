package common

import (
	"fmt"
	"math"
)

// Vec3 is a world or local space vector. Y is up.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

var (
	Zero3    = Vec3{}
	Up       = Vec3{Y: 1}
	Forward3 = Vec3{Z: 1}
)

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length, or zero for a near-zero vector.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l <= Epsilon {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Flat drops the vertical component.
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// YawForward returns the unit forward direction for a heading in degrees.
// Yaw 0 faces +Z and positive yaw turns toward +X.
func YawForward(yawDeg float64) Vec3 {
	r := DegToRad(yawDeg)
	return Vec3{X: math.Sin(r), Z: math.Cos(r)}
}

// YawRight returns the unit right direction for a heading in degrees.
func YawRight(yawDeg float64) Vec3 {
	r := DegToRad(yawDeg)
	return Vec3{X: math.Cos(r), Z: -math.Sin(r)}
}

// InverseYaw transforms a world direction into the local frame of a body
// rotated by yawDeg around the up axis.
func InverseYaw(v Vec3, yawDeg float64) Vec3 {
	r := DegToRad(yawDeg)
	s, c := math.Sin(r), math.Cos(r)
	return Vec3{
		X: v.X*c - v.Z*s,
		Y: v.Y,
		Z: v.X*s + v.Z*c,
	}
}

// RotateYaw transforms a local direction into world space.
func RotateYaw(v Vec3, yawDeg float64) Vec3 {
	r := DegToRad(yawDeg)
	s, c := math.Sin(r), math.Cos(r)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}
