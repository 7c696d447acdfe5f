package component

import "github.com/milk9111/actionrpg/common"

// Transform is a world position plus a heading in degrees about +Y.
type Transform struct {
	X        float64
	Y        float64
	Z        float64
	Rotation float64
}

func (t *Transform) Position() common.Vec3 {
	return common.Vec3{X: t.X, Y: t.Y, Z: t.Z}
}

func (t *Transform) SetPosition(p common.Vec3) {
	t.X, t.Y, t.Z = p.X, p.Y, p.Z
}

func (t *Transform) Yaw() float64 {
	return t.Rotation
}

func (t *Transform) SetYaw(deg float64) {
	t.Rotation = deg
}

var TransformComponent = NewComponent[Transform]()
