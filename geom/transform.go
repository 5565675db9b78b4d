package geom

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a pending placement of a brush: scale, then rotation,
// then translation.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// Matrix returns T·R·S
func (t Transform) Matrix() mgl64.Mat4 {
	translation := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translation.Mul4(t.Rotation.Normalize().Mat4()).Mul4(scale)
}

// IsIdentity reports whether applying the transform changes nothing
func (t Transform) IsIdentity() bool {
	return t.Position == (mgl64.Vec3{}) &&
		t.Scale == (mgl64.Vec3{1, 1, 1}) &&
		t.Rotation.ApproxEqual(mgl64.QuatIdent())
}
