package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTransformIdentity(t *testing.T) {
	tr := NewTransform()
	if !tr.IsIdentity() {
		t.Fatal("NewTransform should be identity")
	}
	if !tr.Matrix().ApproxEqual(mgl64.Ident4()) {
		t.Errorf("Matrix() = %v, want identity", tr.Matrix())
	}
}

func TestTransformMatrixOrder(t *testing.T) {
	tr := NewTransform()
	tr.Scale = mgl64.Vec3{2, 2, 2}
	tr.Rotation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	tr.Position = mgl64.Vec3{10, 0, 0}

	if tr.IsIdentity() {
		t.Fatal("transform should not be identity")
	}

	// (1,0,0) scaled to (2,0,0), rotated to (0,2,0), translated to (10,2,0)
	got := mgl64.TransformCoordinate(mgl64.Vec3{1, 0, 0}, tr.Matrix())
	if !vec3ApproxEqual(got, mgl64.Vec3{10, 2, 0}, 1e-9) {
		t.Errorf("transformed point = %v, want (10,2,0)", got)
	}
}
