package brush

import (
	"errors"
	"math"
	"testing"

	"github.com/akmonengine/brush/geom"
	"github.com/akmonengine/brush/texdef"
	"github.com/go-gl/mathgl/mgl64"
)

func TestFacePlane_FromPlaneIsExact(t *testing.T) {
	plane := geom.Plane{Normal: mgl64.Vec3{1, 2, 3}.Normalize(), Dist: 7.25}
	fp := facePlaneFromPlane(plane)

	if fp.plane != plane {
		t.Errorf("plane = %v, want %v", fp.plane, plane)
	}
	recomputed := geom.PlaneFromPoints(fp.points[0], fp.points[1], fp.points[2])
	if !recomputed.Equal(plane) {
		t.Errorf("points describe %v, want %v", recomputed, plane)
	}
}

func TestFacePlane_Transformed(t *testing.T) {
	plane := facePlaneFromPlane(geom.Plane{Normal: mgl64.Vec3{1, 0, 0}, Dist: 8})

	tests := []struct {
		name   string
		matrix mgl64.Mat4
		want   geom.Plane
	}{
		{"translate", mgl64.Translate3D(2, 5, 0), geom.Plane{Normal: mgl64.Vec3{1, 0, 0}, Dist: 10}},
		{"rotate", mgl64.HomogRotate3DZ(math.Pi / 2), geom.Plane{Normal: mgl64.Vec3{0, 1, 0}, Dist: 8}},
		{"scale", mgl64.Scale3D(3, 1, 1), geom.Plane{Normal: mgl64.Vec3{1, 0, 0}, Dist: 24}},
		{"mirror", mgl64.Scale3D(-1, 1, 1), geom.Plane{Normal: mgl64.Vec3{-1, 0, 0}, Dist: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plane.transformed(tt.matrix).plane
			if !got.Equal(tt.want) {
				t.Errorf("transformed plane = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFace_TransformRevertFreeze(t *testing.T) {
	b := createCube(t, 8)
	face := b.Face(0)

	face.Transform(mgl64.Translate3D(4, 0, 0))
	if math.Abs(face.Plane3().Dist-12) > testEpsilon {
		t.Errorf("pending transform: dist %v, want 12", face.Plane3().Dist)
	}

	face.RevertTransform()
	if face.Plane3().Dist != 8 {
		t.Errorf("reverted: dist %v, want 8", face.Plane3().Dist)
	}

	face.Transform(mgl64.Translate3D(4, 0, 0))
	face.FreezeTransform()
	face.RevertTransform()
	if math.Abs(face.Plane3().Dist-12) > testEpsilon {
		t.Errorf("frozen: dist %v, want 12", face.Plane3().Dist)
	}
	if !b.PlaneChanged() {
		t.Error("face edits should mark the brush")
	}
}

func TestFace_SetPlanePoints(t *testing.T) {
	b := createCube(t, 8)
	face := b.Face(2)

	err := face.SetPlanePoints(mgl64.Vec3{0, 0, 4}, mgl64.Vec3{1, 0, 4}, mgl64.Vec3{2, 0, 4})
	if !errors.Is(err, ErrInvalidPlane) {
		t.Fatalf("collinear points: error = %v, want ErrInvalidPlane", err)
	}
	if face.Plane3().Dist != 8 {
		t.Error("rejected points should leave the plane alone")
	}

	if err := face.SetPlanePoints(mgl64.Vec3{0, 0, 4}, mgl64.Vec3{1, 0, 4}, mgl64.Vec3{0, 1, 4}); err != nil {
		t.Fatal(err)
	}
	if !containsVec3(b.UniqueVertices(), mgl64.Vec3{8, 8, 4}) {
		t.Errorf("top should move to z=4, got %v", b.UniqueVertices())
	}
	if pts := face.PlanePoints(); pts[2] != (mgl64.Vec3{0, 1, 4}) {
		t.Errorf("PlanePoints() = %v", pts)
	}
}

func TestFace_Copy(t *testing.T) {
	b := createCube(t, 8)
	b.EvaluateBRep()
	face := b.Face(0)
	face.SetProjection(texdef.Projection{Shift: mgl64.Vec2{4, 0}, Scale: mgl64.Vec2{1, 1}})
	b.EvaluateBRep()

	c := face.Copy()
	if c.owner != nil {
		t.Error("copy should be detached")
	}
	if c.Projection() != face.Projection() || c.Plane3() != face.Plane3() {
		t.Error("copy should keep plane and projection")
	}
	if len(c.Winding()) != 4 {
		t.Fatalf("copy winding has %d vertices, want 4", len(c.Winding()))
	}

	c.winding[0].Position = mgl64.Vec3{100, 100, 100}
	if face.Winding()[0].Position == c.winding[0].Position {
		t.Error("copy shares winding storage")
	}

	c.SetPlane(geom.Plane{Normal: mgl64.Vec3{1, 0, 0}, Dist: 1})
	if face.Plane3().Dist != 8 {
		t.Error("editing the copy changed the original")
	}
}
