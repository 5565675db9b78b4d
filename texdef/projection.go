// Package texdef holds the texture state carried by a brush face: the shader
// reference and the shift/scale/rotate projection that maps winding vertices
// to texture coordinates.
package texdef

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultScale is the texture scale of a freshly created face
const DefaultScale = 0.5

// Projection is a Quake-style texture projection. Rotate is in degrees.
type Projection struct {
	Shift  mgl64.Vec2
	Scale  mgl64.Vec2
	Rotate float64
}

// DefaultProjection returns an unshifted, unrotated projection at DefaultScale
func DefaultProjection() Projection {
	return Projection{Scale: mgl64.Vec2{DefaultScale, DefaultScale}}
}

// Valid reports whether both scales are non-zero
func (p Projection) Valid() bool {
	return p.Scale.X() != 0 && p.Scale.Y() != 0
}

// Normalise wraps the shift into one texture period
func (p *Projection) Normalise(width, height float64) {
	if width > 0 {
		p.Shift[0] = math.Mod(p.Shift[0], width)
	}
	if height > 0 {
		p.Shift[1] = math.Mod(p.Shift[1], height)
	}
}

// baseAxes lists, per axial direction, the face normal followed by the S and T axes
var baseAxes = [6][3]mgl64.Vec3{
	{{0, 0, 1}, {1, 0, 0}, {0, -1, 0}},  // floor
	{{0, 0, -1}, {1, 0, 0}, {0, -1, 0}}, // ceiling
	{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}},  // west wall
	{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, // east wall
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},  // south wall
	{{0, -1, 0}, {1, 0, 0}, {0, 0, -1}}, // north wall
}

// AxialBasis returns the S and T texture axes of the axial direction closest to normal
func AxialBasis(normal mgl64.Vec3) (s, t mgl64.Vec3) {
	best := 0
	bestDot := -math.MaxFloat64
	for i := range baseAxes {
		if d := normal.Dot(baseAxes[i][0]); d > bestDot+1e-9 {
			bestDot = d
			best = i
		}
	}
	return baseAxes[best][1], baseAxes[best][2]
}

// Matrix returns the world to texture space transform for a face with the
// given normal and a texture of width×height texels.
func (p Projection) Matrix(normal mgl64.Vec3, width, height float64) mgl64.Mat4 {
	s, t := AxialBasis(normal)
	basis := mgl64.Mat4FromRows(
		s.Vec4(0),
		t.Vec4(0),
		normal.Vec4(0),
		mgl64.Vec4{0, 0, 0, 1},
	)

	scaleS, scaleT := p.Scale.X(), p.Scale.Y()
	if scaleS == 0 {
		scaleS = DefaultScale
	}
	if scaleT == 0 {
		scaleT = DefaultScale
	}

	rotation := mgl64.HomogRotate3DZ(mgl64.DegToRad(-p.Rotate))
	scale := mgl64.Scale3D(1/scaleS, 1/scaleT, 1)
	shift := mgl64.Translate3D(p.Shift.X(), p.Shift.Y(), 0)
	size := mgl64.Scale3D(1/width, 1/height, 1)

	return size.Mul4(shift).Mul4(scale).Mul4(rotation).Mul4(basis)
}

// Emit returns the texture coordinate of point on a face with the given normal
func (p Projection) Emit(normal, point mgl64.Vec3, width, height float64) mgl64.Vec2 {
	return emit(p.Matrix(normal, width, height), point)
}

func emit(m mgl64.Mat4, point mgl64.Vec3) mgl64.Vec2 {
	st := m.Mul4x1(point.Vec4(1))
	return mgl64.Vec2{st.X(), st.Y()}
}

// Emitter precomputes the projection matrix of one face
type Emitter struct {
	matrix mgl64.Mat4
}

// NewEmitter builds an Emitter for a face normal and texture size
func (p Projection) NewEmitter(normal mgl64.Vec3, width, height float64) Emitter {
	return Emitter{matrix: p.Matrix(normal, width, height)}
}

// Emit returns the texture coordinate of point
func (e Emitter) Emit(point mgl64.Vec3) mgl64.Vec2 {
	return emit(e.matrix, point)
}
