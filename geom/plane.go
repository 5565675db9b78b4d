// Package geom holds the value types shared by windings, faces and brushes:
// planes, bounding boxes, transforms and the tolerances used to compare them.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// OnEpsilon is the distance under which a point is considered to lie on a plane.
	OnEpsilon = 1.0 / 256.0

	// PlaneEpsilon bounds the per-component difference of two normals (and of
	// two distances) that still compare as the same plane.
	PlaneEpsilon = 0.001

	// planeValidEpsilon is the tolerance on |normal|² for a usable plane.
	planeValidEpsilon = 0.01
)

// Side is the classification of a point against a plane
type Side uint8

const (
	SideOn Side = iota
	SideFront
	SideBack
)

func (s Side) String() string {
	switch s {
	case SideFront:
		return "front"
	case SideBack:
		return "back"
	default:
		return "on"
	}
}

// Classify returns the side of a plane a signed distance falls on
func Classify(distance, epsilon float64) Side {
	if distance > epsilon {
		return SideFront
	}
	if distance < -epsilon {
		return SideBack
	}
	return SideOn
}

// Plane is the set of points p with Normal·p = Dist. The half-space it
// bounds is Normal·p <= Dist, so normals point out of the solid.
type Plane struct {
	Normal mgl64.Vec3
	Dist   float64
}

// PlaneFromPoints builds the plane through three points. The normal follows
// the right-hand rule on (p1-p0, p2-p0). Collinear points give an invalid plane.
func PlaneFromPoints(p0, p1, p2 mgl64.Vec3) Plane {
	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	length := normal.Len()
	if length < 1e-12 {
		return Plane{}
	}
	normal = normal.Mul(1.0 / length)
	return Plane{Normal: normal, Dist: normal.Dot(p0)}
}

// DistanceTo returns the signed distance from the plane to point
func (p Plane) DistanceTo(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) - p.Dist
}

// Valid reports whether the normal is unit length
func (p Plane) Valid() bool {
	return math.Abs(p.Normal.Dot(p.Normal)-1.0) < planeValidEpsilon
}

// Flip returns the same plane facing the other way
func (p Plane) Flip() Plane {
	return Plane{Normal: p.Normal.Mul(-1), Dist: -p.Dist}
}

// SameNormal reports whether both normals match within PlaneEpsilon
func (p Plane) SameNormal(other Plane) bool {
	return Vec3EqualEpsilon(p.Normal, other.Normal, PlaneEpsilon)
}

// Vec3EqualEpsilon compares each component with an absolute tolerance
func Vec3EqualEpsilon(a, b mgl64.Vec3, epsilon float64) bool {
	return math.Abs(a[0]-b[0]) < epsilon &&
		math.Abs(a[1]-b[1]) < epsilon &&
		math.Abs(a[2]-b[2]) < epsilon
}

// Equal compares normals and distances within PlaneEpsilon
func (p Plane) Equal(other Plane) bool {
	return p.SameNormal(other) && math.Abs(p.Dist-other.Dist) < PlaneEpsilon
}

// Basis returns an orthonormal pair spanning the plane with right × up = Normal.
// The up vector is Z for mostly-horizontal normals and X for vertical ones.
func (p Plane) Basis() (right, up mgl64.Vec3) {
	axis := 0
	largest := -1.0
	for i := 0; i < 3; i++ {
		if d := math.Abs(p.Normal[i]); d > largest {
			largest = d
			axis = i
		}
	}

	switch axis {
	case 0, 1:
		up = mgl64.Vec3{0, 0, 1}
	default:
		up = mgl64.Vec3{1, 0, 0}
	}

	up = up.Sub(p.Normal.Mul(up.Dot(p.Normal))).Normalize()
	right = up.Cross(p.Normal)
	return right, up
}

// Origin returns the point of the plane closest to the world origin
func (p Plane) Origin() mgl64.Vec3 {
	return p.Normal.Mul(p.Dist)
}

// Points returns three points spanning the plane, spaced by extent, that
// PlaneFromPoints maps back onto the same plane.
func (p Plane) Points(extent float64) [3]mgl64.Vec3 {
	right, up := p.Basis()
	origin := p.Origin()
	return [3]mgl64.Vec3{
		origin,
		origin.Add(right.Mul(extent)),
		origin.Add(up.Mul(extent)),
	}
}

// IntersectSegment returns the point where segment a-b crosses the plane,
// given the signed distances of both ends. Coordinates on an axial plane are
// snapped to the plane distance.
func (p Plane) IntersectSegment(a, b mgl64.Vec3, da, db float64) mgl64.Vec3 {
	t := da / (da - db)
	mid := a.Add(b.Sub(a).Mul(t))
	for i := 0; i < 3; i++ {
		switch p.Normal[i] {
		case 1:
			mid[i] = p.Dist
		case -1:
			mid[i] = -p.Dist
		}
	}
	return mid
}
