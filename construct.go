package brush

import (
	"fmt"
	"math"

	"github.com/akmonengine/brush/geom"
	"github.com/akmonengine/brush/texdef"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	PrismMinSides = 3
	PrismMaxSides = MaxFaces - 2
	ConeMinSides  = 3
	ConeMaxSides  = 32
)

// ConstructCuboid replaces the faces by the six planes of bounds
func (b *Brush) ConstructCuboid(bounds geom.AABB, shader string, projection texdef.Projection) error {
	b.Clear()
	b.Reserve(6)

	for axis := 0; axis < 3; axis++ {
		var normal mgl64.Vec3
		normal[axis] = 1
		if _, err := b.AddTexturedFace(geom.Plane{Normal: normal, Dist: bounds.Max[axis]}, projection, shader); err != nil {
			return err
		}
	}
	for axis := 0; axis < 3; axis++ {
		var normal mgl64.Vec3
		normal[axis] = -1
		if _, err := b.AddTexturedFace(geom.Plane{Normal: normal, Dist: -bounds.Min[axis]}, projection, shader); err != nil {
			return err
		}
	}

	return nil
}

// ConstructPrism replaces the faces by a prism along axis (0 X, 1 Y, 2 Z)
// whose sides circumscribe the largest circle fitting the bounds.
func (b *Brush) ConstructPrism(bounds geom.AABB, sides, axis int, shader string, projection texdef.Projection) error {
	if sides < PrismMinSides || sides > PrismMaxSides {
		return fmt.Errorf("prism with %d sides: %w", sides, ErrSides)
	}
	if axis < 0 || axis > 2 {
		return fmt.Errorf("prism axis %d: %w", axis, ErrInvalidPlane)
	}

	b.Clear()
	b.Reserve(sides + 2)

	var up mgl64.Vec3
	up[axis] = 1
	if _, err := b.AddTexturedFace(geom.Plane{Normal: up, Dist: bounds.Max[axis]}, projection, shader); err != nil {
		return err
	}
	if _, err := b.AddTexturedFace(geom.Plane{Normal: up.Mul(-1), Dist: -bounds.Min[axis]}, projection, shader); err != nil {
		return err
	}

	u, v := (axis+1)%3, (axis+2)%3
	mid := bounds.Origin()
	extents := bounds.Extents()
	radius := math.Max(extents[u], extents[v])

	for i := 0; i < sides; i++ {
		angle := float64(i) * 2 * math.Pi / float64(sides)
		var normal mgl64.Vec3
		normal[u] = math.Cos(angle)
		normal[v] = math.Sin(angle)
		plane := geom.Plane{Normal: normal, Dist: normal.Dot(mid) + radius}
		if _, err := b.AddTexturedFace(plane, projection, shader); err != nil {
			return err
		}
	}

	return nil
}

// ConstructCone replaces the faces by a cone along Z, its base on the
// bottom of bounds and its apex at the top centre.
func (b *Brush) ConstructCone(bounds geom.AABB, sides int, shader string, projection texdef.Projection) error {
	if sides < ConeMinSides || sides > ConeMaxSides {
		return fmt.Errorf("cone with %d sides: %w", sides, ErrSides)
	}

	b.Clear()
	b.Reserve(sides + 1)

	if _, err := b.AddTexturedFace(geom.Plane{Normal: mgl64.Vec3{0, 0, -1}, Dist: -bounds.Min.Z()}, projection, shader); err != nil {
		return err
	}

	mid := bounds.Origin()
	extents := bounds.Extents()
	radius := math.Max(extents.X(), extents.Y())
	height := bounds.Max.Z() - bounds.Min.Z()
	apex := mgl64.Vec3{mid.X(), mid.Y(), bounds.Max.Z()}

	for i := 0; i < sides; i++ {
		angle := float64(i) * 2 * math.Pi / float64(sides)
		// normal of the side through the apex, tangent to the base circle
		normal := mgl64.Vec3{height * math.Cos(angle), height * math.Sin(angle), radius}.Normalize()
		plane := geom.Plane{Normal: normal, Dist: normal.Dot(apex)}
		if _, err := b.AddTexturedFace(plane, projection, shader); err != nil {
			return err
		}
	}

	return nil
}
