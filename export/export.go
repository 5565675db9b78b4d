// Package export turns evaluated brushes into triangle meshes: sdfx
// triangles for STL output and flat buffers for rendering.
package export

import (
	"errors"
	"fmt"

	"github.com/akmonengine/brush"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrEmptyMesh is returned when no brush contributes a face
var ErrEmptyMesh = errors.New("export: empty mesh")

func toV3(v mgl64.Vec3) v3.Vec {
	return v3.Vec{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Triangles fans every contributing face of the brushes into triangles,
// counter-clockwise seen from outside. Brushes are evaluated first.
func Triangles(brushes ...*brush.Brush) []*sdf.Triangle3 {
	var triangles []*sdf.Triangle3
	for _, b := range brushes {
		b.EvaluateBRep()
		for _, f := range b.Faces() {
			if !f.Contributes() {
				continue
			}
			w := f.Winding()
			for i := 1; i+1 < len(w); i++ {
				triangles = append(triangles, &sdf.Triangle3{
					toV3(w[0].Position),
					toV3(w[i].Position),
					toV3(w[i+1].Position),
				})
			}
		}
	}
	return triangles
}

// SaveSTL writes the brushes to a binary STL file
func SaveSTL(path string, brushes ...*brush.Brush) error {
	triangles := Triangles(brushes...)
	if len(triangles) == 0 {
		return fmt.Errorf("save %s: %w", path, ErrEmptyMesh)
	}
	if err := render.SaveSTL(path, triangles); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
