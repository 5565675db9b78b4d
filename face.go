package brush

import (
	"fmt"

	"github.com/akmonengine/brush/geom"
	"github.com/akmonengine/brush/texdef"
	"github.com/akmonengine/brush/winding"
	"github.com/go-gl/mathgl/mgl64"
)

// planePointExtent spaces the three points stored for a plane
const planePointExtent = 64.0

// facePlane is a plane in three-point form with its cached equation
type facePlane struct {
	points [3]mgl64.Vec3
	plane  geom.Plane
}

func facePlaneFromPoints(p0, p1, p2 mgl64.Vec3) facePlane {
	return facePlane{
		points: [3]mgl64.Vec3{p0, p1, p2},
		plane:  geom.PlaneFromPoints(p0, p1, p2),
	}
}

// facePlaneFromPlane keeps the exact equation rather than the one
// recomputed from the generated points.
func facePlaneFromPlane(plane geom.Plane) facePlane {
	return facePlane{
		points: plane.Points(planePointExtent),
		plane:  plane,
	}
}

// transformed maps the points through m. A mirroring matrix reverses the
// point order so the normal still points out of the solid.
func (p facePlane) transformed(m mgl64.Mat4) facePlane {
	var points [3]mgl64.Vec3
	for i, point := range p.points {
		points[i] = mgl64.TransformCoordinate(point, m)
	}
	if m.Det() < 0 {
		points[0], points[2] = points[2], points[0]
	}
	return facePlaneFromPoints(points[0], points[1], points[2])
}

// FaceMemento is the undo state of one face
type FaceMemento struct {
	points     [3]mgl64.Vec3
	plane      geom.Plane
	projection texdef.Projection
	shader     texdef.Shader
}

// Face is one bounding half-space of a brush, with the polygon the brush
// derived for it and its texturing.
type Face struct {
	committed facePlane
	current   facePlane

	winding    winding.Winding
	projection texdef.Projection
	shader     texdef.Shader
	centroid   mgl64.Vec3
	unique     bool

	owner *Brush
}

func newFace(plane facePlane, shader string, projection texdef.Projection) *Face {
	return &Face{
		committed:  plane,
		current:    plane,
		projection: projection,
		shader:     texdef.NewShader(shader),
		unique:     true,
	}
}

// Plane3 returns the face plane, transformed while a transform is pending
func (f *Face) Plane3() geom.Plane {
	return f.current.plane
}

// PlanePoints returns the three points defining the face plane
func (f *Face) PlanePoints() [3]mgl64.Vec3 {
	return f.current.points
}

// Winding returns the face polygon. It is rebuilt in place by the brush and
// must not be modified.
func (f *Face) Winding() winding.Winding {
	return f.winding
}

// Contributes reports whether the face is part of the brush boundary
func (f *Face) Contributes() bool {
	return f.unique && f.current.plane.Valid() && len(f.winding) > 2
}

// IsBounded reports whether the winding no longer touches the infinite envelope
func (f *Face) IsBounded() bool {
	return f.winding.IsBounded()
}

// Centroid returns the winding centroid computed by the last B-Rep build
func (f *Face) Centroid() mgl64.Vec3 {
	return f.centroid
}

func (f *Face) Projection() texdef.Projection {
	return f.projection
}

func (f *Face) Shader() texdef.Shader {
	return f.shader
}

// EmitTextureCoordinates writes texture coordinates and the face normal into
// every winding vertex.
func (f *Face) EmitTextureCoordinates() {
	width, height := f.shader.Size()
	normal := f.current.plane.Normal
	emitter := f.projection.NewEmitter(normal, width, height)
	for i := range f.winding {
		f.winding[i].Texcoord = emitter.Emit(f.winding[i].Position)
		f.winding[i].Normal = normal
	}
}

// SetPlanePoints replaces the plane. Collinear points are rejected.
func (f *Face) SetPlanePoints(p0, p1, p2 mgl64.Vec3) error {
	plane := facePlaneFromPoints(p0, p1, p2)
	if !plane.plane.Valid() {
		return fmt.Errorf("set plane points %v %v %v: %w", p0, p1, p2, ErrInvalidPlane)
	}

	f.undoSave()
	f.committed = plane
	f.current = plane
	f.planeChanged()
	return nil
}

// SetPlane replaces the plane with an exact equation
func (f *Face) SetPlane(plane geom.Plane) {
	f.undoSave()
	f.committed = facePlaneFromPlane(plane)
	f.current = f.committed
	f.planeChanged()
}

func (f *Face) SetShader(name string) {
	f.undoSave()
	f.shader = texdef.NewShader(name)
	f.shaderChanged()
}

// SetShaderSize records the texture dimensions used to normalise coordinates
func (f *Face) SetShaderSize(width, height int) {
	f.undoSave()
	f.shader.Width = width
	f.shader.Height = height
	f.shaderChanged()
}

func (f *Face) SetProjection(projection texdef.Projection) {
	f.undoSave()
	f.projection = projection
	f.shaderChanged()
}

// Transform applies m to the committed plane as a pending transform
func (f *Face) Transform(m mgl64.Mat4) {
	f.current = f.committed.transformed(m)
	f.planeChanged()
}

// RevertTransform drops the pending transform
func (f *Face) RevertTransform() {
	f.current = f.committed
	f.planeChanged()
}

// FreezeTransform commits the pending transform
func (f *Face) FreezeTransform() {
	f.undoSave()
	f.committed = f.current
	f.planeChanged()
}

// ExportState captures the plane and texturing
func (f *Face) ExportState() FaceMemento {
	return FaceMemento{
		points:     f.committed.points,
		plane:      f.committed.plane,
		projection: f.projection,
		shader:     f.shader,
	}
}

// ImportState restores a captured state and drops any pending transform
func (f *Face) ImportState(state FaceMemento) {
	f.committed = facePlane{points: state.points, plane: state.plane}
	f.current = f.committed
	f.projection = state.projection
	f.shader = state.shader
	f.planeChanged()
}

// Copy returns a deep copy not attached to any brush
func (f *Face) Copy() *Face {
	face := *f
	face.winding = f.winding.Copy()
	face.owner = nil
	return &face
}

func (f *Face) undoSave() {
	if f.owner != nil {
		f.owner.Events.guard()
		if f.owner.undo != nil {
			f.owner.undo.SaveFace(f, f.ExportState())
		}
	}
}

func (f *Face) planeChanged() {
	if f.owner != nil {
		f.owner.Events.guard()
		f.owner.onPlaneChanged()
	}
}

func (f *Face) shaderChanged() {
	f.planeChanged()
}

// updateCentroid caches the winding centroid
func (f *Face) updateCentroid() {
	f.centroid = f.winding.Centroid()
}
