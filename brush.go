// Package brush builds the boundary representation of convex brushes: solids
// given as an intersection of half-spaces, as edited in level editors.
//
// A Brush holds an ordered list of faces, each carrying a plane. Evaluating
// the brush clips one polygon per plane against every other plane and
// derives the unique vertices, the unique edges and the face adjacency graph.
// Evaluation is lazy and only runs after a face or the face list changed.
package brush

import (
	"fmt"
	"slices"

	"github.com/akmonengine/brush/geom"
	"github.com/akmonengine/brush/texdef"
	"github.com/akmonengine/brush/winding"
	"github.com/go-gl/mathgl/mgl64"
)

// Brush is a convex solid bounded by the planes of its faces.
// A Brush is not safe for concurrent use.
type Brush struct {
	config Config

	arena *faceArena
	faces []FaceHandle

	planesDirty      bool
	transformPending bool
	degenerate       bool

	aabb               geom.AABB
	uniqueVertices     []mgl64.Vec3
	uniqueEdges        []mgl64.Vec3
	faceCentroids      []mgl64.Vec3
	edgeIndices        []EdgeIndex
	edgeFaces          []EdgeFaces
	selectableVertices []FaceVertexID
	selectableEdges    []FaceVertexID

	// ping-pong storage for windingForClipPlane
	scratch [2]winding.Winding

	Events Events
	undo   UndoObserver

	builds int
}

// NewBrush returns an empty brush. A zero MaxWorldCoord is replaced by the default.
func NewBrush(config Config) *Brush {
	b := &Brush{
		config:     config.orDefault(),
		arena:      &faceArena{},
		aabb:       geom.EmptyAABB(),
		degenerate: true,
	}
	return b
}

// Copy returns a deep copy of the brush faces. Listeners and the undo
// observer are not copied.
func (b *Brush) Copy() *Brush {
	other := NewBrush(b.config)
	other.faces = make([]FaceHandle, 0, len(b.faces))
	for i := range b.faces {
		other.attach(b.faceAt(i).Copy())
	}
	other.planesDirty = true
	return other
}

func (b *Brush) Config() Config {
	return b.config
}

// AsBrush lets a brush sit in a Map
func (b *Brush) AsBrush() (*Brush, bool) {
	return b, true
}

func (b *Brush) faceAt(i int) *Face {
	return b.arena.get(b.faces[i])
}

func (b *Brush) validFaceIndex(i int) bool {
	return i >= 0 && i < len(b.faces)
}

// attach stores face at the end of the list without notifying anyone
func (b *Brush) attach(face *Face) {
	face.owner = b
	b.faces = append(b.faces, b.arena.insert(face))
}

// pushBack appends face and notifies observers
func (b *Brush) pushBack(face *Face) (*Face, error) {
	b.Events.guard()
	if len(b.faces) >= MaxFaces {
		return nil, fmt.Errorf("add face %d: %w", len(b.faces), ErrMaxFaces)
	}

	b.undoSave()
	b.attach(face)
	b.Events.emit(PushBackEvent{Face: face})
	b.onPlaneChanged()

	return face, nil
}

// AddFace appends a face with the default shader and projection
func (b *Brush) AddFace(plane geom.Plane) (*Face, error) {
	return b.AddTexturedFace(plane, texdef.DefaultProjection(), texdef.DefaultShaderName)
}

// AddTexturedFace appends a face with an exact plane equation
func (b *Brush) AddTexturedFace(plane geom.Plane, projection texdef.Projection, shader string) (*Face, error) {
	return b.pushBack(newFace(facePlaneFromPlane(plane), shader, projection))
}

// AddPlane appends a face through three points. The normal follows the
// right-hand rule and must point out of the solid.
func (b *Brush) AddPlane(p0, p1, p2 mgl64.Vec3, shader string, projection texdef.Projection) (*Face, error) {
	plane := facePlaneFromPoints(p0, p1, p2)
	if !plane.plane.Valid() {
		return nil, fmt.Errorf("add plane %v %v %v: %w", p0, p1, p2, ErrInvalidPlane)
	}
	return b.pushBack(newFace(plane, shader, projection))
}

// AddFaceCopy appends a deep copy of face
func (b *Brush) AddFaceCopy(face *Face) (*Face, error) {
	return b.pushBack(face.Copy())
}

// PopBack removes the last face
func (b *Brush) PopBack() {
	b.Events.guard()
	if len(b.faces) == 0 {
		return
	}

	b.undoSave()
	last := len(b.faces) - 1
	b.arena.release(b.faces[last])
	b.faces = b.faces[:last]
	b.Events.emit(PopBackEvent{})
	b.onPlaneChanged()
}

// EraseFace removes face i, keeping the order of the others
func (b *Brush) EraseFace(i int) error {
	b.Events.guard()
	if !b.validFaceIndex(i) {
		return fmt.Errorf("erase face %d of %d: %w", i, len(b.faces), ErrFaceIndex)
	}

	b.undoSave()
	b.arena.release(b.faces[i])
	b.faces = slices.Delete(b.faces, i, i+1)
	b.Events.emit(EraseEvent{Index: i})
	b.onPlaneChanged()

	return nil
}

// Clear removes every face
func (b *Brush) Clear() {
	b.Events.guard()
	b.undoSave()
	for _, h := range b.faces {
		b.arena.release(h)
	}
	b.faces = b.faces[:0]
	b.Events.emit(ClearEvent{})
	b.onPlaneChanged()
}

// Reserve grows the face list capacity
func (b *Brush) Reserve(n int) {
	b.Events.guard()
	if n > len(b.faces) {
		b.faces = slices.Grow(b.faces, n-len(b.faces))
	}
	b.Events.emit(ReserveEvent{Size: n})
}

func (b *Brush) NumFaces() int {
	return len(b.faces)
}

// Face returns face i, or nil when out of range
func (b *Brush) Face(i int) *Face {
	if !b.validFaceIndex(i) {
		return nil
	}
	return b.faceAt(i)
}

// Faces returns the faces in insertion order
func (b *Brush) Faces() []*Face {
	faces := make([]*Face, len(b.faces))
	for i := range b.faces {
		faces[i] = b.faceAt(i)
	}
	return faces
}

// RemoveEmptyFaces evaluates the brush and erases the faces that do not
// contribute to it.
func (b *Brush) RemoveEmptyFaces() {
	b.EvaluateBRep()

	for i := 0; i < len(b.faces); {
		if !b.faceAt(i).Contributes() {
			_ = b.EraseFace(i)
		} else {
			i++
		}
	}
}

// SetShader applies a shader to every face
func (b *Brush) SetShader(name string) {
	for i := range b.faces {
		b.faceAt(i).SetShader(name)
	}
}

// ExportState snapshots the face list. The caller must Release the memento
// once it is no longer needed.
func (b *Brush) ExportState() *Memento {
	return newMemento(b.arena, b.faces)
}

// ImportState replaces the face list by a snapshot taken from this brush
func (b *Brush) ImportState(state *Memento) error {
	b.Events.guard()
	if state == nil || state.arena != b.arena {
		return fmt.Errorf("import state: %w", ErrForeignMemento)
	}
	if state.released {
		return fmt.Errorf("import state: %w", ErrStaleMemento)
	}
	for _, h := range state.handles {
		if !b.arena.valid(h) {
			return fmt.Errorf("import state: face slot %d: %w", h.index, ErrStaleMemento)
		}
	}

	for _, h := range state.handles {
		b.arena.retain(h)
	}
	for _, h := range b.faces {
		b.arena.release(h)
	}
	b.faces = append(b.faces[:0], state.handles...)

	b.Events.emit(ClearEvent{})
	for i := range b.faces {
		face := b.faceAt(i)
		face.owner = b
		b.Events.emit(PushBackEvent{Face: face})
	}
	b.onPlaneChanged()

	return nil
}

// SetUndoObserver registers the observer offered the brush state before
// every mutation. nil disables undo capture.
func (b *Brush) SetUndoObserver(observer UndoObserver) {
	b.undo = observer
}

func (b *Brush) undoSave() {
	if b.undo != nil {
		b.undo.SaveBrush(b, b.ExportState())
	}
}

// Transform applies m to every face as a pending transform
func (b *Brush) Transform(m mgl64.Mat4) {
	b.Events.guard()
	for i := range b.faces {
		b.faceAt(i).Transform(m)
	}
	b.transformPending = true
	b.onPlaneChanged()
}

// TransformBy applies a position, rotation and scale as a pending transform
func (b *Brush) TransformBy(t geom.Transform) {
	b.Transform(t.Matrix())
}

// RevertTransform drops the pending transform
func (b *Brush) RevertTransform() {
	b.Events.guard()
	for i := range b.faces {
		b.faceAt(i).RevertTransform()
	}
	b.transformPending = false
	b.onPlaneChanged()
}

// FreezeTransform commits the pending transform
func (b *Brush) FreezeTransform() {
	b.Events.guard()
	b.undoSave()
	for i := range b.faces {
		b.faceAt(i).FreezeTransform()
	}
	b.transformPending = false
	b.onPlaneChanged()
}

// Translate moves the brush and commits the move
func (b *Brush) Translate(v mgl64.Vec3) {
	b.Transform(mgl64.Translate3D(v.X(), v.Y(), v.Z()))
	b.FreezeTransform()
}

func (b *Brush) onPlaneChanged() {
	b.planesDirty = true
}

// PlaneChanged reports whether the B-Rep is out of date
func (b *Brush) PlaneChanged() bool {
	return b.planesDirty
}

// TransformChanged reports whether a transform is pending
func (b *Brush) TransformChanged() bool {
	return b.transformPending
}

// EvaluateBRep rebuilds the B-Rep if a plane changed since the last build
func (b *Brush) EvaluateBRep() {
	if !b.planesDirty {
		return
	}
	b.Events.guard()
	b.planesDirty = false
	b.buildBRep()
}

// evaluate refreshes the B-Rep for the read accessors, except while
// listeners are being notified.
func (b *Brush) evaluate() {
	if b.Events.dispatching == 0 {
		b.EvaluateBRep()
	}
}

// LocalAABB returns the bounds of the face windings
func (b *Brush) LocalAABB() geom.AABB {
	b.evaluate()
	return b.aabb
}

// Degenerate reports whether the last build produced no valid solid
func (b *Brush) Degenerate() bool {
	b.evaluate()
	return b.degenerate
}

// ContributingFaces returns the number of faces with a non-empty polygon
func (b *Brush) ContributingFaces() int {
	b.evaluate()
	n := 0
	for i := range b.faces {
		if b.faceAt(i).Contributes() {
			n++
		}
	}
	return n
}

// The slices below belong to the brush and stay valid until the next build.

// UniqueVertices returns one position per brush corner
func (b *Brush) UniqueVertices() []mgl64.Vec3 {
	b.evaluate()
	return b.uniqueVertices
}

// UniqueEdges returns the midpoint of every brush edge
func (b *Brush) UniqueEdges() []mgl64.Vec3 {
	b.evaluate()
	return b.uniqueEdges
}

func (b *Brush) FaceCentroids() []mgl64.Vec3 {
	b.evaluate()
	return b.faceCentroids
}

// EdgeIndices returns both unique vertex indices of every edge
func (b *Brush) EdgeIndices() []EdgeIndex {
	b.evaluate()
	return b.edgeIndices
}

// EdgeFaces returns both face indices of every edge
func (b *Brush) EdgeFaces() []EdgeFaces {
	b.evaluate()
	return b.edgeFaces
}

// SelectableVertices returns one winding vertex per brush corner
func (b *Brush) SelectableVertices() []FaceVertexID {
	b.evaluate()
	return b.selectableVertices
}

// SelectableEdges returns one winding vertex per brush edge, the start of the edge
func (b *Brush) SelectableEdges() []FaceVertexID {
	b.evaluate()
	return b.selectableEdges
}
