// Package winding implements the ordered vertex loop of one brush face and
// the half-space clip used to derive it.
//
// Every vertex records the face on the other side of the edge leaving it:
// edge [i, Next(i)] borders face Vertex(i).Adjacent. The brush relies on this
// tag to rebuild face adjacency after clipping.
package winding

import (
	"github.com/akmonengine/brush/geom"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// Unbounded tags an edge that still lies on the infinite starting polygon.
	Unbounded = -1

	// NotFound is returned by lookups that find no vertex.
	NotFound = -1
)

// Vertex is one corner of a winding
type Vertex struct {
	Position mgl64.Vec3
	Texcoord mgl64.Vec2
	Normal   mgl64.Vec3
	// Face bordering the edge from this vertex to the next one
	Adjacent int
}

// Winding is a cyclic sequence of vertices; index arithmetic wraps.
type Winding []Vertex

// Wrap maps any index onto the winding. Undefined for an empty winding.
func (w Winding) Wrap(i int) int {
	n := len(w)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Next returns the index following i
func (w Winding) Next(i int) int {
	if i+1 == len(w) {
		return 0
	}
	return i + 1
}

// Prev returns the index preceding i
func (w Winding) Prev(i int) int {
	if i == 0 {
		return len(w) - 1
	}
	return i - 1
}

// FindAdjacent returns the first vertex whose outgoing edge borders face
func (w Winding) FindAdjacent(face int) int {
	for i := range w {
		if w[i].Adjacent == face {
			return i
		}
	}
	return NotFound
}

// IsBounded reports whether no edge lies on the infinite envelope
func (w Winding) IsBounded() bool {
	for i := range w {
		if w[i].Adjacent == Unbounded {
			return false
		}
	}
	return true
}

// AABB returns the bounds of the vertex positions
func (w Winding) AABB() geom.AABB {
	box := geom.EmptyAABB()
	for i := range w {
		box.Extend(w[i].Position)
	}
	return box
}

// Centroid returns the mean of the vertex positions
func (w Winding) Centroid() mgl64.Vec3 {
	if len(w) == 0 {
		return mgl64.Vec3{}
	}
	var sum mgl64.Vec3
	for i := range w {
		sum = sum.Add(w[i].Position)
	}
	return sum.Mul(1.0 / float64(len(w)))
}

// Plane returns the Newell plane of the polygon. Windings with fewer than
// three vertices give an invalid plane.
func (w Winding) Plane() geom.Plane {
	if len(w) < 3 {
		return geom.Plane{}
	}
	var normal mgl64.Vec3
	for i := range w {
		a := w[i].Position
		b := w[w.Next(i)].Position
		normal[0] += (a.Y() - b.Y()) * (a.Z() + b.Z())
		normal[1] += (a.Z() - b.Z()) * (a.X() + b.X())
		normal[2] += (a.X() - b.X()) * (a.Y() + b.Y())
	}
	length := normal.Len()
	if length == 0 {
		return geom.Plane{}
	}
	normal = normal.Mul(1.0 / length)
	return geom.Plane{Normal: normal, Dist: normal.Dot(w.Centroid())}
}

// Erase removes vertex i, keeping the order of the others
func (w *Winding) Erase(i int) {
	s := *w
	copy(s[i:], s[i+1:])
	*w = s[:len(s)-1]
}

// Copy returns a winding that shares no storage with w
func (w Winding) Copy() Winding {
	if w == nil {
		return nil
	}
	out := make(Winding, len(w))
	copy(out, w)
	return out
}
