package brush

import (
	"github.com/akmonengine/brush/geom"
	"github.com/akmonengine/brush/winding"
	"github.com/go-gl/mathgl/mgl64"
)

// updateUnique marks the faces whose plane is not shadowed by a tighter
// plane with the same normal. Distances within geom.PlaneEpsilon tie and the
// lower index wins.
func (b *Brush) updateUnique() {
	for i := range b.faces {
		b.faceAt(i).unique = b.planeUnique(i)
	}
}

// planeUnique reports whether no other face bounds the same half-space
// more tightly than face index.
func (b *Brush) planeUnique(index int) bool {
	plane := b.faceAt(index).Plane3()
	for i := range b.faces {
		if i == index {
			continue
		}
		other := b.faceAt(i).Plane3()
		if !plane.SameNormal(other) {
			continue
		}
		if plane.Equal(other) {
			if i < index {
				return false
			}
		} else if other.Dist < plane.Dist {
			return false
		}
	}
	return true
}

// windingForClipPlane clips a polygon larger than the world on plane by
// every other usable face plane, writing the result into dst.
func (b *Brush) windingForClipPlane(dst *winding.Winding, plane geom.Plane) {
	buffer := &b.scratch
	swap := 0
	buffer[swap] = winding.InfiniteInto(plane, b.config.MaxWorldCoord+1, buffer[swap])

	for i := range b.faces {
		clip := b.faceAt(i)
		clipPlane := clip.Plane3()
		if clipPlane.Equal(plane) ||
			!clipPlane.Valid() ||
			!clip.unique ||
			plane.Equal(clipPlane.Flip()) {
			continue
		}
		if len(buffer[swap]) == 0 {
			break
		}

		buffer[1-swap] = buffer[swap].ClipInto(clipPlane, i, buffer[1-swap])
		swap = 1 - swap
	}

	*dst = append((*dst)[:0], buffer[swap]...)
}

// buildWindings derives every face polygon and cleans up the adjacency
// graph. It reports whether the face planes leave the brush unbounded.
func (b *Brush) buildWindings() (degenerate bool) {
	b.aabb = geom.EmptyAABB()
	b.updateUnique()

	for i := range b.faces {
		f := b.faceAt(i)
		if !f.Plane3().Valid() || !f.unique {
			f.winding = f.winding[:0]
			continue
		}

		b.windingForClipPlane(&f.winding, f.Plane3())
		for _, v := range f.winding {
			b.aabb.Extend(v.Position)
		}
		f.EmitTextureCoordinates()
	}

	if !b.isBounded() {
		return true
	}

	b.removeDegenerateEdges()
	b.removeDegenerateFaces()
	b.removeDuplicateEdges()
	b.verifyConnectivityGraph()

	return false
}

func (b *Brush) isBounded() bool {
	for i := range b.faces {
		if !b.faceAt(i).IsBounded() {
			return false
		}
	}
	return true
}

func edgeDegenerate(a, b mgl64.Vec3) bool {
	d := b.Sub(a)
	return d.Dot(d) < geom.OnEpsilon*geom.OnEpsilon
}

// removeDegenerateEdges collapses edges shorter than geom.OnEpsilon, together
// with the matching edge on the adjacent face.
func (b *Brush) removeDegenerateEdges() {
	for i := range b.faces {
		w := &b.faceAt(i).winding
		for j := 0; j < len(*w); {
			next := w.Next(j)
			if !edgeDegenerate((*w)[j].Position, (*w)[next].Position) {
				j++
				continue
			}

			adjacent := (*w)[j].Adjacent
			if adjacent != i && b.validFaceIndex(adjacent) {
				other := &b.faceAt(adjacent).winding
				if k := other.FindAdjacent(i); k != winding.NotFound {
					other.Erase(k)
				}
			}
			w.Erase(j)
		}
	}
}

// removeDegenerateFaces drops two-vertex windings and joins the faces on
// either side of them.
// Faces reduced to two vertices by the later passes are not revisited and
// show up as an Euler mismatch.
func (b *Brush) removeDegenerateFaces() {
	for i := range b.faces {
		degen := &b.faceAt(i).winding
		if len(*degen) != 2 {
			continue
		}

		first, second := (*degen)[0].Adjacent, (*degen)[1].Adjacent
		b.redirectAdjacent(first, i, second)
		b.redirectAdjacent(second, i, first)

		*degen = (*degen)[:0]
	}
}

// redirectAdjacent retags the edge of face that borders from so that it
// borders to instead.
func (b *Brush) redirectAdjacent(face, from, to int) {
	if !b.validFaceIndex(face) {
		return
	}
	w := b.faceAt(face).winding
	if k := w.FindAdjacent(from); k != winding.NotFound {
		w[k].Adjacent = to
	}
}

// removeDuplicateEdges merges consecutive edges bordering the same face
func (b *Brush) removeDuplicateEdges() {
	for i := range b.faces {
		w := &b.faceAt(i).winding
		for j := 0; j < len(*w); {
			next := w.Next(j)
			if (*w)[j].Adjacent == (*w)[next].Adjacent {
				w.Erase(next)
			} else {
				j++
			}
		}
	}
}

// verifyConnectivityGraph removes every edge whose adjacent face does not
// border it back.
func (b *Brush) verifyConnectivityGraph() {
	for i := range b.faces {
		w := &b.faceAt(i).winding
		for j := 0; j < len(*w); {
			adjacent := (*w)[j].Adjacent
			if adjacent == i ||
				!b.validFaceIndex(adjacent) ||
				b.faceAt(adjacent).winding.FindAdjacent(i) == winding.NotFound {
				w.Erase(j)
			} else {
				j++
			}
		}
	}
}

// clearBRep empties the derived tables and every winding
func (b *Brush) clearBRep() {
	b.aabb = geom.EmptyAABB()
	b.uniqueVertices = b.uniqueVertices[:0]
	b.uniqueEdges = b.uniqueEdges[:0]
	b.faceCentroids = b.faceCentroids[:0]
	b.edgeIndices = b.edgeIndices[:0]
	b.edgeFaces = b.edgeFaces[:0]
	b.selectableVertices = b.selectableVertices[:0]
	b.selectableEdges = b.selectableEdges[:0]

	for i := range b.faces {
		f := b.faceAt(i)
		f.winding = f.winding[:0]
		f.centroid = mgl64.Vec3{}
	}
}

// buildBRep rebuilds the windings, then the unique vertex and edge tables
// and the edge adjacency from them.
func (b *Brush) buildBRep() {
	b.builds++
	degenerate := b.buildWindings()

	contributing, vertexCount := 0, 0
	for i := range b.faces {
		f := b.faceAt(i)
		if f.Contributes() {
			contributing++
		}
		vertexCount += len(f.winding)
	}

	// every edge is listed once by each of its faces, so a closed solid has
	// an even vertex count
	if degenerate || contributing < 4 || vertexCount%2 != 0 {
		b.degenerate = true
		if b.config.LogDegenerate {
			Logger().Warn("brush: degenerate",
				"faces", len(b.faces),
				"contributing", contributing,
				"vertices", vertexCount,
				"unbounded", degenerate)
		}
		b.clearBRep()
		b.Events.emit(VertexClearEvent{})
		b.Events.emit(EdgeClearEvent{})
		b.Events.emit(ConnectivityChangedEvent{})
		return
	}
	b.degenerate = false

	faceVertices := make([]FaceVertexID, 0, vertexCount)
	offsets := make([]int, len(b.faces))
	for i := range b.faces {
		offsets[i] = len(faceVertices)
		for j := range b.faceAt(i).winding {
			faceVertices = append(faceVertices, FaceVertexID{Face: i, Vertex: j})
		}
	}
	absolute := func(id FaceVertexID) int {
		return offsets[id.Face] + id.Vertex
	}

	ring := make([]int, len(faceVertices))

	// edges
	for k, id := range faceVertices {
		ring[k] = absolute(b.nextEdge(id))
	}
	edgeRepresentatives, edgeOf := dedupRings(ring)

	b.selectableEdges = b.selectableEdges[:0]
	b.edgeFaces = b.edgeFaces[:0]
	b.uniqueEdges = b.uniqueEdges[:0]
	b.Events.emit(EdgeClearEvent{})
	for _, k := range edgeRepresentatives {
		id := faceVertices[k]
		w := b.faceAt(id.Face).winding
		b.selectableEdges = append(b.selectableEdges, id)
		b.edgeFaces = append(b.edgeFaces, EdgeFaces{First: id.Face, Second: w[id.Vertex].Adjacent})
		b.uniqueEdges = append(b.uniqueEdges, midpoint(w[id.Vertex].Position, w[w.Next(id.Vertex)].Position))
		b.Events.emit(EdgePushBackEvent{Edge: id})
	}

	// vertices
	for k, id := range faceVertices {
		ring[k] = absolute(b.nextVertex(id))
	}
	vertexRepresentatives, vertexOf := dedupRings(ring)

	b.selectableVertices = b.selectableVertices[:0]
	b.uniqueVertices = b.uniqueVertices[:0]
	b.Events.emit(VertexClearEvent{})
	for _, k := range vertexRepresentatives {
		id := faceVertices[k]
		b.selectableVertices = append(b.selectableVertices, id)
		b.uniqueVertices = append(b.uniqueVertices, b.faceAt(id.Face).winding[id.Vertex].Position)
		b.Events.emit(VertexPushBackEvent{Vertex: id})
	}

	vertices, edges := len(b.uniqueVertices), len(b.uniqueEdges)
	if vertices+contributing-edges != 2 {
		Logger().Error("brush: B-Rep breaks V - E + F = 2",
			"vertices", vertices,
			"edges", edges,
			"faces", contributing)
	}

	b.edgeIndices = b.edgeIndices[:0]
	b.edgeIndices = append(b.edgeIndices, make([]EdgeIndex, edges)...)
	for k, id := range faceVertices {
		w := b.faceAt(id.Face).winding
		b.edgeIndices[edgeOf[k]] = EdgeIndex{
			First:  vertexOf[k],
			Second: vertexOf[offsets[id.Face]+w.Next(id.Vertex)],
		}
	}

	b.faceCentroids = b.faceCentroids[:0]
	for i := range b.faces {
		f := b.faceAt(i)
		f.updateCentroid()
		b.faceCentroids = append(b.faceCentroids, f.centroid)
	}

	Logger().Debug("brush: rebuilt B-Rep",
		"faces", len(b.faces),
		"contributing", contributing,
		"vertices", vertices,
		"edges", edges)

	b.Events.emit(ConnectivityChangedEvent{})
	b.Events.emit(VerifyEvent{Brush: b})
}

func midpoint(a, b mgl64.Vec3) mgl64.Vec3 {
	return a.Add(b).Mul(0.5)
}
