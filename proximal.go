package brush

import "github.com/akmonengine/brush/winding"

// FaceVertexID addresses one vertex of one face winding
type FaceVertexID struct {
	Face   int
	Vertex int
}

// EdgeFaces are the two faces meeting along an edge
type EdgeFaces struct {
	First  int
	Second int
}

// EdgeIndex are the two unique vertices an edge joins
type EdgeIndex struct {
	First  int
	Second int
}

// nextEdge returns the same edge seen from the adjacent face. It returns id
// itself when the adjacency is broken.
func (b *Brush) nextEdge(id FaceVertexID) FaceVertexID {
	adjacent := b.faceAt(id.Face).winding[id.Vertex].Adjacent
	if !b.validFaceIndex(adjacent) {
		return id
	}

	k := b.faceAt(adjacent).winding.FindAdjacent(id.Face)
	if k == winding.NotFound {
		return id
	}

	return FaceVertexID{Face: adjacent, Vertex: k}
}

// nextVertex returns the same corner seen from the next face around it
func (b *Brush) nextVertex(id FaceVertexID) FaceVertexID {
	edge := b.nextEdge(id)
	w := b.faceAt(edge.Face).winding
	return FaceVertexID{Face: edge.Face, Vertex: w.Next(edge.Vertex)}
}

// dedupRings groups nodes into rings, next[i] being the successor of node i.
// Two nodes belong to the same group when one reaches the other within
// MaxFaces steps. Groups are numbered in order of their first node, which
// becomes the representative.
func dedupRings(next []int) (representatives []int, group []int) {
	group = make([]int, len(next))
	for i := range group {
		group[i] = -1
	}

	var path []int
	for i := range next {
		if group[i] != -1 {
			continue
		}

		// walk until the ring closes or joins an earlier group
		path = append(path[:0], i)
		label := -1
		for v, steps := next[i], 0; steps < MaxFaces; v, steps = next[v], steps+1 {
			if v == i || v < 0 || v >= len(next) {
				break
			}
			if group[v] != -1 {
				label = group[v]
				break
			}
			path = append(path, v)
		}

		if label == -1 {
			label = len(representatives)
			representatives = append(representatives, i)
		}
		for _, v := range path {
			group[v] = label
		}
	}

	return representatives, group
}
