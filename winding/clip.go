package winding

import (
	"github.com/akmonengine/brush/geom"
)

// Infinite returns a square lying on plane with the given half-extent,
// wound counter-clockwise seen from the front. All edges are Unbounded.
func Infinite(plane geom.Plane, extent float64) Winding {
	return InfiniteInto(plane, extent, nil)
}

// InfiniteInto is Infinite writing into dst's storage
func InfiniteInto(plane geom.Plane, extent float64, dst Winding) Winding {
	right, up := plane.Basis()
	origin := plane.Origin()
	right = right.Mul(extent)
	up = up.Mul(extent)

	dst = append(dst[:0],
		Vertex{Position: origin.Sub(right).Sub(up), Normal: plane.Normal, Adjacent: Unbounded},
		Vertex{Position: origin.Add(right).Sub(up), Normal: plane.Normal, Adjacent: Unbounded},
		Vertex{Position: origin.Add(right).Add(up), Normal: plane.Normal, Adjacent: Unbounded},
		Vertex{Position: origin.Sub(right).Add(up), Normal: plane.Normal, Adjacent: Unbounded},
	)
	return dst
}

// Clip returns the part of w lying behind plane. Edges created along the
// plane are tagged with adjacent.
func (w Winding) Clip(plane geom.Plane, adjacent int) Winding {
	return w.ClipInto(plane, adjacent, make(Winding, 0, len(w)+1))
}

// ClipInto is Clip writing into dst's storage. dst must not alias w.
//
// Vertices within geom.OnEpsilon of the plane are ON. When no vertex is in
// front, w is copied unchanged, so a corner lying on several planes keeps the
// tags it already has. When every vertex is in front the result is empty.
func (w Winding) ClipInto(plane geom.Plane, adjacent int, dst Winding) Winding {
	dst = dst[:0]
	if len(w) == 0 {
		return dst
	}

	distances := make([]float64, len(w))
	sides := make([]geom.Side, len(w))
	front := 0
	for i := range w {
		distances[i] = plane.DistanceTo(w[i].Position)
		sides[i] = geom.Classify(distances[i], geom.OnEpsilon)
		if sides[i] == geom.SideFront {
			front++
		}
	}

	if front == 0 {
		return append(dst, w...)
	}
	if front == len(w) {
		return dst
	}

	for i := range w {
		next := w.Next(i)
		vertex := w[i]
		side, nextSide := sides[i], sides[next]

		if side == geom.SideOn {
			if nextSide != geom.SideBack {
				// the outgoing edge now runs along the clip plane
				vertex.Adjacent = adjacent
			}
			dst = append(dst, vertex)
			continue
		}

		if side == geom.SideBack {
			dst = append(dst, vertex)
		}

		if nextSide == geom.SideOn || nextSide == side {
			continue
		}

		// edge crosses the clip plane
		mid := vertex
		mid.Position = plane.IntersectSegment(vertex.Position, w[next].Position, distances[i], distances[next])
		if side == geom.SideBack {
			// end of the kept part of the edge, the new edge follows the plane
			mid.Adjacent = adjacent
		}
		dst = append(dst, mid)
	}

	return dst
}
