package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// AABB Utility Function Tests
// =============================================================================

func TestAABBOverlaps_Separated(t *testing.T) {
	tests := []struct {
		name  string
		aabb1 AABB
		aabb2 AABB
	}{
		{
			name:  "Separated on X axis",
			aabb1: AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			aabb2: AABB{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{3, 1, 1}},
		},
		{
			name:  "Separated on Y axis",
			aabb1: AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			aabb2: AABB{Min: mgl64.Vec3{0, -2, 0}, Max: mgl64.Vec3{1, -1, 1}},
		},
		{
			name:  "Separated on Z axis",
			aabb1: AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			aabb2: AABB{Min: mgl64.Vec3{0, 0, 2}, Max: mgl64.Vec3{1, 1, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.aabb1.Overlaps(tt.aabb2) {
				t.Errorf("AABBs should not overlap")
			}
			if tt.aabb2.Overlaps(tt.aabb1) {
				t.Errorf("AABBs should not overlap (symmetry test)")
			}
		})
	}
}

func TestAABBOverlaps_Overlapping(t *testing.T) {
	tests := []struct {
		name  string
		aabb1 AABB
		aabb2 AABB
	}{
		{
			name:  "Identical",
			aabb1: AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			aabb2: AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
		},
		{
			name:  "Containment",
			aabb1: AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{10, 10, 10}},
			aabb2: AABB{Min: mgl64.Vec3{2, 2, 2}, Max: mgl64.Vec3{3, 3, 3}},
		},
		{
			name:  "Touching faces",
			aabb1: AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			aabb2: AABB{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{2, 1, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.aabb1.Overlaps(tt.aabb2) {
				t.Errorf("AABBs should overlap")
			}
			if !tt.aabb2.Overlaps(tt.aabb1) {
				t.Errorf("AABBs should overlap (symmetry test)")
			}
		})
	}
}

func TestEmptyAABBExtend(t *testing.T) {
	box := EmptyAABB()
	if box.Valid() {
		t.Fatal("empty box should not be valid")
	}

	box.Extend(mgl64.Vec3{1, 2, 3})
	if !box.Valid() {
		t.Fatal("box should be valid after one point")
	}
	if box.Min != (mgl64.Vec3{1, 2, 3}) || box.Max != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("box = %v, want zero-sized box at (1,2,3)", box)
	}

	box.Extend(mgl64.Vec3{-1, 5, 0})
	if box.Min != (mgl64.Vec3{-1, 2, 0}) || box.Max != (mgl64.Vec3{1, 5, 3}) {
		t.Errorf("box = %v after second point", box)
	}
}

func TestAABBOriginExtents(t *testing.T) {
	box := AABBFromOriginExtents(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{8, 4, 2})
	if box.Min != (mgl64.Vec3{-7, -3, -1}) || box.Max != (mgl64.Vec3{9, 5, 3}) {
		t.Fatalf("box = %v", box)
	}
	if box.Origin() != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("Origin() = %v", box.Origin())
	}
	if box.Extents() != (mgl64.Vec3{8, 4, 2}) {
		t.Errorf("Extents() = %v", box.Extents())
	}
	if !box.ContainsPoint(mgl64.Vec3{9, 5, 3}) {
		t.Errorf("corner should be contained")
	}
	if box.ContainsPoint(mgl64.Vec3{9.5, 0, 0}) {
		t.Errorf("outside point should not be contained")
	}
}

func TestAABBUnion(t *testing.T) {
	a := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}
	b := AABB{Min: mgl64.Vec3{-1, 2, 0}, Max: mgl64.Vec3{0, 3, 4}}

	u := a.Union(b)
	if u.Min != (mgl64.Vec3{-1, 0, 0}) || u.Max != (mgl64.Vec3{1, 3, 4}) {
		t.Errorf("Union = %v", u)
	}
	if got := a.Union(EmptyAABB()); got != a {
		t.Errorf("union with empty = %v, want %v", got, a)
	}
	if got := EmptyAABB().Union(a); got != a {
		t.Errorf("empty union a = %v, want %v", got, a)
	}
}
