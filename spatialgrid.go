package brush

import (
	"math"
	"slices"

	"github.com/akmonengine/brush/geom"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultCellSize = 256.0
	DefaultNumCells = 1024

	// maxCellsPerBrush bounds the cells one brush is hashed into; larger
	// brushes are kept aside and tested against every query.
	maxCellsPerBrush = 512
)

// CellKey - coordinates of a cell in 3D space
type CellKey struct {
	X, Y, Z int
}

// Cell - brush indices hashed to one cell
type Cell struct {
	brushIndices []int
}

// Pair - two brushes whose bounds overlap
type Pair struct {
	BrushA *Brush
	BrushB *Brush
}

// SpatialGrid - uniform hashed grid over brush bounds
type SpatialGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int

	oversized []int
}

// NewSpatialGrid - creates a grid with numCells buckets, rounded up to a
// power of two.
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].brushIndices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

// nextPowerOfTwo - rounds up to the next power of two
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert - hashes a brush index into every cell its bounds cover
func (sg *SpatialGrid) Insert(brushIndex int, bounds geom.AABB) {
	minCell := sg.worldToCell(bounds.Min)
	maxCell := sg.worldToCell(bounds.Max)

	if cellCount(minCell, maxCell) > maxCellsPerBrush {
		sg.oversized = append(sg.oversized, brushIndex)
		return
	}

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellIdx := sg.hashCell(CellKey{x, y, z})
				cell := &sg.cells[cellIdx]
				// a brush covering neighbouring cells that hash alike is listed once
				if n := len(cell.brushIndices); n > 0 && cell.brushIndices[n-1] == brushIndex {
					continue
				}
				cell.brushIndices = append(cell.brushIndices, brushIndex)
			}
		}
	}
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].brushIndices = sg.cells[i].brushIndices[:0]
	}
	sg.oversized = sg.oversized[:0]
}

// Query - returns the sorted indices of the brushes hashed to a cell
// covered by bounds. Candidates may not overlap bounds.
func (sg *SpatialGrid) Query(bounds geom.AABB) []int {
	seen := make(map[int]bool)
	for _, i := range sg.oversized {
		seen[i] = true
	}

	minCell := sg.worldToCell(bounds.Min)
	maxCell := sg.worldToCell(bounds.Max)
	if cellCount(minCell, maxCell) > len(sg.cells) {
		// the query covers every bucket
		for i := range sg.cells {
			for _, idx := range sg.cells[i].brushIndices {
				seen[idx] = true
			}
		}
	} else {
		for x := minCell.X; x <= maxCell.X; x++ {
			for y := minCell.Y; y <= maxCell.Y; y++ {
				for z := minCell.Z; z <= maxCell.Z; z++ {
					for _, idx := range sg.cells[sg.hashCell(CellKey{x, y, z})].brushIndices {
						seen[idx] = true
					}
				}
			}
		}
	}

	indices := make([]int, 0, len(seen))
	for idx := range seen {
		indices = append(indices, idx)
	}
	slices.Sort(indices)
	return indices
}

// FindPairs - returns every pair of brushes with overlapping bounds, each
// pair once and in index order.
func (sg *SpatialGrid) FindPairs(brushes []*Brush, bounds []geom.AABB) []Pair {
	pairs := make([]Pair, 0, len(brushes)/2)

	for brushIdx := range brushes {
		if !bounds[brushIdx].Valid() {
			continue
		}
		for _, otherIdx := range sg.Query(bounds[brushIdx]) {
			// deterministic order, avoids (A,B) and (B,A)
			if otherIdx <= brushIdx {
				continue
			}
			if bounds[brushIdx].Overlaps(bounds[otherIdx]) {
				pairs = append(pairs, Pair{BrushA: brushes[brushIdx], BrushB: brushes[otherIdx]})
			}
		}
	}

	return pairs
}

// worldToCell - converts a world position to cell coordinates
func (sg *SpatialGrid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / sg.cellSize)),
		Y: int(math.Floor(pos.Y() / sg.cellSize)),
		Z: int(math.Floor(pos.Z() / sg.cellSize)),
	}
}

// hashCell - hashes a cell to an index in the array
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.cellMask
}

func cellCount(minCell, maxCell CellKey) int {
	dx := maxCell.X - minCell.X + 1
	dy := maxCell.Y - minCell.Y + 1
	dz := maxCell.Z - minCell.Z + 1
	if dx > maxCellsPerBrush || dy > maxCellsPerBrush || dz > maxCellsPerBrush {
		return math.MaxInt
	}
	return dx * dy * dz
}
