package brush

import "github.com/akmonengine/brush/geom"

// DEFAULT_WORKERS is the number of goroutines EvaluateAll uses by default
const DEFAULT_WORKERS = 1

// Node is anything a map holds. Only brushes take part in B-Rep evaluation.
type Node interface {
	AsBrush() (*Brush, bool)
}

type Map struct {
	// List of all nodes, in insertion order
	Nodes  []Node
	Config Config
	// Goroutines used by EvaluateAll. Brushes are independent, but with more
	// than one worker the listeners of different brushes run concurrently.
	Workers     int
	SpatialGrid *SpatialGrid
}

// NewMap returns an empty map sharing config with the brushes it creates
func NewMap(config Config) (*Map, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Map{
		Config:      config,
		Workers:     DEFAULT_WORKERS,
		SpatialGrid: NewSpatialGrid(DefaultCellSize, DefaultNumCells),
	}, nil
}

// NewBrush creates an empty brush with the map configuration and adds it
func (m *Map) NewBrush() *Brush {
	b := NewBrush(m.Config)
	m.AddNode(b)
	return b
}

// AddNode adds a node to the map
func (m *Map) AddNode(node Node) {
	m.Nodes = append(m.Nodes, node)
}

// RemoveNode removes a node from the map
func (m *Map) RemoveNode(node Node) {
	k := -1
	for i, n := range m.Nodes {
		if n == node {
			k = i
			break
		}
	}

	if k != -1 {
		m.Nodes = append(m.Nodes[:k], m.Nodes[k+1:]...)
	}
}

// Brushes returns the brush nodes in insertion order
func (m *Map) Brushes() []*Brush {
	brushes := make([]*Brush, 0, len(m.Nodes))
	for _, n := range m.Nodes {
		if b, ok := n.AsBrush(); ok {
			brushes = append(brushes, b)
		}
	}
	return brushes
}

// EvaluateAll rebuilds every brush whose planes changed
func (m *Map) EvaluateAll() {
	m.evaluate(m.Brushes())
}

func (m *Map) evaluate(brushes []*Brush) {
	task(max(DEFAULT_WORKERS, m.Workers), brushes, func(b *Brush) {
		b.EvaluateBRep()
	})
}

// Bounds returns the union of the brush bounds, skipping degenerate brushes
func (m *Map) Bounds() geom.AABB {
	bounds := geom.EmptyAABB()
	for _, box := range m.brushBounds(m.Brushes()) {
		bounds = bounds.Union(box)
	}
	return bounds
}

// brushBounds evaluates the brushes and returns their bounds, empty for
// degenerate brushes.
func (m *Map) brushBounds(brushes []*Brush) []geom.AABB {
	m.evaluate(brushes)

	bounds := make([]geom.AABB, len(brushes))
	for i, b := range brushes {
		if b.Degenerate() {
			bounds[i] = geom.EmptyAABB()
			continue
		}
		bounds[i] = b.LocalAABB()
	}
	return bounds
}

// index rebuilds the spatial grid from the current brush bounds
func (m *Map) index(brushes []*Brush) []geom.AABB {
	if m.SpatialGrid == nil {
		m.SpatialGrid = NewSpatialGrid(DefaultCellSize, DefaultNumCells)
	}

	bounds := m.brushBounds(brushes)
	m.SpatialGrid.Clear()
	for i, box := range bounds {
		if box.Valid() {
			m.SpatialGrid.Insert(i, box)
		}
	}
	return bounds
}

// BrushesIn returns the non-degenerate brushes whose bounds overlap box, in
// insertion order.
func (m *Map) BrushesIn(box geom.AABB) []*Brush {
	brushes := m.Brushes()
	bounds := m.index(brushes)

	var found []*Brush
	for _, i := range m.SpatialGrid.Query(box) {
		if bounds[i].Overlaps(box) {
			found = append(found, brushes[i])
		}
	}
	return found
}

// OverlappingPairs returns every pair of brushes whose bounds overlap
func (m *Map) OverlappingPairs() []Pair {
	brushes := m.Brushes()
	bounds := m.index(brushes)
	return m.SpatialGrid.FindPairs(brushes, bounds)
}
