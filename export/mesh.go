package export

import "github.com/akmonengine/brush"

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, texcoords 2 floats per vertex,
// indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices  []float32 `json:"vertices"`
	Normals   []float32 `json:"normals"`
	Texcoords []float32 `json:"texcoords"`
	Indices   []uint32  `json:"indices"`
	// Shaders holds the shader of each triangle
	Shaders []string `json:"shaders"`
}

// NewMesh builds a mesh from the contributing faces of the brushes. Each
// face keeps its own vertices so normals and texture coordinates stay flat.
func NewMesh(brushes ...*brush.Brush) *Mesh {
	m := &Mesh{}
	for _, b := range brushes {
		b.EvaluateBRep()
		for _, f := range b.Faces() {
			if !f.Contributes() {
				continue
			}

			base := uint32(m.VertexCount())
			w := f.Winding()
			for _, v := range w {
				m.Vertices = append(m.Vertices, float32(v.Position.X()), float32(v.Position.Y()), float32(v.Position.Z()))
				m.Normals = append(m.Normals, float32(v.Normal.X()), float32(v.Normal.Y()), float32(v.Normal.Z()))
				m.Texcoords = append(m.Texcoords, float32(v.Texcoord.X()), float32(v.Texcoord.Y()))
			}
			for i := 1; i+1 < len(w); i++ {
				m.Indices = append(m.Indices, base, base+uint32(i), base+uint32(i+1))
				m.Shaders = append(m.Shaders, f.Shader().Name)
			}
		}
	}
	return m
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}
