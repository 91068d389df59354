package treemesh

import "github.com/go-gl/mathgl/mgl32"

// Buffers is a render-ready indexed mesh with one position, normal and UV
// per vertex, laid out as flat float arrays.
type Buffers struct {
	Positions []float32 // x, y, z per vertex
	Normals   []float32 // x, y, z per vertex
	UVs       []float32 // u, v per vertex
	Indices   []uint32  // three per triangle
}

// Sink accepts geometry buffers, typically a GPU-side mesh object.
type Sink interface {
	SetGeometry(positions, normals, uvs []float32, indices []uint32) error
}

// VertexCount returns the number of vertices.
func (b *Buffers) VertexCount() int {
	return len(b.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (b *Buffers) TriangleCount() int {
	return len(b.Indices) / 3
}

// UploadTo hands the buffers to s.
func (b *Buffers) UploadTo(s Sink) error {
	return s.SetGeometry(b.Positions, b.Normals, b.UVs, b.Indices)
}

// Buffers welds the per-corner texture coordinates onto the vertices. A ring
// vertex is emitted once per distinct UV it is used with, so vertices are only
// split along texture seams. Triangle order and winding are preserved.
func (m *Mesh) Buffers() *Buffers {
	type key struct {
		vertex uint32
		uv     mgl32.Vec2
	}

	b := &Buffers{
		Positions: make([]float32, 0, 3*len(m.Positions)),
		Normals:   make([]float32, 0, 3*len(m.Positions)),
		UVs:       make([]float32, 0, 2*len(m.Positions)),
		Indices:   make([]uint32, 0, len(m.Indices)),
	}
	welded := make(map[key]uint32, len(m.Positions))

	for corner, vi := range m.Indices {
		k := key{vertex: vi, uv: m.UVs[corner]}
		idx, ok := welded[k]
		if !ok {
			idx = uint32(b.VertexCount())
			p, n := m.Positions[vi], m.Normals[vi]
			b.Positions = append(b.Positions, p[0], p[1], p[2])
			b.Normals = append(b.Normals, n[0], n[1], n[2])
			b.UVs = append(b.UVs, k.uv[0], k.uv[1])
			welded[k] = idx
		}
		b.Indices = append(b.Indices, idx)
	}

	return b
}
