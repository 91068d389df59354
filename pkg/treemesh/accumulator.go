package treemesh

import "github.com/go-gl/mathgl/mgl32"

// Accumulator collects geometry during a single traversal. Its buffers are
// sized up front from the node count, so a build never reallocates.
type Accumulator struct {
	radial    int
	positions []mgl32.Vec3
	indices   []uint32
	uvs       []mgl32.Vec2
	rings     []Ring
}

// NewAccumulator reserves room for nodeCount rings of radialSegments vertices
// and the 2*radialSegments triangles stitching each non-root ring to its parent.
func NewAccumulator(nodeCount, radialSegments int) *Accumulator {
	segments := max(nodeCount-1, 0)
	corners := 3 * 2 * radialSegments * segments
	return &Accumulator{
		radial:    radialSegments,
		positions: make([]mgl32.Vec3, 0, radialSegments*nodeCount),
		indices:   make([]uint32, 0, corners),
		uvs:       make([]mgl32.Vec2, 0, corners),
		rings:     make([]Ring, 0, nodeCount),
	}
}

// AddVertex appends a position and returns its index.
func (a *Accumulator) AddVertex(p mgl32.Vec3) int {
	a.positions = append(a.positions, p)
	return len(a.positions) - 1
}

// AddTriangle appends a triangle with per-corner texture coordinates.
func (a *Accumulator) AddTriangle(i0, i1, i2 int, uv0, uv1, uv2 mgl32.Vec2) {
	a.indices = append(a.indices, uint32(i0), uint32(i1), uint32(i2))
	a.uvs = append(a.uvs, uv0, uv1, uv2)
}

// AddRing records a finished ring and returns its position in the ring table.
func (a *Accumulator) AddRing(r Ring) int {
	a.rings = append(a.rings, r)
	return len(a.rings) - 1
}

// Ring returns the ring recorded at index i.
func (a *Accumulator) Ring(i int) Ring {
	return a.rings[i]
}

// VertexCount returns the number of vertices appended so far.
func (a *Accumulator) VertexCount() int {
	return len(a.positions)
}

// Mesh hands the accumulated buffers to a Mesh without normals.
func (a *Accumulator) Mesh() *Mesh {
	return &Mesh{
		RadialSegments: a.radial,
		Positions:      a.positions,
		Indices:        a.indices,
		UVs:            a.uvs,
		Rings:          a.rings,
	}
}
