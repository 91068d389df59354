// Package treemesh tessellates a tree skeleton into an indexed triangle mesh:
// one ring of vertices per joint, adjacent rings stitched into tube
// segments, arc-length texture coordinates and smoothed vertex normals.
package treemesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/arbor/pkg/lsystem"
)

// Ring records where a skeleton node's vertex ring landed in the mesh.
type Ring struct {
	Node           *lsystem.Node
	FirstVertex    int     // index of the ring's first vertex in Positions
	TextureOffsetV float32 // V coordinate at this ring, wrapped into [0,1)
}

// Mesh is the tessellated skeleton.
//
// Positions and Normals are indexed by Indices, three per triangle. UVs holds
// one coordinate per triangle corner (parallel to Indices), since rings share
// vertices across texture seams and V wraps per segment.
type Mesh struct {
	RadialSegments int
	Positions      []mgl32.Vec3
	Normals        []mgl32.Vec3
	Indices        []uint32
	UVs            []mgl32.Vec2
	FaceNormals    []mgl32.Vec3
	Rings          []Ring // in depth-first pre-order
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// VertexCount returns the number of distinct ring vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) [3]uint32 {
	return [3]uint32{m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]}
}

// Bounds computes the bounding box of all vertex positions.
func (m *Mesh) Bounds() Bounds {
	if len(m.Positions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Positions[0], Max: m.Positions[0]}
	for _, p := range m.Positions[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < b.Min[k] {
				b.Min[k] = p[k]
			}
			if p[k] > b.Max[k] {
				b.Max[k] = p[k]
			}
		}
	}
	return b
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}
