package treemesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/arbor/pkg/lsystem"
)

// MinRadialSegments is the smallest ring that still encloses a volume.
const MinRadialSegments = 3

var (
	// ErrNilSkeleton is returned when Build is given no skeleton.
	ErrNilSkeleton = errors.New("treemesh: nil skeleton")
	// ErrNotRoot is returned when Build is given a node that has a parent.
	ErrNotRoot = errors.New("treemesh: skeleton node is not a root")
)

// ValidateRadialSegments reports whether n is a usable ring size.
func ValidateRadialSegments(n int) error {
	if n < MinRadialSegments {
		return &lsystem.ConfigurationError{
			Field:  "radial_segments",
			Value:  n,
			Reason: fmt.Sprintf("must be at least %d", MinRadialSegments),
		}
	}
	return nil
}

// Build tessellates the skeleton rooted at root with radialSegments vertices
// per ring. Nodes are visited depth-first in pre-order, children in
// generation order, so vertex indices are deterministic.
func Build(root *lsystem.Node, radialSegments int) (*Mesh, error) {
	if err := ValidateRadialSegments(radialSegments); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrNilSkeleton
	}
	if !root.IsRoot() {
		return nil, ErrNotRoot
	}

	count := root.Count()
	if uint64(count)*uint64(radialSegments) > math.MaxUint32 {
		return nil, &lsystem.ConfigurationError{
			Field:  "radial_segments",
			Value:  radialSegments,
			Reason: fmt.Sprintf("%d nodes would overflow 32-bit vertex indices", count),
		}
	}

	acc := NewAccumulator(count, radialSegments)
	ringOf := make(map[*lsystem.Node]int, count)

	for node := range root.PreOrder() {
		var ring Ring
		if node.IsRoot() {
			ring = baseRing(acc, node)
		} else {
			ring = segmentRing(acc, node, acc.Ring(ringOf[node.Parent()]))
		}
		ringOf[node] = acc.AddRing(ring)
	}

	mesh := acc.Mesh()
	computeNormals(mesh)
	return mesh, nil
}

// ringAngle returns the angle in radians of radial step i.
func ringAngle(i, radial int) float32 {
	return mgl32.DegToRad(float32(i) * 360 / float32(radial))
}

// baseRing emits the root ring, lying flat in the XZ plane.
func baseRing(acc *Accumulator, node *lsystem.Node) Ring {
	first := acc.VertexCount()
	center := node.Position()
	r := node.Radius()

	for i := 0; i < acc.radial; i++ {
		a := float64(ringAngle(i, acc.radial))
		acc.AddVertex(mgl32.Vec3{
			center.X() + r*float32(math.Cos(a)),
			center.Y(),
			center.Z() + r*float32(math.Sin(a)),
		})
	}

	return Ring{Node: node, FirstVertex: first, TextureOffsetV: 0}
}

// segmentRing sweeps the spoke (radius, 0, 0) around the segment direction
// to emit a non-root ring, then stitches it to the parent ring.
func segmentRing(acc *Accumulator, node *lsystem.Node, parent Ring) Ring {
	n := acc.radial
	first := acc.VertexCount()

	segment := node.Position().Sub(parent.Node.Position())
	direction := segment.Normalize()
	spoke := mgl32.Vec4{node.Radius(), 0, 0, 0}
	texHeight := segment.Len() / (node.Radius() * 2 * math.Pi)

	v0 := parent.TextureOffsetV
	v1 := v0 + texHeight

	for i := 0; i < n; i++ {
		rot := mgl32.HomogRotate3D(ringAngle(i, n), direction)
		acc.AddVertex(node.Position().Add(rot.Mul4x1(spoke).Vec3()))

		next := (i + 1) % n
		u0 := float32(i) / float32(n)
		u1 := float32(i+1) / float32(n)

		acc.AddTriangle(
			parent.FirstVertex+i, first+i, parent.FirstVertex+next,
			mgl32.Vec2{u0, v0}, mgl32.Vec2{u0, v1}, mgl32.Vec2{u1, v0},
		)
		acc.AddTriangle(
			parent.FirstVertex+next, first+i, first+next,
			mgl32.Vec2{u1, v0}, mgl32.Vec2{u0, v1}, mgl32.Vec2{u1, v1},
		)
	}

	return Ring{
		Node:           node,
		FirstVertex:    first,
		TextureOffsetV: wrap(v1),
	}
}

// wrap maps v into [0,1).
func wrap(v float32) float32 {
	w := v - float32(math.Floor(float64(v)))
	if w >= 1 {
		return 0
	}
	return w
}
