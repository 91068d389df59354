// Package tree is the entry point for procedural tree geometry: it grows a
// skeleton from botanical parameters and tessellates it into a mesh.
package tree

import (
	"sync"

	"go.uber.org/multierr"

	"github.com/Faultbox/arbor/pkg/lsystem"
	"github.com/Faultbox/arbor/pkg/treemesh"
)

// Params combines the production system parameters with the ring resolution.
type Params struct {
	lsystem.Params `yaml:",inline"`
	RadialSegments int `yaml:"radial_segments" toml:"radial_segments"`
}

// Validate checks every parameter before any geometry is generated.
func (p Params) Validate() error {
	return multierr.Append(p.Params.Validate(), treemesh.ValidateRadialSegments(p.RadialSegments))
}

// Build grows and tessellates one tree.
func Build(p Params) (*treemesh.Mesh, error) {
	t, err := New(p)
	if err != nil {
		return nil, err
	}
	return t.Mesh()
}

// Tree is one generated tree instance. The skeleton is grown on construction;
// the mesh is built on first use and cached.
type Tree struct {
	params   Params
	skeleton *lsystem.Node

	once sync.Once
	mesh *treemesh.Mesh
	err  error
}

// New validates p and grows the skeleton.
func New(p Params) (*Tree, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	root, err := lsystem.Generate(p.Params)
	if err != nil {
		return nil, err
	}
	return &Tree{params: p, skeleton: root}, nil
}

// Params returns the parameters the tree was built from.
func (t *Tree) Params() Params {
	return t.params
}

// Skeleton returns the root joint of the skeleton.
func (t *Tree) Skeleton() *lsystem.Node {
	return t.skeleton
}

// Mesh returns the tessellated tree, building it on first call.
func (t *Tree) Mesh() (*treemesh.Mesh, error) {
	t.once.Do(func() {
		t.mesh, t.err = treemesh.Build(t.skeleton, t.params.RadialSegments)
	})
	return t.mesh, t.err
}
