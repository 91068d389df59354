package tree

import (
	"errors"
	"testing"

	"go.uber.org/multierr"

	"github.com/Faultbox/arbor/pkg/lsystem"
)

func exampleParams() Params {
	return Params{
		Params: lsystem.Params{
			DivergenceAngle1: 180,
			DivergenceAngle2: 180,
			BranchingAngle:   30,
			ElongationRate:   1,
			ThickeningRate:   1,
			BaseLength:       1,
			BaseRadius:       0.1,
			MaxIterations:    1,
		},
		RadialSegments: 4,
	}
}

func TestBuildExample(t *testing.T) {
	m, err := Build(exampleParams())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.VertexCount() != 24 {
		t.Errorf("vertices = %d, want 24", m.VertexCount())
	}
	if m.TriangleCount() != 40 {
		t.Errorf("triangles = %d, want 40", m.TriangleCount())
	}
	if len(m.Rings) != 6 {
		t.Errorf("rings = %d, want 6", len(m.Rings))
	}
}

func TestNewRejectsBeforeGrowing(t *testing.T) {
	p := exampleParams()
	p.RadialSegments = 2

	tr, err := New(p)
	if tr != nil {
		t.Error("expected no tree for two radial segments")
	}
	var cerr *lsystem.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigurationError, got %v", err)
	}
	if cerr.Field != "radial_segments" {
		t.Errorf("error field = %q, want radial_segments", cerr.Field)
	}
}

func TestValidateCombinesErrors(t *testing.T) {
	p := exampleParams()
	p.RadialSegments = 0
	p.MaxIterations = -1

	if n := len(multierr.Errors(p.Validate())); n != 2 {
		t.Errorf("got %d errors, want 2", n)
	}
}

func TestMeshIsCached(t *testing.T) {
	tr, err := New(exampleParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a, err := tr.Mesh()
	if err != nil {
		t.Fatalf("Mesh: %v", err)
	}
	b, _ := tr.Mesh()
	if a != b {
		t.Error("Mesh rebuilt on second call")
	}
	if tr.Skeleton().Count() != 6 {
		t.Errorf("skeleton nodes = %d, want 6", tr.Skeleton().Count())
	}
	if tr.Params() != exampleParams() {
		t.Error("Params changed after construction")
	}
}

func TestPresets(t *testing.T) {
	ps := Presets()
	if len(ps) != 4 {
		t.Fatalf("got %d presets, want 4", len(ps))
	}

	for _, p := range ps {
		t.Run(p.Name, func(t *testing.T) {
			if err := p.Params.Validate(); err != nil {
				t.Fatalf("preset invalid: %v", err)
			}
			m, err := Build(p.Params)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			nodes := lsystem.ExpectedNodeCount(p.Params.MaxIterations)
			if m.VertexCount() != nodes*p.Params.RadialSegments {
				t.Errorf("vertices = %d, want %d", m.VertexCount(), nodes*p.Params.RadialSegments)
			}
		})
	}
}

func TestLookupPreset(t *testing.T) {
	p, err := LookupPreset(DefaultPreset)
	if err != nil {
		t.Fatalf("LookupPreset(%q): %v", DefaultPreset, err)
	}
	if p.Params.DivergenceAngle1 != 94.74 {
		t.Errorf("divergence angle 1 = %v, want 94.74", p.Params.DivergenceAngle1)
	}

	if _, err := LookupPreset("oak"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestPresetsCopy(t *testing.T) {
	ps := Presets()
	ps[0].Name = "changed"
	if Presets()[0].Name == "changed" {
		t.Error("Presets exposes internal slice")
	}
}
