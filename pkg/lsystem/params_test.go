package lsystem

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/multierr"
)

func validParams() Params {
	return Params{
		DivergenceAngle1: 94.74,
		DivergenceAngle2: 132.63,
		BranchingAngle:   18.95,
		ElongationRate:   1.109,
		ThickeningRate:   1.732,
		BaseLength:       1.0,
		BaseRadius:       0.02,
		MaxIterations:    5,
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := validParams().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	p := validParams()
	p.MaxIterations = 0
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() with zero iterations = %v, want nil", err)
	}

	p.MaxIterations = MaxIterationsLimit
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() at the iteration limit = %v, want nil", err)
	}
}

func TestValidateRejects(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name   string
		modify func(p *Params)
		field  string
	}{
		{"negative elongation", func(p *Params) { p.ElongationRate = -1 }, "elongation_rate"},
		{"zero thickening", func(p *Params) { p.ThickeningRate = 0 }, "thickening_rate"},
		{"negative length", func(p *Params) { p.BaseLength = -0.5 }, "base_length"},
		{"zero radius", func(p *Params) { p.BaseRadius = 0 }, "base_radius"},
		{"nan angle", func(p *Params) { p.BranchingAngle = nan }, "branching_angle"},
		{"inf divergence", func(p *Params) { p.DivergenceAngle2 = inf }, "divergence_angle_2"},
		{"inf rate", func(p *Params) { p.ElongationRate = inf }, "elongation_rate"},
		{"negative iterations", func(p *Params) { p.MaxIterations = -1 }, "max_iterations"},
		{"too many iterations", func(p *Params) { p.MaxIterations = MaxIterationsLimit + 1 }, "max_iterations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.modify(&p)

			err := p.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var cerr *ConfigurationError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected *ConfigurationError, got %T", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("error field = %q, want %q", cerr.Field, tt.field)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	p := validParams()
	p.ElongationRate = -1
	p.BaseRadius = 0
	p.MaxIterations = -3

	errs := multierr.Errors(p.Validate())
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), errs)
	}
}

func TestLengthAndRadius(t *testing.T) {
	p := Params{ElongationRate: 2, ThickeningRate: 3, BaseLength: 1, BaseRadius: 0.5, MaxIterations: 3}

	tests := []struct {
		numIter    int
		wantLength float32
		wantRadius float32
	}{
		{0, 8, 13.5},
		{1, 4, 4.5},
		{2, 2, 1.5},
		{3, 1, 0.5},
		{4, 1, 0.5}, // past the last iteration the base values hold
	}

	for _, tt := range tests {
		if got := p.Length(tt.numIter); got != tt.wantLength {
			t.Errorf("Length(%d) = %v, want %v", tt.numIter, got, tt.wantLength)
		}
		if got := p.Radius(tt.numIter); got != tt.wantRadius {
			t.Errorf("Radius(%d) = %v, want %v", tt.numIter, got, tt.wantRadius)
		}
	}
}

func TestLengthMonotonic(t *testing.T) {
	p := validParams()
	for i := 1; i <= p.MaxIterations; i++ {
		if p.Length(i) > p.Length(i-1) {
			t.Errorf("Length(%d) = %v > Length(%d) = %v", i, p.Length(i), i-1, p.Length(i-1))
		}
		if p.Radius(i) > p.Radius(i-1) {
			t.Errorf("Radius(%d) = %v > Radius(%d) = %v", i, p.Radius(i), i-1, p.Radius(i-1))
		}
	}
}
