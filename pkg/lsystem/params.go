package lsystem

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// MaxIterationsLimit bounds the recursion depth. Node count grows as 3^n.
const MaxIterationsLimit = 12

// Params are the geometric parameters of the production system.
// Angles are in degrees. Length and radius are the values reached at the
// final iteration; earlier iterations scale them by the rates.
//
// MaxIterations must lie in [0, MaxIterationsLimit]. Validate rejects
// anything above 12 with a ConfigurationError even though the value is
// otherwise finite and non-negative.
type Params struct {
	DivergenceAngle1 float32 `yaml:"divergence_angle_1" toml:"divergence_angle_1"`
	DivergenceAngle2 float32 `yaml:"divergence_angle_2" toml:"divergence_angle_2"`
	BranchingAngle   float32 `yaml:"branching_angle" toml:"branching_angle"`
	ElongationRate   float32 `yaml:"elongation_rate" toml:"elongation_rate"`
	ThickeningRate   float32 `yaml:"thickening_rate" toml:"thickening_rate"`
	BaseLength       float32 `yaml:"base_length" toml:"base_length"`
	BaseRadius       float32 `yaml:"base_radius" toml:"base_radius"`
	MaxIterations    int     `yaml:"max_iterations" toml:"max_iterations"`
}

// Validate checks every parameter and reports all violations together.
// Each violation is a *ConfigurationError; use multierr.Errors to split them.
func (p Params) Validate() error {
	var err error

	for _, a := range []struct {
		field string
		value float32
	}{
		{"divergence_angle_1", p.DivergenceAngle1},
		{"divergence_angle_2", p.DivergenceAngle2},
		{"branching_angle", p.BranchingAngle},
	} {
		if !finite(a.value) {
			err = multierr.Append(err, &ConfigurationError{Field: a.field, Value: a.value, Reason: "must be finite"})
		}
	}

	for _, f := range []struct {
		field string
		value float32
	}{
		{"elongation_rate", p.ElongationRate},
		{"thickening_rate", p.ThickeningRate},
		{"base_length", p.BaseLength},
		{"base_radius", p.BaseRadius},
	} {
		switch {
		case !finite(f.value):
			err = multierr.Append(err, &ConfigurationError{Field: f.field, Value: f.value, Reason: "must be finite"})
		case f.value <= 0:
			err = multierr.Append(err, &ConfigurationError{Field: f.field, Value: f.value, Reason: "must be positive"})
		}
	}

	switch {
	case p.MaxIterations < 0:
		err = multierr.Append(err, &ConfigurationError{Field: "max_iterations", Value: p.MaxIterations, Reason: "must not be negative"})
	case p.MaxIterations > MaxIterationsLimit:
		err = multierr.Append(err, &ConfigurationError{Field: "max_iterations", Value: p.MaxIterations, Reason: fmt.Sprintf("exceeds limit of %d", MaxIterationsLimit)})
	}

	return err
}

// Length returns the segment length at iteration numIter:
// BaseLength * ElongationRate^(MaxIterations-numIter).
func (p Params) Length(numIter int) float32 {
	return p.BaseLength * pow(p.ElongationRate, p.MaxIterations-numIter)
}

// Radius returns the branch radius at iteration numIter:
// BaseRadius * ThickeningRate^(MaxIterations-numIter).
func (p Params) Radius(numIter int) float32 {
	return p.BaseRadius * pow(p.ThickeningRate, p.MaxIterations-numIter)
}

// pow multiplies rate k times; k <= 0 yields 1.
func pow(rate float32, k int) float32 {
	r := float32(1)
	for ; k > 0; k-- {
		r *= rate
	}
	return r
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
