package tree

import (
	"fmt"

	"github.com/Faultbox/arbor/pkg/lsystem"
)

// Preset is a named, ready-made parameter set.
type Preset struct {
	Name        string
	Description string
	Params      Params
}

// presets follow the monopodial tree-like structures of
// "The Algorithmic Beauty of Plants", fig. 2.8.
var presets = []Preset{
	{
		Name:        "abop-a",
		Description: "wide, unequal divergence, gently elongating",
		Params:      preset(94.74, 132.63, 18.95, 1.109, 1.932),
	},
	{
		Name:        "abop-b",
		Description: "golden-angle divergence",
		Params:      preset(137.5, 137.5, 25.95, 1.009, 1.732),
	},
	{
		Name:        "abop-c",
		Description: "narrow crown, unequal divergence",
		Params:      preset(112.5, 157.5, 22.5, 1.009, 1.732),
	},
	{
		Name:        "abop-d",
		Description: "flat, opposite branching",
		Params:      preset(180, 252, 36, 1.007, 1.9),
	},
}

func preset(d1, d2, branching, elongation, thickening float32) Params {
	return Params{
		Params: lsystem.Params{
			DivergenceAngle1: d1,
			DivergenceAngle2: d2,
			BranchingAngle:   branching,
			ElongationRate:   elongation,
			ThickeningRate:   thickening,
			BaseLength:       1.0,
			BaseRadius:       0.02,
			MaxIterations:    5,
		},
		RadialSegments: 6,
	}
}

// DefaultPreset is the preset used when none is named.
const DefaultPreset = "abop-a"

// Presets returns all presets in a stable order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", name)
}
