package gen

import "landform/internal/noise"

// MaskKind selects the large-scale shape mask applied by the synthesizer.
type MaskKind int

const (
	// MaskNone applies no shape mask; elevation comes from noise alone.
	MaskNone MaskKind = iota
	// MaskRadial is a radial continent falloff centered on the map.
	MaskRadial
	// MaskBand tilts elevation along the y axis toward a sea shelf.
	MaskBand
	// MaskPlates builds cones around seeded feature points.
	MaskPlates
	// MaskPlateRidges raises ridges along plate boundaries.
	MaskPlateRidges
)

// Family is a terrain preset: one set of shape-mask and weighting choices for
// the shared pipeline. Families are data, not code paths — every family runs
// the same synthesizer, hydrology and classifier.
type Family struct {
	Name string

	Mask  MaskKind
	Macro noise.Kind

	MacroWeight  float64
	DetailWeight float64
	MaskWeight   float64

	// Defaults patches the baseline parameters for this family.
	Defaults func(p Params) Params
}

var families = []Family{
	{
		Name:         "continental",
		Mask:         MaskRadial,
		Macro:        noise.KindSimplex,
		MacroWeight:  1.0,
		DetailWeight: 0.35,
		MaskWeight:   0.65,
		Defaults:     func(p Params) Params { return p },
	},
	{
		Name:         "archipelago",
		Mask:         MaskRadial,
		Macro:        noise.KindSimplex,
		MacroWeight:  0.8,
		DetailWeight: 0.6,
		MaskWeight:   0.35,
		Defaults: func(p Params) Params {
			p.SeaLevel = 0.55
			p.FeatureScale = 1.6
			p.SettlementLimit = 2
			return p
		},
	},
	{
		Name:         "ridge-basin",
		Mask:         MaskBand,
		Macro:        noise.KindValue,
		MacroWeight:  0.7,
		DetailWeight: 0.3,
		MaskWeight:   0.4,
		Defaults: func(p Params) Params {
			p.RidgeWeight = 0.8
			p.SettlementLimit = 2
			return p
		},
	},
	{
		Name:         "delta",
		Mask:         MaskBand,
		Macro:        noise.KindSimplex,
		MacroWeight:  0.5,
		DetailWeight: 0.25,
		MaskWeight:   0.9,
		Defaults: func(p Params) Params {
			p.SeaLevel = 0.42
			p.RidgeWeight = 0
			p.RiverStrength = 1.4
			p.SettlementLimit = 1
			return p
		},
	},
	{
		Name:         "voronoi",
		Mask:         MaskPlates,
		Macro:        noise.KindValue,
		MacroWeight:  0.5,
		DetailWeight: 0.3,
		MaskWeight:   0.8,
		Defaults: func(p Params) Params {
			p.RidgeWeight = 0
			p.PlateCount = 12
			p.SettlementLimit = 2
			return p
		},
	},
	{
		Name:         "tectonic",
		Mask:         MaskPlateRidges,
		Macro:        noise.KindSimplex,
		MacroWeight:  0.6,
		DetailWeight: 0.3,
		MaskWeight:   0.85,
		Defaults: func(p Params) Params {
			p.RidgeWeight = 0.3
			return p
		},
	},
	{
		Name:         "fractal-basins",
		Mask:         MaskNone,
		Macro:        noise.KindPerlin,
		MacroWeight:  1.0,
		DetailWeight: 0.5,
		MaskWeight:   0,
		Defaults: func(p Params) Params {
			p.RidgeWeight = 0.25
			p.SettlementLimit = 2
			return p
		},
	},
}

// Families lists every terrain family in registration order.
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}

// FamilyByName resolves a family name. Unknown names resolve to continental.
func FamilyByName(name string) Family {
	for _, f := range families {
		if f.Name == name {
			return f
		}
	}
	return families[0]
}

// FamilyConfig returns the default configuration for a named family.
func FamilyConfig(name string) Config {
	f := FamilyByName(name)
	c := DefaultConfig()
	c.Family = f.Name
	c.Params = f.Defaults(c.Params)
	return c
}
