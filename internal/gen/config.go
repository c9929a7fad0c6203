package gen

import "strconv"

// Params holds the continuous shaping parameters of the terrain pipeline.
// Every field has a documented legal range; Clamped restricts values to it.
// Out-of-range input is clamped, never rejected.
type Params struct {
	// SeaLevel in [0,1]: normalized elevation below which a cell is submerged.
	SeaLevel float64
	// ElevationAmplitude in [0,2]: scales the noise contribution to elevation.
	ElevationAmplitude float64
	// WarpStrength in [0,400]: domain warp displacement, 0 disables warping.
	WarpStrength float64
	// ErosionIterations in [0,8]: smoothing passes over the raw heightfield.
	// This is a controlled softening of the noise composition, not a physical
	// erosion simulation.
	ErosionIterations int
	// MoistureScale in [0,2]: scales the base moisture field.
	MoistureScale float64
	// FeatureScale in [0.25,8]: noise sampling frequency multiplier.
	FeatureScale float64
	// RidgeWeight in [0,1]: contribution of the ridged mountain layer.
	RidgeWeight float64
	// RiverStrength in [0,2]: scales runoff before the river threshold.
	RiverStrength float64
	// TemperatureBias in [-0.5,0.5]: flat offset added to temperature.
	TemperatureBias float64
	// PlateCount in [2,32]: feature points for the plate-based shape masks.
	PlateCount int
	// SettlementLimit in [0,4]: maximum settlement sites to place.
	SettlementLimit int
}

// Config describes one generation request.
type Config struct {
	Width  int
	Height int

	Seed uint32

	// Family names the terrain preset. Unknown names fall back to
	// continental, in line with the clamp-don't-reject philosophy.
	Family string

	Params Params
}

// DefaultParams returns the continental baseline parameters.
func DefaultParams() Params {
	return Params{
		SeaLevel:           0.48,
		ElevationAmplitude: 0.9,
		WarpStrength:       80,
		ErosionIterations:  2,
		MoistureScale:      1.0,
		FeatureScale:       1.0,
		RidgeWeight:        0.15,
		RiverStrength:      1.0,
		TemperatureBias:    0,
		PlateCount:         8,
		SettlementLimit:    3,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Seed:   1337,
		Family: "continental",
		Params: DefaultParams(),
	}
}

// Clamped returns a copy of p with every value restricted to its legal range.
// Clamping is idempotent: clamping an already-clamped Params is a no-op.
func (p Params) Clamped() Params {
	p.SeaLevel = clampF(p.SeaLevel, 0, 1)
	p.ElevationAmplitude = clampF(p.ElevationAmplitude, 0, 2)
	p.WarpStrength = clampF(p.WarpStrength, 0, 400)
	p.ErosionIterations = clampI(p.ErosionIterations, 0, 8)
	p.MoistureScale = clampF(p.MoistureScale, 0, 2)
	p.FeatureScale = clampF(p.FeatureScale, 0.25, 8)
	p.RidgeWeight = clampF(p.RidgeWeight, 0, 1)
	p.RiverStrength = clampF(p.RiverStrength, 0, 2)
	p.TemperatureBias = clampF(p.TemperatureBias, -0.5, 0.5)
	p.PlateCount = clampI(p.PlateCount, 2, 32)
	p.SettlementLimit = clampI(p.SettlementLimit, 0, 4)
	return p
}

// FromMap populates a config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["family"]; ok {
		c = FamilyConfig(v)
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Seed = uint32(parsed)
		}
	}
	if v, ok := cfg["sea_level"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.SeaLevel = parsed
		}
	}
	if v, ok := cfg["elevation_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.ElevationAmplitude = parsed
		}
	}
	if v, ok := cfg["warp_strength"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.WarpStrength = parsed
		}
	}
	if v, ok := cfg["erosion_iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.ErosionIterations = parsed
		}
	}
	if v, ok := cfg["moisture_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.MoistureScale = parsed
		}
	}
	if v, ok := cfg["feature_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.FeatureScale = parsed
		}
	}
	if v, ok := cfg["ridge_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.RidgeWeight = parsed
		}
	}
	if v, ok := cfg["river_strength"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.RiverStrength = parsed
		}
	}
	if v, ok := cfg["temperature_bias"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.TemperatureBias = parsed
		}
	}
	if v, ok := cfg["plate_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.PlateCount = parsed
		}
	}
	if v, ok := cfg["settlement_limit"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.SettlementLimit = parsed
		}
	}
	return c
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clampF(v, 0, 1)
}
