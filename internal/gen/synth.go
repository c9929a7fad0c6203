package gen

import (
	"math"

	"landform/internal/noise"
	pcore "landform/pkg/core"
)

// Sampling frequencies for the noise layers. Coordinates are normalized to
// [-1,1]×[-1,1] across the whole pipeline, so these are cycles per map span.
// The constants are part of the contract: changing them restyles every map.
const (
	macroFrequency    = 1.2
	detailFrequency   = 3.1
	ridgeFrequency    = 1.7
	moistureFrequency = 1.8

	macroOctaves  = 5
	detailOctaves = 3
	ridgeOctaves  = 4
	moistOctaves  = 3

	lacunarity = 2.0
	gain       = 0.5
)

// synthesizer produces the raw (unnormalized) heightfield and the initial
// moisture seed field for one generation run. All state is per-call; nothing
// survives between invocations.
type synthesizer struct {
	w, h int
	p    Params
	fam  Family

	macro  []noise.Source
	detail []noise.Source
	ridge  []noise.Source
	moist  []noise.Source
	warp   noise.Warp

	plates [][2]float64
}

func newSynthesizer(cfg Config, fam Family, p Params) *synthesizer {
	s := &synthesizer{
		w:      cfg.Width,
		h:      cfg.Height,
		p:      p,
		fam:    fam,
		macro:  noise.NewOctaves(fam.Macro, cfg.Seed, macroOctaves),
		detail: noise.NewOctaves(noise.KindValue, cfg.Seed+57, detailOctaves),
		moist:  noise.NewOctaves(noise.KindPerlin, cfg.Seed+97, moistOctaves),
		warp:   noise.NewWarp(cfg.Seed, p.WarpStrength, 1.5),
	}
	if p.RidgeWeight > 0 {
		s.ridge = noise.NewOctaves(fam.Macro, cfg.Seed+211, ridgeOctaves)
	}
	if fam.Mask == MaskPlates || fam.Mask == MaskPlateRidges {
		s.plates = platePoints(cfg.Seed, p.PlateCount)
	}
	return s
}

// platePoints scatters n feature points across the normalized map square.
func platePoints(seed uint32, n int) [][2]float64 {
	rng := pcore.NewRNG(int64(seed)*0x9e3779b1 + 1)
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i][0] = rng.Float64()*2 - 1
		pts[i][1] = rng.Float64()*2 - 1
	}
	return pts
}

// run fills the raw elevation and base moisture arrays. Elevation is left
// unnormalized; the post-processing stage min-max scales it to [0,1].
func (s *synthesizer) run(elev, moist []float32) {
	wf := float64(s.w)
	hf := float64(s.h)

	// Erosion passes also damp the detail octave multiplicatively. This is a
	// softening of the noise composition, not thermal erosion.
	damp := 1.0 / (1.0 + 0.3*float64(s.p.ErosionIterations))
	detailWeight := s.fam.DetailWeight * damp

	for y := 0; y < s.h; y++ {
		ny := (float64(y)/hf)*2 - 1
		for x := 0; x < s.w; x++ {
			nx := (float64(x)/wf)*2 - 1
			i := y*s.w + x

			wx, wy := s.warp.Apply(nx*s.p.FeatureScale, ny*s.p.FeatureScale)

			e := noise.FBM(s.macro, wx*macroFrequency, wy*macroFrequency, lacunarity, gain) * s.fam.MacroWeight
			e += noise.FBM(s.detail, wx*detailFrequency, wy*detailFrequency, lacunarity, gain) * detailWeight
			if s.ridge != nil {
				e += noise.Ridged(s.ridge, wx*ridgeFrequency, wy*ridgeFrequency, lacunarity, gain) * s.p.RidgeWeight
			}

			raw := e*s.p.ElevationAmplitude + s.maskAt(nx, ny)*s.fam.MaskWeight
			elev[i] = float32(raw / (1 + s.fam.MaskWeight))

			mn := noise.FBM(s.moist, wx*moistureFrequency, wy*moistureFrequency, lacunarity, gain)
			moist[i] = float32(clamp01((mn*0.5 + 0.5) * s.p.MoistureScale))
		}
	}
}

// maskAt evaluates the family shape mask at normalized coordinates. The mask
// uses unwarped coordinates so the large-scale silhouette stays anchored.
func (s *synthesizer) maskAt(nx, ny float64) float64 {
	switch s.fam.Mask {
	case MaskRadial:
		d := math.Sqrt(nx*nx + ny*ny)
		return clamp01(1 - math.Pow(d, 1.6))
	case MaskBand:
		t := (ny + 1) * 0.5
		return clamp01(1.1 - 1.2*t)
	case MaskPlates:
		d1, _ := s.nearestPlates(nx, ny)
		return clamp01(1 - d1*1.5)
	case MaskPlateRidges:
		d1, d2 := s.nearestPlates(nx, ny)
		boundary := clamp01(1 - (d2-d1)*4)
		d := math.Sqrt(nx*nx + ny*ny)
		return clamp01(0.55*clamp01(1-math.Pow(d, 1.6)) + 0.45*boundary*boundary)
	default:
		return 0
	}
}

// nearestPlates returns the distances to the closest and second-closest
// feature points.
func (s *synthesizer) nearestPlates(nx, ny float64) (float64, float64) {
	d1 := math.MaxFloat64
	d2 := math.MaxFloat64
	for _, pt := range s.plates {
		dx := nx - pt[0]
		dy := ny - pt[1]
		d := math.Sqrt(dx*dx + dy*dy)
		if d < d1 {
			d2 = d1
			d1 = d
		} else if d < d2 {
			d2 = d
		}
	}
	if d2 == math.MaxFloat64 {
		d2 = d1
	}
	return d1, d2
}
