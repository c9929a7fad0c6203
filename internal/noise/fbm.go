package noise

import "math"

// FBM sums the octave sources at increasing frequency and decreasing
// amplitude and normalizes by the total amplitude, so the result stays in
// [-1, 1] regardless of octave count.
func FBM(srcs []Source, x, y, lacunarity, gain float64) float64 {
	frequency := 1.0
	amplitude := 1.0
	total := 0.0
	sum := 0.0
	for _, s := range srcs {
		sum += s.Eval2(x*frequency, y*frequency) * amplitude
		total += amplitude
		frequency *= lacunarity
		amplitude *= gain
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// Ridged layers octaves like FBM but each octave contributes (1-|n|)²,
// biasing the sum toward sharp ridgelines. Result is in [0, 1].
func Ridged(srcs []Source, x, y, lacunarity, gain float64) float64 {
	frequency := 1.0
	amplitude := 1.0
	total := 0.0
	sum := 0.0
	for _, s := range srcs {
		r := 1 - math.Abs(s.Eval2(x*frequency, y*frequency))
		sum += r * r * amplitude
		total += amplitude
		frequency *= lacunarity
		amplitude *= gain
	}
	if total == 0 {
		return 0
	}
	v := sum / total
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
