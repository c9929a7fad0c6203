package noise

// warpDivisor matches the strength scale the original engine exposed: a
// strength of 400 displaces coordinates by one full unit of noise amplitude.
const warpDivisor = 400.0

// Warp displaces sample coordinates by two independent low-frequency noise
// fields before the primary elevation noise is evaluated. This is what keeps
// coastlines organic instead of grid-aligned.
type Warp struct {
	dx       Source
	dy       Source
	strength float64
	scale    float64
}

// NewWarp builds a domain warp from the seed. The two displacement fields use
// distinct seed salts so x and y shifts are uncorrelated.
func NewWarp(seed uint32, strength, scale float64) Warp {
	w := Warp{strength: strength, scale: scale}
	if strength <= 0 {
		return w
	}
	w.dx = New(KindSimplex, seed+13)
	w.dy = New(KindSimplex, seed+113)
	return w
}

// Apply returns the warped coordinates. Identity when strength <= 0, without
// evaluating any noise.
func (w Warp) Apply(x, y float64) (float64, float64) {
	if w.strength <= 0 {
		return x, y
	}
	k := w.strength / warpDivisor
	return x + w.dx.Eval2(x*w.scale, y*w.scale)*k,
		y + w.dy.Eval2(x*w.scale, y*w.scale)*k
}
