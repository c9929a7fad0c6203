package noise

import "math"

// ValueNoise2D samples seeded hash-lattice value noise at (x, y) and returns
// a value in [0, 1]. Bilinear interpolation between the four surrounding
// lattice hashes, eased with the quintic fade 6t⁵-15t⁴+10t³ on both axes.
// The quintic curve is part of the contract: changing it changes the look of
// every generated map.
func ValueNoise2D(x, y float64, seed uint32) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	ix := int32(x0)
	iy := int32(y0)
	tx := fade(x - x0)
	ty := fade(y - y0)

	v00 := lattice(seed, ix, iy)
	v10 := lattice(seed, ix+1, iy)
	v01 := lattice(seed, ix, iy+1)
	v11 := lattice(seed, ix+1, iy+1)

	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	return top + (bottom-top)*ty
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lattice(seed uint32, x, y int32) float64 {
	return float64(Hash2(seed, x, y)) / float64(math.MaxUint32)
}
