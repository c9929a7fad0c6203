package noise

// Hash32 mixes a 32-bit input into a well-distributed 32-bit output
// (murmur-finalizer style avalanching). Stable across platforms: integer
// arithmetic only, no rand.
func Hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// Hash2 returns a stable hash for 2D integer lattice coordinates plus seed.
// Large odd constants decorrelate the axes.
func Hash2(seed uint32, x, y int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(y) * 0x85ebca6b
	return Hash32(h)
}

// SaltSeed derives the seed for octave i from a base seed. Each octave of a
// fractal sum gets its own lattice so the layers stay decorrelated.
func SaltSeed(seed uint32, octave int) uint32 {
	return seed + uint32(octave)*0x9e3779b9
}
