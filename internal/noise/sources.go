package noise

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source is a 2D coherent noise field. Eval2 returns values in [-1, 1] and is
// a pure function of its inputs and the seed the source was built with.
type Source interface {
	Eval2(x, y float64) float64
}

// Kind selects the noise algorithm backing a Source.
type Kind int

const (
	// KindValue is the hash-lattice value noise implemented in this package.
	KindValue Kind = iota
	// KindSimplex is OpenSimplex noise (github.com/ojrac/opensimplex-go).
	KindSimplex
	// KindPerlin is classic Perlin noise (github.com/aquilax/go-perlin).
	KindPerlin
)

type valueSource struct {
	seed uint32
}

func (s valueSource) Eval2(x, y float64) float64 {
	return ValueNoise2D(x, y, s.seed)*2 - 1
}

type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) Eval2(x, y float64) float64 {
	v := s.p.Noise2D(x, y)
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return v
}

// New returns a seeded Source of the requested kind.
func New(kind Kind, seed uint32) Source {
	switch kind {
	case KindSimplex:
		return opensimplex.New(int64(seed))
	case KindPerlin:
		// alpha/beta/octave choices follow common terrain settings.
		return perlinSource{p: perlin.NewPerlin(2, 2, 3, int64(seed))}
	default:
		return valueSource{seed: seed}
	}
}

// NewOctaves builds n sources of the same kind, one per fractal octave, each
// seeded with a distinct salt so the layers stay decorrelated.
func NewOctaves(kind Kind, seed uint32, n int) []Source {
	if n < 1 {
		n = 1
	}
	srcs := make([]Source, n)
	for i := range srcs {
		srcs[i] = New(kind, SaltSeed(seed, i))
	}
	return srcs
}
