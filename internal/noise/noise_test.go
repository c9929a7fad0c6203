package noise

import (
	"math"
	"testing"
)

func TestValueNoiseDeterminism(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := float64(i)*0.37 - 30
		y := float64(i)*0.53 - 50
		if ValueNoise2D(x, y, 12345) != ValueNoise2D(x, y, 12345) {
			t.Fatalf("ValueNoise2D not deterministic at (%f, %f)", x, y)
		}
	}
}

func TestValueNoiseRange(t *testing.T) {
	for i := 0; i < 10000; i++ {
		x := float64(i)*0.11 - 500
		y := float64(i)*0.07 - 350
		v := ValueNoise2D(x, y, 42)
		if v < 0 || v > 1 {
			t.Errorf("ValueNoise2D(%f, %f) = %f, out of [0,1]", x, y, v)
		}
	}
}

func TestValueNoiseLatticeContinuity(t *testing.T) {
	// Quintic easing must make the field continuous across integer lattice
	// lines. Sample just inside and just outside a boundary.
	const eps = 1e-6
	for i := -5; i < 5; i++ {
		lo := ValueNoise2D(float64(i)-eps, 0.5, 7)
		hi := ValueNoise2D(float64(i)+eps, 0.5, 7)
		if math.Abs(lo-hi) > 1e-3 {
			t.Errorf("discontinuity at x=%d: %f vs %f", i, lo, hi)
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.51
		y := float64(i) * 0.29
		if ValueNoise2D(x, y, 1) == ValueNoise2D(x, y, 2) {
			same++
		}
	}
	if same > 30 {
		t.Errorf("different seeds produced %d/100 identical values", same)
	}
}

func TestFBMBounds(t *testing.T) {
	for _, kind := range []Kind{KindValue, KindSimplex, KindPerlin} {
		srcs := NewOctaves(kind, 99, 5)
		for i := 0; i < 2000; i++ {
			x := float64(i)*0.13 - 100
			y := float64(i)*0.17 - 150
			v := FBM(srcs, x, y, 2.0, 0.5)
			if v < -1 || v > 1 {
				t.Fatalf("FBM kind=%d at (%f,%f) = %f, out of [-1,1]", kind, x, y, v)
			}
		}
	}
}

func TestFBMSmoothness(t *testing.T) {
	srcs := NewOctaves(KindValue, 77, 4)
	prev := FBM(srcs, 0, 0, 2.0, 0.5)
	maxDiff := 0.0
	for i := 1; i < 1000; i++ {
		v := FBM(srcs, float64(i)*0.01, 0, 2.0, 0.5)
		diff := math.Abs(v - prev)
		if diff > maxDiff {
			maxDiff = diff
		}
		prev = v
	}
	if maxDiff > 0.5 {
		t.Errorf("FBM max step difference = %f, expected smooth transitions", maxDiff)
	}
}

func TestRidgedRange(t *testing.T) {
	srcs := NewOctaves(KindSimplex, 31, 4)
	for i := 0; i < 2000; i++ {
		x := float64(i)*0.21 - 200
		y := float64(i)*0.19 - 100
		v := Ridged(srcs, x, y, 2.0, 0.5)
		if v < 0 || v > 1 {
			t.Fatalf("Ridged(%f, %f) = %f, out of [0,1]", x, y, v)
		}
	}
}

func TestWarpIdentityWhenDisabled(t *testing.T) {
	w := NewWarp(5, 0, 1.5)
	for i := 0; i < 50; i++ {
		x := float64(i)*0.3 - 7
		y := float64(i)*0.7 - 11
		wx, wy := w.Apply(x, y)
		if wx != x || wy != y {
			t.Fatalf("zero-strength warp moved (%f,%f) to (%f,%f)", x, y, wx, wy)
		}
	}
}

func TestWarpDisplacesWhenEnabled(t *testing.T) {
	w := NewWarp(5, 120, 1.5)
	moved := 0
	for i := 0; i < 50; i++ {
		x := float64(i)*0.3 - 7
		y := float64(i)*0.7 - 11
		wx, wy := w.Apply(x, y)
		if wx != x || wy != y {
			moved++
		}
	}
	if moved < 40 {
		t.Errorf("warp with strength 120 displaced only %d/50 samples", moved)
	}
}

func TestWarpDeterminism(t *testing.T) {
	a := NewWarp(909, 80, 1.5)
	b := NewWarp(909, 80, 1.5)
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.17
		y := float64(i) * 0.23
		ax, ay := a.Apply(x, y)
		bx, by := b.Apply(x, y)
		if ax != bx || ay != by {
			t.Fatalf("warp not deterministic at (%f, %f)", x, y)
		}
	}
}
