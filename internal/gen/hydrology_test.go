package gen

import "testing"

func TestBuildFlowRampAccumulates(t *testing.T) {
	// Single row sloping east: every cell drains into its right neighbor.
	elev := []float32{0.9, 0.7, 0.5, 0.3, 0.1}
	flow := buildFlow(elev, 5, 1)
	want := []float32{1, 2, 3, 4, 5}
	for i := range want {
		if flow[i] != want[i] {
			t.Fatalf("flow[%d] = %f, want %f", i, flow[i], want[i])
		}
	}
}

func TestBuildFlowEveryCellCarriesItsUnit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 24
	cfg.Seed = 7
	fam := FamilyByName(cfg.Family)
	p := cfg.Params.Clamped()
	elev := make([]float32, cfg.Width*cfg.Height)
	moist := make([]float32, cfg.Width*cfg.Height)
	newSynthesizer(cfg, fam, p).run(elev, moist)
	normalize(elev)

	flow := buildFlow(elev, cfg.Width, cfg.Height)
	for i, f := range flow {
		if f < 1 {
			t.Fatalf("flow[%d] = %f, every cell must carry at least one unit", i, f)
		}
	}
}

func TestBuildFlowNeverRoutesUphill(t *testing.T) {
	elev := []float32{
		0.2, 0.8, 0.3,
		0.9, 1.0, 0.7,
		0.4, 0.6, 0.1,
	}
	flow := buildFlow(elev, 3, 3)
	// Nothing can flow into the global maximum, so the peak carries exactly
	// its own unit.
	if flow[4] != 1 {
		t.Fatalf("flow at global peak = %f, want 1", flow[4])
	}
	// The global minimum must receive upstream drainage.
	if flow[8] <= 1 {
		t.Fatalf("flow at global minimum = %f, want > 1", flow[8])
	}
	for i, f := range flow {
		if f < 1 {
			t.Fatalf("flow[%d] = %f below its own unit", i, f)
		}
	}
}

func TestBuildFlowPlateauHasNoRouting(t *testing.T) {
	elev := make([]float32, 16)
	for i := range elev {
		elev[i] = 0.5
	}
	flow := buildFlow(elev, 4, 4)
	for i, f := range flow {
		if f != 1 {
			t.Fatalf("flow[%d] = %f on a flat plateau, want 1", i, f)
		}
	}
}

func TestNormalizeScalesToUnitRange(t *testing.T) {
	vals := []float32{2, 3, 4}
	normalize(vals)
	if vals[0] != 0 || vals[2] != 1 {
		t.Fatalf("normalize endpoints = %f, %f; want 0, 1", vals[0], vals[2])
	}
	if vals[1] != 0.5 {
		t.Fatalf("normalize midpoint = %f, want 0.5", vals[1])
	}
}

func TestNormalizeFlatFieldGuard(t *testing.T) {
	vals := []float32{0.7, 0.7, 0.7, 0.7}
	normalize(vals)
	for i, v := range vals {
		if v != 0 {
			t.Fatalf("flat field normalize left vals[%d] = %f, want 0", i, v)
		}
	}
}

func TestSmoothReducesSpike(t *testing.T) {
	w, h := 7, 7
	elev := make([]float32, w*h)
	center := 3*w + 3
	elev[center] = 1
	smooth(elev, w, h, 1)
	if elev[center] >= 1 {
		t.Fatalf("spike survived smoothing: %f", elev[center])
	}
	if elev[center] <= 0 {
		t.Fatalf("spike erased entirely: %f", elev[center])
	}
	// Mass spreads to the neighborhood.
	if elev[center-1] <= 0 || elev[center+w] <= 0 {
		t.Fatal("smoothing did not spread the spike to neighbors")
	}
}

func TestSmoothFlatFieldIsStable(t *testing.T) {
	w, h := 6, 5
	elev := make([]float32, w*h)
	for i := range elev {
		elev[i] = 0.25
	}
	smooth(elev, w, h, 3)
	for i, v := range elev {
		if v < 0.2499 || v > 0.2501 {
			t.Fatalf("flat field drifted at %d: %f", i, v)
		}
	}
}

func TestDeriveWaterSubmergesBelowSeaLevel(t *testing.T) {
	elev := []float32{0.1, 0.3, 0.6, 0.9}
	flow := []float32{50, 20, 1, 1}
	water := deriveWater(elev, flow, 0.48, 1.0)
	if water[0] != 1 || water[1] != 1 {
		t.Fatalf("cells below sea level not submerged: %v", water)
	}
	if water[2] != 0 || water[3] != 0 {
		t.Fatalf("dry highland carries water without flow: %v", water)
	}
}

func TestDeriveWaterCapsRivers(t *testing.T) {
	// Huge accumulated flow on land must stay below full submersion.
	elev := []float32{0.9, 0.8}
	flow := []float32{1, 500}
	water := deriveWater(elev, flow, 0.48, 2.0)
	if water[1] <= 0 {
		t.Fatal("strong drainage did not form a channel")
	}
	if water[1] >= 1 {
		t.Fatalf("river water = %f, must stay below 1", water[1])
	}
}

func TestEnhanceMoistureStaysClamped(t *testing.T) {
	moist := []float32{0.9, 0.1, 1}
	water := []float32{1, 0, 1}
	flow := []float32{10, 1, 10}
	enhanceMoisture(moist, water, flow, 1.0)
	for i, m := range moist {
		if m < 0 || m > 1 {
			t.Fatalf("moisture[%d] = %f, out of [0,1]", i, m)
		}
	}
}

func TestDeriveTemperatureLatitudeFalloff(t *testing.T) {
	w, h := 1, 9
	temp := make([]float32, w*h)
	elev := make([]float32, w*h) // sea-level flat world, no altitude penalty
	deriveTemperature(temp, elev, w, h, 0.48, 0)
	mid := temp[4]
	if temp[0] >= mid || temp[8] >= mid {
		t.Fatalf("poles %f/%f not colder than equator %f", temp[0], temp[8], mid)
	}
}

func TestDeriveTemperatureAltitudePenalty(t *testing.T) {
	temp := make([]float32, 2)
	elev := []float32{0.5, 0.95}
	deriveTemperature(temp, elev, 2, 1, 0.48, 0)
	if temp[1] >= temp[0] {
		t.Fatalf("high ground %f not colder than lowland %f", temp[1], temp[0])
	}
}
