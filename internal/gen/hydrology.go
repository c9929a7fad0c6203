package gen

import (
	"math"
	"sort"
)

// d8Offsets is the fixed neighbor iteration order: N, NE, E, SE, S, SW, W,
// NW. Flow routing breaks slope ties on the first strict improvement in this
// order, which keeps drainage bit-reproducible across runs and platforms.
var d8Offsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// blurKernel is the separable 5-tap binomial kernel used by smoothing passes.
var blurKernel = [5]float32{1.0 / 16, 4.0 / 16, 6.0 / 16, 4.0 / 16, 1.0 / 16}

const (
	// riverThreshold gates runoff so only cells with enough accumulated flow
	// read as river channels instead of speckle.
	riverThreshold = 0.3
	// riverWaterCap keeps channels below full submersion; water == 1 is
	// reserved for cells at or under sea level.
	riverWaterCap = 0.95
	// lapseRate scales the altitude penalty applied to temperature.
	lapseRate = 1.5
)

// smooth runs the configured number of separable blur passes over the raw
// elevation. It runs before normalization and flow routing so hydrology sees
// the softened terrain.
func smooth(elev []float32, w, h, passes int) {
	if passes <= 0 || w*h <= 1 {
		return
	}
	scratch := make([]float32, len(elev))
	clampX := func(x int) int {
		if x < 0 {
			return 0
		}
		if x >= w {
			return w - 1
		}
		return x
	}
	clampY := func(y int) int {
		if y < 0 {
			return 0
		}
		if y >= h {
			return h - 1
		}
		return y
	}
	for pass := 0; pass < passes; pass++ {
		for y := 0; y < h; y++ {
			row := y * w
			for x := 0; x < w; x++ {
				var sum float32
				for k := -2; k <= 2; k++ {
					sum += elev[row+clampX(x+k)] * blurKernel[k+2]
				}
				scratch[row+x] = sum
			}
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				var sum float32
				for k := -2; k <= 2; k++ {
					sum += scratch[clampY(y+k)*w+x] * blurKernel[k+2]
				}
				elev[y*w+x] = sum
			}
		}
	}
}

// normalize min-max scales values into [0,1] in place. A flat field collapses
// to zeros rather than dividing by zero.
func normalize(vals []float32) {
	if len(vals) == 0 {
		return
	}
	lo := vals[0]
	hi := vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span <= 0 {
		for i := range vals {
			vals[i] = 0
		}
		return
	}
	for i := range vals {
		vals[i] = (vals[i] - lo) / span
	}
}

// buildFlow computes D8 flow accumulation over a normalized heightfield.
// Each cell routes to its single steepest strictly-lower neighbor; cells are
// processed in descending elevation order so upstream contributions arrive
// before a cell drains. The returned flow is pre-normalized: every cell
// carries at least its own unit.
func buildFlow(elev []float32, w, h int) []float32 {
	size := w * h
	downslope := make([]int, size)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			lowest := elev[i]
			target := -1
			for _, d := range d8Offsets {
				nx := x + d[0]
				ny := y + d[1]
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				n := ny*w + nx
				if elev[n] < lowest {
					lowest = elev[n]
					target = n
				}
			}
			downslope[i] = target
		}
	}

	order := make([]int, size)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if elev[ia] != elev[ib] {
			return elev[ia] > elev[ib]
		}
		return ia < ib
	})

	flow := make([]float32, size)
	for i := range flow {
		flow[i] = 1
	}
	for _, cell := range order {
		if t := downslope[cell]; t >= 0 {
			flow[t] += flow[cell]
		}
	}
	return flow
}

// deriveWater marks submerged cells and carves river channels from runoff.
func deriveWater(elev, flow []float32, seaLevel, riverStrength float64) []float32 {
	maxFlow := maxOf(flow)
	water := make([]float32, len(elev))
	for i, e := range elev {
		if float64(e) <= seaLevel {
			water[i] = 1
			continue
		}
		runoff := math.Pow(float64(flow[i])/(maxFlow+1), 0.4) * riverStrength
		if runoff > riverThreshold {
			if runoff > riverWaterCap {
				runoff = riverWaterCap
			}
			water[i] = float32(runoff)
		}
	}
	return water
}

// enhanceMoisture folds standing water and drainage magnitude into the base
// moisture field.
func enhanceMoisture(moist, water, flow []float32, moistureScale float64) {
	maxFlow := maxOf(flow)
	for i := range moist {
		waterBonus := math.Min(float64(water[i])*0.7, 0.7)
		flowBonus := math.Min(float64(flow[i])/(maxFlow+1)*1.8, 0.8)
		v := (float64(moist[i]) + waterBonus + flowBonus) / (1 + moistureScale*0.5)
		moist[i] = float32(clamp01(v))
	}
}

// deriveTemperature fills the temperature layer from normalized latitude
// (linear falloff from the vertical center) minus an altitude penalty for
// land above sea level, plus the configured bias.
func deriveTemperature(temp, elev []float32, w, h int, seaLevel, bias float64) {
	hf := float64(h)
	for y := 0; y < h; y++ {
		lat := float64(y)/hf - 0.5
		base := clamp01(1 - math.Abs(lat)*1.8)
		row := y * w
		for x := 0; x < w; x++ {
			i := row + x
			altitude := float64(elev[i]) - seaLevel
			if altitude < 0 {
				altitude = 0
			}
			penalty := math.Min(altitude*lapseRate, 1)
			temp[i] = float32(clamp01(base - penalty + bias))
		}
	}
}

// normalizeFlow scales the accumulated flow by its maximum into [0,1].
func normalizeFlow(flow []float32) {
	m := maxOf(flow)
	if m <= 0 {
		return
	}
	for i := range flow {
		v := float64(flow[i]) / m
		flow[i] = float32(clamp01(v))
	}
}

func maxOf(vals []float32) float64 {
	m := 0.0
	for _, v := range vals {
		if float64(v) > m {
			m = float64(v)
		}
	}
	return m
}
