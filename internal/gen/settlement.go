package gen

import (
	"math"
	"sort"
)

// settlementMargin keeps sites strictly above the waterline: candidates must
// exceed SeaLevel + settlementMargin.
const settlementMargin = 0.02

// Settlement display sizes are interpolated into [1, 6].
const (
	settlementSizeMin = 1
	settlementSizeMax = 6
)

// Settlement is a placed site. Coordinates are integer cell positions; Size
// derives from the local elevation.
type Settlement struct {
	ID   uint32
	X, Y int
	Size uint32
}

// RoadEdge connects two settlement cells by their flattened grid indices, so
// a renderer can look up any per-cell attribute at either endpoint.
type RoadEdge struct {
	A, B uint32
}

// placeSettlements selects up to limit of the highest land cells as sites.
// Ordering is descending elevation with ties broken by ascending flattened
// index, so placement is fully reproducible.
func placeSettlements(elev []float32, w int, seaLevel float64, limit int) []Settlement {
	if limit <= 0 {
		return nil
	}
	floor := seaLevel + settlementMargin

	type candidate struct {
		index int
		elev  float32
	}
	var candidates []candidate
	for i, e := range elev {
		if float64(e) > floor {
			candidates = append(candidates, candidate{index: i, elev: e})
		}
	}
	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].elev != candidates[b].elev {
			return candidates[a].elev > candidates[b].elev
		}
		return candidates[a].index < candidates[b].index
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	settlements := make([]Settlement, 0, len(candidates))
	for n, c := range candidates {
		settlements = append(settlements, Settlement{
			ID:   uint32(n + 1),
			X:    c.index % w,
			Y:    c.index / w,
			Size: settlementSize(float64(c.elev), floor),
		})
	}
	return settlements
}

// settlementSize maps elevation in [floor, 1] linearly into the display
// range.
func settlementSize(elev, floor float64) uint32 {
	span := 1 - floor
	t := 0.0
	if span > 0 {
		t = clamp01((elev - floor) / span)
	}
	size := settlementSizeMin + t*(settlementSizeMax-settlementSizeMin)
	return uint32(math.Round(size))
}

// buildRoads connects every settlement pair with an edge (complete graph).
// Edges store flattened cell indices of the endpoints.
func buildRoads(settlements []Settlement, w int) []RoadEdge {
	if len(settlements) < 2 {
		return nil
	}
	edges := make([]RoadEdge, 0, len(settlements)*(len(settlements)-1)/2)
	for i := 0; i < len(settlements); i++ {
		a := uint32(settlements[i].Y*w + settlements[i].X)
		for j := i + 1; j < len(settlements); j++ {
			b := uint32(settlements[j].Y*w + settlements[j].X)
			edges = append(edges, RoadEdge{A: a, B: b})
		}
	}
	return edges
}
