package gen

import (
	"errors"

	"landform/internal/core"
)

// MaxCells bounds width*height. Maps beyond 2048×2048 are refused so a bad
// caller cannot trigger multi-gigabyte allocations.
const MaxCells = 2048 * 2048

var (
	// ErrBadDimensions is returned when width or height is not positive.
	ErrBadDimensions = errors.New("gen: width and height must be positive")
	// ErrMapTooLarge is returned when width*height exceeds MaxCells.
	ErrMapTooLarge = errors.New("gen: width*height exceeds the supported map size")
)

// Result holds the finalized output layers of one generation run. All layers
// are dense row-major arrays of length Width*Height indexed by y*Width+x.
// The struct owns its buffers and shares nothing with the engine, so it can
// be handed across an execution-context boundary without copying.
type Result struct {
	Width  int
	Height int

	Elevation   []float32 // [0,1]
	Water       []float32 // [0,1]; 1 means submerged below sea level
	Flow        []float32 // [0,1], normalized drainage accumulation
	Moisture    []float32 // [0,1]
	Temperature []float32 // [0,1]
	Biome       []uint8   // biome ids, see biome.go

	Settlements []Settlement
	Roads       []RoadEdge
}

// Size returns the grid dimensions.
func (r *Result) Size() core.Size { return core.Size{W: r.Width, H: r.Height} }

// FloatLayer returns the float field backing the given layer, or nil for the
// biome layer (which is byte-valued).
func (r *Result) FloatLayer(l core.Layer) []float32 {
	switch l {
	case core.LayerElevation:
		return r.Elevation
	case core.LayerWater:
		return r.Water
	case core.LayerFlow:
		return r.Flow
	case core.LayerMoisture:
		return r.Moisture
	case core.LayerTemperature:
		return r.Temperature
	default:
		return nil
	}
}

// Generate runs the full pipeline for one request. It is a pure function of
// the config: no global state, safe for concurrent calls, and two calls with
// identical configs produce bit-identical layers.
func Generate(cfg Config) (*Result, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrBadDimensions
	}
	if cfg.Width > MaxCells/cfg.Height {
		return nil, ErrMapTooLarge
	}

	fam := FamilyByName(cfg.Family)
	p := cfg.Params.Clamped()
	w := cfg.Width
	h := cfg.Height

	elev := core.NewFloatGrid(w, h).Cells()
	moist := core.NewFloatGrid(w, h).Cells()
	temp := core.NewFloatGrid(w, h).Cells()
	biome := core.NewByteGrid(w, h).Cells()

	newSynthesizer(cfg, fam, p).run(elev, moist)

	smooth(elev, w, h, p.ErosionIterations)
	normalize(elev)

	flow := buildFlow(elev, w, h)
	water := deriveWater(elev, flow, p.SeaLevel, p.RiverStrength)
	enhanceMoisture(moist, water, flow, p.MoistureScale)
	deriveTemperature(temp, elev, w, h, p.SeaLevel, p.TemperatureBias)
	normalizeFlow(flow)

	classifyAll(biome, elev, water, moist, temp, p.SeaLevel)

	settlements := placeSettlements(elev, w, p.SeaLevel, p.SettlementLimit)
	roads := buildRoads(settlements, w)

	return &Result{
		Width:       w,
		Height:      h,
		Elevation:   elev,
		Water:       water,
		Flow:        flow,
		Moisture:    moist,
		Temperature: temp,
		Biome:       biome,
		Settlements: settlements,
		Roads:       roads,
	}, nil
}
