package core

// Size describes the dimensions of a map grid.
type Size struct {
	W int
	H int
}

// Layer identifies one of the per-cell output fields of a generated map.
type Layer int

const (
	LayerElevation Layer = iota
	LayerWater
	LayerFlow
	LayerMoisture
	LayerTemperature
	LayerBiome
	layerCount
)

var layerNames = [...]string{
	"elevation",
	"water",
	"flow",
	"moisture",
	"temperature",
	"biome",
}

// String returns the lower-case name of the layer.
func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return "unknown"
	}
	return layerNames[l]
}

// Layers lists every output layer in display order.
func Layers() []Layer {
	out := make([]Layer, layerCount)
	for i := range out {
		out[i] = Layer(i)
	}
	return out
}

// Next returns the layer following l, wrapping around the list.
func (l Layer) Next() Layer {
	return Layer((int(l) + 1) % int(layerCount))
}
