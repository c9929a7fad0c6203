package gen

// Biome ids are a contract with downstream rendering and must not be
// reordered.
const (
	BiomeOcean uint8 = iota
	BiomeLake
	BiomeTundra
	BiomeBorealForest
	BiomeTemperateForest
	BiomeTemperateGrassland
	BiomeTropicalForest
	BiomeSavanna
	BiomeDesert
	BiomeAlpine

	BiomeCount = 10
)

var biomeNames = [BiomeCount]string{
	"ocean",
	"lake",
	"tundra",
	"boreal-forest",
	"temperate-forest",
	"temperate-grassland",
	"tropical-forest",
	"savanna",
	"desert",
	"alpine",
}

// BiomeName returns the canonical name for a biome id.
func BiomeName(id uint8) string {
	if int(id) >= len(biomeNames) {
		return "unknown"
	}
	return biomeNames[id]
}

const (
	// waterBiomeThreshold: above this water value a cell reads as open water.
	waterBiomeThreshold = 0.58
	// alpineElevation: land above this normalized elevation is always alpine.
	alpineElevation = 0.82
)

// Classification weights: elevation dominates, then moisture, then
// temperature. The weights and the prototype table below are versioned
// together; changing either restyles every generated map.
const (
	weightElevation   = 1.8
	weightMoisture    = 1.2
	weightTemperature = 1.0
)

// biomePrototypes are the reference points for nearest-neighbor
// classification of land cells: prototypical (elevation, moisture,
// temperature) triples per biome.
var biomePrototypes = []struct {
	id    uint8
	elev  float64
	moist float64
	temp  float64
}{
	{BiomeTundra, 0.55, 0.30, 0.10},
	{BiomeBorealForest, 0.50, 0.55, 0.30},
	{BiomeTemperateForest, 0.45, 0.65, 0.50},
	{BiomeTemperateGrassland, 0.40, 0.45, 0.55},
	{BiomeTropicalForest, 0.35, 0.80, 0.85},
	{BiomeSavanna, 0.35, 0.50, 0.80},
	{BiomeDesert, 0.40, 0.15, 0.70},
	{BiomeAlpine, 0.88, 0.35, 0.15},
}

// classify maps one cell to a biome id. Water and alpine overrides come
// first; everything else is nearest-prototype under the weighted squared
// distance.
func classify(elev, water, moist, temp, seaLevel float64) uint8 {
	if water > waterBiomeThreshold {
		if elev < seaLevel {
			return BiomeOcean
		}
		return BiomeLake
	}
	if elev > alpineElevation {
		return BiomeAlpine
	}

	best := biomePrototypes[0].id
	bestDist := -1.0
	for _, p := range biomePrototypes {
		de := (elev - p.elev) * weightElevation
		dm := (moist - p.moist) * weightMoisture
		dt := (temp - p.temp) * weightTemperature
		dist := de*de + dm*dm + dt*dt
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = p.id
		}
	}
	return best
}

// classifyAll fills the biome layer from the finalized field arrays.
func classifyAll(biome []uint8, elev, water, moist, temp []float32, seaLevel float64) {
	for i := range biome {
		biome[i] = classify(
			float64(elev[i]),
			float64(water[i]),
			float64(moist[i]),
			float64(temp[i]),
			seaLevel,
		)
	}
}
