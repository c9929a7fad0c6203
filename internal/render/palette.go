package render

import (
	"image/color"

	"landform/internal/gen"
)

var biomePalette = buildBiomePalette()

// BiomePalette returns the color table indexed by biome id.
func BiomePalette() []color.RGBA {
	out := make([]color.RGBA, len(biomePalette))
	copy(out, biomePalette)
	return out
}

func buildBiomePalette() []color.RGBA {
	palette := make([]color.RGBA, gen.BiomeCount)
	for id := range palette {
		palette[id] = toRGBA(biomeColor(uint8(id)))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func biomeColor(id uint8) color.NRGBA {
	switch id {
	case gen.BiomeOcean:
		return color.NRGBA{R: 24, G: 58, B: 118, A: 255}
	case gen.BiomeLake:
		return color.NRGBA{R: 62, G: 122, B: 178, A: 255}
	case gen.BiomeTundra:
		return color.NRGBA{R: 152, G: 160, B: 150, A: 255}
	case gen.BiomeBorealForest:
		return color.NRGBA{R: 42, G: 92, B: 62, A: 255}
	case gen.BiomeTemperateForest:
		return color.NRGBA{R: 52, G: 122, B: 58, A: 255}
	case gen.BiomeTemperateGrassland:
		return color.NRGBA{R: 132, G: 168, B: 88, A: 255}
	case gen.BiomeTropicalForest:
		return color.NRGBA{R: 22, G: 108, B: 42, A: 255}
	case gen.BiomeSavanna:
		return color.NRGBA{R: 188, G: 170, B: 92, A: 255}
	case gen.BiomeDesert:
		return color.NRGBA{R: 212, G: 192, B: 132, A: 255}
	case gen.BiomeAlpine:
		return color.NRGBA{R: 226, G: 226, B: 232, A: 255}
	default:
		return color.NRGBA{R: 255, G: 0, B: 255, A: 255}
	}
}
