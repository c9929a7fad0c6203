package render

import (
	"image"

	"landform/internal/core"
	"landform/internal/gen"
)

// LayerRGBA fills buf (length 4*width*height) with a visualization of the
// given layer: palette colors for biomes, grayscale for float fields.
func LayerRGBA(res *gen.Result, layer core.Layer, buf []byte) {
	if layer == core.LayerBiome {
		fillPaletteRGBA(buf, res.Biome, biomePalette)
		return
	}
	fillGrayRGBA(buf, res.FloatLayer(layer))
}

// CompositeRGBA fills buf with the shaded map view: biome colors darkened by
// elevation, with river channels tinted toward the lake color.
func CompositeRGBA(res *gen.Result, buf []byte) {
	waterCol := biomePalette[gen.BiomeLake]
	for i, b := range res.Biome {
		col := biomePalette[int(b)%len(biomePalette)]
		shade := 0.55 + 0.45*float64(res.Elevation[i])
		r := float64(col.R) * shade
		g := float64(col.G) * shade
		bl := float64(col.B) * shade

		// Tint exposed river channels; open water keeps its biome color.
		if w := float64(res.Water[i]); w > 0 && b != gen.BiomeOcean && b != gen.BiomeLake {
			t := w * 0.6
			r = r*(1-t) + float64(waterCol.R)*t
			g = g*(1-t) + float64(waterCol.G)*t
			bl = bl*(1-t) + float64(waterCol.B)*t
		}

		base := i * 4
		buf[base+0] = uint8(r)
		buf[base+1] = uint8(g)
		buf[base+2] = uint8(bl)
		buf[base+3] = 255
	}
}

// LayerImage renders a layer into a standalone image, for PNG export.
func LayerImage(res *gen.Result, layer core.Layer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, res.Width, res.Height))
	LayerRGBA(res, layer, img.Pix)
	return img
}

// CompositeImage renders the shaded map view into a standalone image.
func CompositeImage(res *gen.Result) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, res.Width, res.Height))
	CompositeRGBA(res, img.Pix)
	return img
}
